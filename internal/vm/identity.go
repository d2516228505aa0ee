package vm

import (
	"fmt"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
)

// Identity names one launch's disk and log artifacts.
type Identity struct {
	Prefix string
	Suffix string
}

// NewIdentity derives the VM identity. An empty suffix picks a
// pseudo-random human-readable word; random suffixes are not
// deduplicated against existing disks.
func NewIdentity(prefix, suffix string) Identity {
	if suffix == "" {
		suffix = petname.Generate(1, "")
	}
	return Identity{Prefix: prefix, Suffix: suffix}
}

func (id Identity) String() string {
	return id.Prefix + "-" + id.Suffix
}

// LogName returns the session log filename for a launch started at ts.
func (id Identity) LogName(ts time.Time) string {
	return fmt.Sprintf("%s-%s.log", id, ts.Format("20060102-150405"))
}

// DiskName returns the qcow2 image filename backing this identity.
func (id Identity) DiskName() string {
	return id.String() + ".qcow2"
}
