// Package session writes the append-only per-launch log. The file is
// created at invocation start, appended to at start and end, and never
// read back by this tool. It doubles as the hypervisor's -D target, so
// guest diagnostics land in the same file.
package session

import (
	"fmt"
	"os"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

// Record holds the resolved settings written to the session header.
type Record struct {
	Identity   string
	Type       string
	ConfigPath string
	Memory     string
	CPUs       int
	DiskPath   string
	DiskSize   string
	ISO        string
	Network    string
	Display    string
	Snapshot   bool
}

// Log is one session's append-only log file.
type Log struct {
	ID   string
	path string
}

// New creates a session log handle with a fresh session ID. The file
// itself is created on the first write.
func New(path string) *Log {
	return &Log{
		ID:   shortuuid.New(),
		path: path,
	}
}

// Path returns the log file path.
func (l *Log) Path() string {
	return l.path
}

// WriteHeader appends the structured session header before the
// hypervisor is spawned.
func (l *Log) WriteHeader(rec Record, ts time.Time) error {
	iso := rec.ISO
	if iso == "" {
		iso = "none"
	}
	snapshot := "off"
	if rec.Snapshot {
		snapshot = "on"
	}

	return l.append(
		fmt.Sprintf("=== session %s started %s ===\n", l.ID, ts.Format(time.RFC3339))+
			fmt.Sprintf("vm:       %s\n", rec.Identity)+
			fmt.Sprintf("type:     %s\n", rec.Type)+
			fmt.Sprintf("config:   %s\n", rec.ConfigPath)+
			fmt.Sprintf("memory:   %s\n", rec.Memory)+
			fmt.Sprintf("cpus:     %d\n", rec.CPUs)+
			fmt.Sprintf("disk:     %s (%s)\n", rec.DiskPath, rec.DiskSize)+
			fmt.Sprintf("iso:      %s\n", iso)+
			fmt.Sprintf("network:  %s\n", rec.Network)+
			fmt.Sprintf("display:  %s\n", rec.Display)+
			fmt.Sprintf("snapshot: %s\n", snapshot),
	)
}

// WriteCompletion appends the completion record after the hypervisor
// exits, success and failure alike.
func (l *Log) WriteCompletion(exitCode int, ts time.Time) error {
	return l.append(fmt.Sprintf("=== session %s completed %s exit=%d ===\n",
		l.ID, ts.Format(time.RFC3339), exitCode))
}

func (l *Log) append(s string) error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open session log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(s); err != nil {
		return fmt.Errorf("failed to write session log: %w", err)
	}
	return nil
}
