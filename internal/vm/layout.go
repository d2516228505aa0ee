package vm

import (
	"os"
	"path/filepath"
	"time"
)

// Layout resolves the artifact directories under the project root:
// disk images, ISO sources, configs and session logs.
type Layout struct {
	Root string
}

// NewLayout returns the layout rooted at QLAUNCH_ROOT, falling back to
// the current working directory.
func NewLayout() Layout {
	if root := os.Getenv("QLAUNCH_ROOT"); root != "" {
		return Layout{Root: root}
	}
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return Layout{Root: cwd}
}

func (l Layout) DiskDir() string   { return filepath.Join(l.Root, "disks") }
func (l Layout) ImageDir() string  { return filepath.Join(l.Root, "images") }
func (l Layout) ConfigDir() string { return filepath.Join(l.Root, "configs") }
func (l Layout) LogDir() string    { return filepath.Join(l.Root, "logs") }

// DiskPath returns the disk image path for an identity. Deterministic
// for a given root and identity.
func (l Layout) DiskPath(id Identity) string {
	return filepath.Join(l.DiskDir(), id.DiskName())
}

// LogPath returns the session log path for an identity and start time.
func (l Layout) LogPath(id Identity, ts time.Time) string {
	return filepath.Join(l.LogDir(), id.LogName(ts))
}

// ResolveISO anchors relative ISO paths under the image directory.
func (l Layout) ResolveISO(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(l.ImageDir(), path)
}

// EnsureDirs creates the writable artifact directories. Idempotent.
func (l Layout) EnsureDirs() error {
	for _, dir := range []string{l.DiskDir(), l.LogDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
