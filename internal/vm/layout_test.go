package vm

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLayoutRootFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QLAUNCH_ROOT", dir)

	assert.Equal(t, dir, NewLayout().Root)
}

func TestLayoutDerivedPaths(t *testing.T) {
	l := Layout{Root: "/srv/lab"}
	id := NewIdentity("lab", "alpha")
	ts := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, "/srv/lab/disks/lab-alpha.qcow2", l.DiskPath(id))
	assert.Equal(t, "/srv/lab/logs/lab-alpha-20240102-150405.log", l.LogPath(id, ts))
	assert.Equal(t, "/srv/lab/configs", l.ConfigDir())
	assert.Equal(t, "/srv/lab/images", l.ImageDir())
}

func TestLayoutResolveISO(t *testing.T) {
	l := Layout{Root: "/srv/lab"}

	assert.Empty(t, l.ResolveISO(""))
	assert.Equal(t, "/tmp/debian.iso", l.ResolveISO("/tmp/debian.iso"))
	assert.Equal(t, "/srv/lab/images/alpine.iso", l.ResolveISO("alpine.iso"))
}

func TestLayoutEnsureDirsIdempotent(t *testing.T) {
	l := Layout{Root: t.TempDir()}

	require.NoError(t, l.EnsureDirs())
	require.NoError(t, l.EnsureDirs())

	for _, dir := range []string{l.DiskDir(), l.LogDir()} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// Existing content survives re-creation
	marker := filepath.Join(l.DiskDir(), "keep")
	require.NoError(t, os.WriteFile(marker, []byte("x"), 0644))
	require.NoError(t, l.EnsureDirs())
	_, err := os.Stat(marker)
	assert.NoError(t, err)
}
