package vm

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// execCommand is swapped out in tests.
var execCommand = exec.Command

// ImageManager handles qcow2 disk image creation.
type ImageManager struct{}

// NewImageManager creates an image manager.
func NewImageManager() *ImageManager {
	return &ImageManager{}
}

// EnsureDisk creates a qcow2 image at path if it doesn't exist yet.
// An existing image is left untouched, whatever its size; returns
// whether a new image was created.
func (m *ImageManager) EnsureDisk(path, size string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		logrus.Debugf("Disk image already exists: %s", path)
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to stat disk image: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("failed to create disk directory: %w", err)
	}

	logrus.Infof("Creating disk image %s (%s)", path, size)

	cmd := execCommand("qemu-img", "create", "-f", "qcow2", path, size)
	if out, err := cmd.CombinedOutput(); err != nil {
		return false, fmt.Errorf("qemu-img create failed: %v: %s", err, strings.TrimSpace(string(out)))
	}

	return true, nil
}
