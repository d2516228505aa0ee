// Package qemu builds the hypervisor argument vector from effective
// settings and runs the process to completion.
package qemu

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultBinary is the hypervisor invoked when none is configured.
const DefaultBinary = "qemu-system-x86_64"

// Diagnostic categories passed to -d. Minimal-class machines get the
// expanded set, standard machines only guest errors.
const (
	diagStandard = "guest_errors"
	diagExpanded = "guest_errors,unimp,int"
)

// Command describes one hypervisor launch. Args is deterministic for a
// given value.
type Command struct {
	Binary   string
	Name     string
	Memory   string
	CPUs     int
	DiskPath string
	Snapshot bool
	ISOPath  string
	Network  string
	Display  string
	LogPath  string

	// ExpandedDiag selects the expanded -d category set.
	ExpandedDiag bool
}

// Args builds the argument vector in a fixed order: identity, memory
// and CPUs, acceleration, disk, removable media, network, display,
// boot order, guest hostname, diagnostics.
func (c *Command) Args() []string {
	args := []string{
		"-name", c.Name,
		"-m", c.Memory,
		"-smp", strconv.Itoa(c.CPUs),
		"-enable-kvm",
		"-cpu", "host",
	}

	drive := fmt.Sprintf("file=%s,if=virtio,format=qcow2", c.DiskPath)
	if c.Snapshot {
		drive += ",snapshot=on"
	}
	args = append(args, "-drive", drive)

	if c.ISOPath != "" {
		args = append(args, "-cdrom", c.ISOPath)
	}

	switch c.Network {
	case "none":
		args = append(args, "-nic", "none")
	default:
		args = append(args,
			"-netdev", fmt.Sprintf("user,id=net0,hostname=%s", c.Name),
			"-device", "virtio-net-pci,netdev=net0",
		)
	}

	args = append(args, "-display", c.Display)

	// Boot from removable media when an ISO is attached
	if c.ISOPath != "" {
		args = append(args, "-boot", "order=d")
	} else {
		args = append(args, "-boot", "order=c")
	}

	args = append(args, "-fw_cfg", "name=opt/hostname,string="+c.Name)

	diag := diagStandard
	if c.ExpandedDiag {
		diag = diagExpanded
	}
	args = append(args, "-D", c.LogPath, "-d", diag)

	return args
}

// Run executes the hypervisor with stdio attached and blocks until it
// exits. The subprocess exit code is returned for success and failure
// alike; err is non-nil only when the process could not be started.
func (c *Command) Run(ctx context.Context) (int, error) {
	binary := c.Binary
	if binary == "" {
		binary = DefaultBinary
	}
	args := c.Args()

	if os.Getenv("DEBUG") == "1" {
		fmt.Fprintf(os.Stderr, "%s %s\n", binary, strings.Join(args, " "))
	}

	logrus.Debugf("Running %s with %d arguments", binary, len(args))

	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, fmt.Errorf("failed to run %s: %w", binary, err)
	}

	return 0, nil
}

// ExitError propagates the hypervisor's exit status as the tool's own.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("hypervisor exited with status %d", e.Code)
}
