package main

import (
	"errors"
	"os"

	"github.com/jburg3ss/qlaunch/cmd"
	"github.com/jburg3ss/qlaunch/internal/qemu"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// The hypervisor's own exit status becomes ours
		var exitErr *qemu.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}

		logrus.Errorf("Fatal error: %v", err)
		os.Exit(1)
	}
}
