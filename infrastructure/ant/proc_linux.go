//go:build linux

package ant

import (
	"os/exec"
	"syscall"
)

// setPlatformSpecificAttrs asks the kernel to kill the uploader if the bridge dies mid upload.
func setPlatformSpecificAttrs(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Pdeathsig: syscall.SIGKILL,
	}
}
