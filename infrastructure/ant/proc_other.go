//go:build !linux

package ant

import "os/exec"

// setPlatformSpecificAttrs is a no-op, the uploader is only stopped through the command context.
func setPlatformSpecificAttrs(cmd *exec.Cmd) {}
