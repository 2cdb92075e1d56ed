//go:build unix

package voice

import (
	"os/exec"
	"syscall"
)

// setDetachAttrs puts the synthesizer in its own session so the hook
// runner never waits on it.
func setDetachAttrs(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
