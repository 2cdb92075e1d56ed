//go:build unix

package audio

import (
	"os"
	"os/exec"
	"syscall"
)

// detach starts cmd fully detached from the process tree: new session,
// stdio on /dev/null. The hook must not wait on the player and a hung
// player must not hold the hook's pipes open.
func detach(cmd *exec.Cmd) bool {
	devNull, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return false
	}
	defer devNull.Close()

	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	cmd.Stdin = devNull
	cmd.Stdout = devNull
	cmd.Stderr = devNull

	if err := cmd.Start(); err != nil {
		return false
	}
	// Reap the child in the background so it doesn't linger as a
	// zombie if the player exits before we do.
	go func() { _ = cmd.Wait() }()
	return true
}
