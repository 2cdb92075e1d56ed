//go:build !unix

package audio

import (
	"os"
	"os/exec"
)

// detach starts cmd without waiting for it. Platforms without session
// semantics just get a plain Start with discarded stdio.
func detach(cmd *exec.Cmd) bool {
	devNull, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return false
	}
	defer devNull.Close()

	cmd.Stdin = devNull
	cmd.Stdout = devNull
	cmd.Stderr = devNull

	if err := cmd.Start(); err != nil {
		return false
	}
	go func() { _ = cmd.Wait() }()
	return true
}
