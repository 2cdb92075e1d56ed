//go:build !unix

package voice

import "os/exec"

func setDetachAttrs(_ *exec.Cmd) {}
