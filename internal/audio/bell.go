package audio

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Bell is the universal last-resort sound output. It is defined to
// always be available: on macOS it asks the system for a beep, on
// anything else it writes the ASCII bell to stderr (stdout stays clean
// for the host tool).
type Bell struct{}

func (Bell) Name() string { return "bell" }

func (Bell) Available() bool { return true }

func (Bell) Play(_ string, _ PlayOptions) bool {
	return Bell{}.Ring()
}

// Ring sounds the bell directly, with no sound file involved.
func (Bell) Ring() bool {
	if runtime.GOOS == "darwin" {
		if _, err := exec.LookPath("osascript"); err == nil {
			return detach(exec.Command("osascript", "-e", "beep"))
		}
	}
	_, err := fmt.Fprint(os.Stderr, "\a")
	return err == nil
}
