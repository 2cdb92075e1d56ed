package audio

import (
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
)

// execBackend plays sounds by spawning an external player. The binary
// is resolved on PATH during the availability probe; playback either
// waits for the process or detaches it, per PlayOptions.
type execBackend struct {
	name string
	bin  string
	goos string // restrict to one platform, empty for any
	args func(path string, volume float64) []string
}

func (b *execBackend) Name() string { return b.name }

func (b *execBackend) Available() bool {
	if b.goos != "" && runtime.GOOS != b.goos {
		return false
	}
	_, err := exec.LookPath(b.bin)
	return err == nil
}

func (b *execBackend) Play(path string, opts PlayOptions) bool {
	cmd := exec.Command(b.bin, b.args(path, opts.Volume)...)
	if opts.Blocking {
		return cmd.Run() == nil
	}
	return detach(cmd)
}

// afplayBackend is the macOS system player.
func afplayBackend() Backend {
	return &execBackend{
		name: "afplay",
		bin:  "afplay",
		goos: "darwin",
		args: func(path string, volume float64) []string {
			args := []string{path}
			if volume < 1.0 {
				args = append(args, "-v", fmt.Sprintf("%g", volume))
			}
			return args
		},
	}
}

// soxBackend uses the cross-platform sox "play" command.
func soxBackend() Backend {
	return &execBackend{
		name: "sox",
		bin:  "play",
		args: func(path string, volume float64) []string {
			return []string{path, "vol", fmt.Sprintf("%g", volume)}
		},
	}
}

// paplayBackend targets PulseAudio on Linux.
func paplayBackend() Backend {
	return &execBackend{
		name: "paplay",
		bin:  "paplay",
		args: func(path string, volume float64) []string {
			// paplay volume is 0..65536 linear.
			return []string{"--volume", strconv.Itoa(int(volume * 65536)), path}
		},
	}
}

// aplayBackend targets bare ALSA; it has no volume control.
func aplayBackend() Backend {
	return &execBackend{
		name: "aplay",
		bin:  "aplay",
		args: func(path string, _ float64) []string {
			return []string{"-q", path}
		},
	}
}
