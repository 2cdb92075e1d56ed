package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/koehook/koe/internal/audio"
	"github.com/koehook/koe/internal/notify"
	"github.com/koehook/koe/internal/voice"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which output backends are usable on this machine",
	Long: `Probe every sound and voice backend and print an availability
report along with the effective configuration. Useful for checking why
a hook run was silent.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	missStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func runStatus(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, headingStyle.Render("configuration"))
	fmt.Fprintf(out, "  mode:      %s\n", cfg.Mode)
	fmt.Fprintf(out, "  sound dir: %s\n", cfg.Sound.Dir)
	fmt.Fprintf(out, "  category:  %s\n", cfg.Sound.Type)
	fmt.Fprintf(out, "  voice:     %s (%d wpm)\n", cfg.Voice.Name, cfg.Voice.Rate)
	if cfg.Test {
		fmt.Fprintf(out, "  test mode: on (no backend will be invoked)\n")
	}

	root := audio.NewResolver(cfg.Sound.Dir, cfg.Sound.Type).Root()
	if _, err := os.Stat(root); err != nil {
		fmt.Fprintf(out, "  %s\n", missStyle.Render("sound directory missing: "+root))
	}

	fmt.Fprintln(out, headingStyle.Render("sound backends"))
	for _, b := range audio.DefaultCandidates() {
		printProbe(out, b.Name(), b.Available())
	}

	fmt.Fprintln(out, headingStyle.Render("voice backends"))
	voices := voice.DefaultCandidates()
	anyVoice := false
	for _, b := range voices {
		ok := b.Available()
		anyVoice = anyVoice || ok
		printProbe(out, b.Name(), ok)
	}
	if !anyVoice {
		fmt.Fprintf(out, "  %s\n", missStyle.Render("voice output will be silently skipped"))
	}

	fmt.Fprintln(out, headingStyle.Render("desktop notifications"))
	n := notify.New(logger)
	defer n.Close()
	printProbe(out, "dbus session", n.Available())
	if !cfg.Notify.Enabled {
		fmt.Fprintf(out, "  %s\n", missStyle.Render("disabled in config"))
	}

	return nil
}

func printProbe(out io.Writer, name string, ok bool) {
	mark := okStyle.Render("✓")
	if !ok {
		mark = missStyle.Render("✗")
	}
	fmt.Fprintf(out, "  %s %s\n", mark, name)
}
