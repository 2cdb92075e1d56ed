package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/koehook/koe/internal/config"
	"github.com/koehook/koe/internal/deliver"
	"github.com/koehook/koe/internal/rules"
)

var playCmd = &cobra.Command{
	Use:   "play <sound-id>",
	Short: "Play one sound by identifier",
	Long: `Resolve a sound identifier under the configured sound directory and
play it through the first working backend, exactly as hook mode would.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

var sayCmd = &cobra.Command{
	Use:   "say <text-or-key>",
	Short: "Speak text through the first working voice backend",
	Long: `Speak the argument. A known description key (for example "Stop" or
"git_commit") is translated first; anything else is spoken literally.`,
	Args: cobra.ExactArgs(1),
	RunE: runSay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(sayCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	// Manual invocations should wait for the player so the command
	// doesn't exit before anything is heard.
	playCfg := *cfg
	playCfg.Mode = config.ModeSound
	playCfg.Sound.Blocking = true

	engine := deliver.NewDefault(&playCfg, logger)
	engine.Deliver(rules.Directive{Sound: args[0]})

	if playCfg.Test {
		fmt.Fprintln(cmd.OutOrStdout(), "test mode: nothing played")
	}
	return nil
}

func runSay(cmd *cobra.Command, args []string) error {
	sayCfg := *cfg
	sayCfg.Mode = config.ModeVoice
	sayCfg.Voice.Async = false

	engine := deliver.NewDefault(&sayCfg, logger)
	engine.Deliver(rules.Directive{VoiceKey: args[0]})

	if sayCfg.Test {
		fmt.Fprintln(cmd.OutOrStdout(), "test mode: nothing spoken")
	}
	return nil
}
