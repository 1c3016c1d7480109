// Motohub is a rider profile page for the terminal.
//
// It shows a rider's profile, garage of vehicles and account settings, and
// edits them through dialogs that draft changes and apply them only when
// saved. Edits live in memory for the session; the configuration file only
// supplies preferences and the starting data.
//
// Usage:
//
//	motohub [command] [flags]
//
// Running without arguments launches the interactive profile page.
// See 'motohub --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/motohub/internal/config"
	"github.com/muurk/motohub/internal/logging"
	"github.com/muurk/motohub/internal/theme"
	"github.com/muurk/motohub/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logging.Sync()
}

// Global flags
var (
	configPath string
	themeFlag  string
)

// cfg is loaded once before any command runs
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "motohub",
	Short: "Rider profile, garage and settings",
	Long: `Motohub shows a rider's profile, garage and settings.

Vehicles, the profile and the settings are edited through dialogs that
draft changes and only apply them when saved. Nothing is written back
to disk.

If no command is specified, the interactive profile page launches.`,
	Version:      version.Version,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd, args)
	},
}

func init() {
	// Assigned here rather than in the literal: setup refers to rootCmd.
	rootCmd.PersistentPreRunE = setup

	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/motohub/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "Override the configured theme (light, dark)")

	rootCmd.AddCommand(versionCmd)
}

// setup loads the configuration and initializes logging and the theme.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	opts, err := logOptions(os.Getenv(logging.LogLevelEnvVar), cfg.Preferences, cmd == rootCmd || cmd == tuiCmd)
	if err != nil {
		return err
	}
	if err := logging.Initialize(opts); err != nil {
		return err
	}

	mode := cfg.ThemeMode()
	if themeFlag != "" {
		if mode, err = theme.ParseMode(themeFlag); err != nil {
			return err
		}
	}
	theme.Set(mode)

	logging.Debug("Configuration loaded")
	return nil
}

// logOptions picks the log level and sink. The environment level wins over
// the configured one. Interactive commands never log to the terminal.
func logOptions(envLevel string, prefs *config.Preferences, interactive bool) (logging.Options, error) {
	opts := logging.Options{Level: envLevel}
	if prefs != nil {
		if opts.Level == "" {
			opts.Level = prefs.LogLevel
		}
		opts.File = prefs.LogFile
	}
	if opts.Level == "" || opts.File != "" || !interactive {
		return opts, nil
	}

	path, err := config.GetLogPath()
	if err != nil {
		return opts, err
	}
	opts.File = path
	return opts, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("motohub %s\n", version.Full())
	},
}
