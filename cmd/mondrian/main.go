// Package main implements Mondrian, an auto-tiling window manager engine
// with a terminal demo desktop. Windows are kept in a binary split tree per
// workspace and monitor; openings, closings, drags and workspace switches
// reflow the layout automatically.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/mondrian-wm/mondrian/internal/config"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode    bool
	spacing      int
	noAnimations bool
	workspaces   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mondrian",
		Short: "Auto-tiling window manager demo",
		Long: `Mondrian - auto-tiling window manager

Keeps every window in a binary split tree, one tree per workspace and
monitor. New windows split the window under the pointer, closed windows
hand their space back to their sibling, and gaps and edge margins come
from the configuration file, which is hot reloaded.`,
		Example: `  # Run the demo desktop
  mondrian

  # Run with a custom gap size
  mondrian --spacing 2

  # Run without animations
  mondrian --no-animations

  # Edit configuration
  mondrian config edit`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocal()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.Flags().IntVar(&spacing, "spacing", -1, "Gap between tiled windows (overrides config)")
	rootCmd.Flags().BoolVar(&noAnimations, "no-animations", false, "Disable window transitions")
	rootCmd.Flags().IntVar(&workspaces, "workspaces", -1, "Number of workspaces (overrides config)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and change the configuration file",
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print where the configuration file lives",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the configuration in an editor",
		Long: `Open the configuration file in $EDITOR (then $VISUAL, then
whichever of vim, vi, nano or emacs is on PATH). A default file is
written first if none exists.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return editConfigFile()
		},
	}

	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default configuration",
		Long: `Replace the configuration file with the built-in defaults.
Asks for confirmation when a file already exists.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return resetConfigToDefaults()
		},
	}

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd)

	rootCmd.AddCommand(configCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}

// printConfigPath writes the resolved configuration file location to stdout.
func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

// editConfigFile opens the configuration in the user's editor, writing the
// defaults first when no file exists yet.
func editConfigFile() error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("No config file yet, writing defaults to %s\n", configPath)
		if err := config.SaveConfig(config.DefaultConfig(), configPath); err != nil {
			return fmt.Errorf("writing default config: %w", err)
		}
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		for _, e := range []string{"vim", "vi", "nano", "emacs"} {
			if _, err := exec.LookPath(e); err == nil {
				editor = e
				break
			}
		}
	}
	if editor == "" {
		return fmt.Errorf("no editor found, set $EDITOR")
	}

	cmd := exec.Command(editor, configPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}
	return nil
}

// resetConfigToDefaults overwrites the configuration file with the built-in
// defaults, asking before discarding an existing file.
func resetConfigToDefaults() error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("This overwrites %s\n", configPath)
		fmt.Printf("Reset to defaults? (yes/no): ")

		var response string
		fmt.Scanln(&response)
		response = strings.ToLower(strings.TrimSpace(response))

		if response != "yes" && response != "y" {
			fmt.Println("Keeping the current configuration.")
			return nil
		}
	}

	if err := config.SaveConfig(config.DefaultConfig(), configPath); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("Defaults written to %s\n", configPath)
	fmt.Println("Edit them with: mondrian config edit")
	return nil
}
