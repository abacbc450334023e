// Package main is the entry point for the xrandr-utils application.
// It initializes the root command, registers the display query, EDID and layout
// sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"os"

	commands "github.com/chares8191/xrandr-utils/cmd/xrandr-utils/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "xrandr-utils",
		Short: "X11 display inspection and layout CLI tool",
		Long: `xrandr-utils is a command-line tool for inspecting and arranging X11 displays.
It reads xrandr --verbose output to report connection states, geometries,
EDID blocks, serial numbers and connector ids, and applies single or dual
display layouts through xrandr.

A captured report can be piped on stdin instead of running xrandr:
  xrandr --verbose | xrandr-utils display_names

Tool locations and logging are configured through environment variables:
- XRANDR_UTILS_XRANDR_PATH
- XRANDR_UTILS_EDID_DECODE_PATH
- XRANDR_UTILS_LOG_LEVEL
- XRANDR_UTILS_LOG_TYPE
- XRANDR_UTILS_LOG_FILE`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	return rootCmd.Execute()
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitQueryCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize query commands: %w", err)
	}

	if err := commands.InitEDIDCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize EDID commands: %w", err)
	}

	if err := commands.InitLayoutCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize layout commands: %w", err)
	}

	return nil
}
