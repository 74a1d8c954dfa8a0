// Pinview is a terminal pin-code entry prompt.
//
// It shows a row of single-digit cells with a verify button, advances focus
// as digits are typed, and prints the code once every cell is filled and
// the user presses enter.
//
// Usage:
//
//	pinview [command] [flags]
//
// Running without arguments launches the entry prompt.
// See 'pinview --help' for available commands.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/pinview/internal/logging"
	"github.com/muurk/pinview/internal/pin"
	"github.com/muurk/pinview/internal/ui"
	"github.com/muurk/pinview/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints a failure box for err. Cancellation exits quietly.
func reportError(w io.Writer, err error) {
	if errors.Is(err, errCancelled) {
		return
	}
	logging.Error("Command failed", zap.Error(err))

	title := "pinview"
	if pin.IsInvalidConfiguration(err) {
		title = "Invalid settings"
	}
	ui.NewPrinter(w).Failure(title, err)
}

var rootCmd = &cobra.Command{
	Use:   "pinview",
	Short: "Segmented pin-code entry for the terminal",
	Long: `A terminal prompt for entering short numeric codes.

Each digit has its own cell. Typing a digit moves to the next cell, and the
verify button activates once every cell is filled.

If no command is specified, the entry prompt launches automatically.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the prompt when no subcommand provided
		return runEntry(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "pinview %s\n", version.Full())
		if version.IsDev() {
			fmt.Fprintln(out, "Untagged development build")
		}
	},
}
