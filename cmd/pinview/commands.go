package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/pinview/internal/config"
	"github.com/muurk/pinview/internal/logging"
	"github.com/muurk/pinview/internal/pinview"
	"github.com/muurk/pinview/internal/ui"
)

// errCancelled is returned when the user leaves the prompt without verifying.
// main exits non-zero without printing it again.
var errCancelled = errors.New("pin entry cancelled")

// Command flags
var (
	configPath   string
	outputFormat string
	logLevel     string

	digits       int
	title        string
	subtitle     string
	buttonTitle  string
	mask         bool
	initialFocus int
	focusDelay   time.Duration

	forceInit bool
)

func init() {
	// Common flags (persistent on root)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file (default: OS config dir)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, compact, json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when empty")

	addEntryFlags(rootCmd)
	addEntryFlags(entryCmd)

	displayCmd.Flags().BoolVar(&mask, "mask", false, "Hide the digits")

	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing settings file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	rootCmd.AddCommand(entryCmd)
	rootCmd.AddCommand(displayCmd)
	rootCmd.AddCommand(configCmd)
}

func addEntryFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&digits, "digits", "n", 4, "Number of digits")
	cmd.Flags().StringVar(&title, "title", "", "Title above the cells")
	cmd.Flags().StringVar(&subtitle, "subtitle", "", "Subtitle below the title")
	cmd.Flags().StringVar(&buttonTitle, "button", "", "Verify button label")
	cmd.Flags().BoolVar(&mask, "mask", false, "Hide typed digits")
	cmd.Flags().IntVar(&initialFocus, "initial-focus", 0, "Cell focused on start")
	cmd.Flags().DurationVar(&focusDelay, "focus-delay", 0, "Wait before focusing the first cell")
}

// entryCmd runs the interactive prompt
var entryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Prompt for a pin code",
	Long: `Show the pin-code entry prompt and print the code once verified.

Digits advance focus automatically. Use tab/shift+tab or the arrow keys to
pick a cell, backspace to clear it, enter to verify and esc to cancel.`,
	Example: `  # Four digit prompt (default)
  pinview entry

  # Six digits, hidden, printed bare for scripting
  pinview entry --digits 6 --mask --format compact

  # JSON output
  pinview entry --format json`,
	RunE: runEntry,
}

func runEntry(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := initLogging(settings); err != nil {
		return err
	}
	defer logging.Sync()

	if !ui.IsTerminal() {
		logging.Warn("Stdout is not a terminal, the prompt may not render")
	}

	panel, err := pinview.New(settings.PanelOptions(nil))
	if err != nil {
		return fmt.Errorf("cannot build pin panel: %w", err)
	}
	defer panel.Close()

	final, err := tea.NewProgram(newEntryModel(panel)).Run()
	if err != nil {
		return fmt.Errorf("pin prompt failed: %w", err)
	}

	result, ok := final.(entryModel)
	if !ok || !result.verified {
		logging.Info("Pin entry cancelled", zap.String("panel_id", panel.ID()))
		return errCancelled
	}

	return printCode(cmd, result.code)
}

func printCode(cmd *cobra.Command, code string) error {
	out := cmd.OutOrStdout()

	switch outputFormat {
	case "json":
		enc := json.NewEncoder(out)
		return enc.Encode(struct {
			Code   string `json:"code"`
			Digits int    `json:"digits"`
		}{Code: code, Digits: len(code)})

	case "compact":
		_, err := fmt.Fprintln(out, code)
		return err

	case "detailed":
		p := ui.NewPrinter(out)
		p.Success("Pin entered",
			ui.Param{Key: "Code", Value: code},
			ui.Param{Key: "Digits", Value: strconv.Itoa(len(code))},
		)
		return nil

	default:
		return unknownFormat()
	}
}

// displayCmd prints a read-only code
var displayCmd = &cobra.Command{
	Use:   "display <code>",
	Short: "Print a code as styled cells",
	Long: `Render a fixed code as a row of read-only cells, one per character.

Useful for showing the code the other side must type.`,
	Example: `  pinview display 8412
  pinview display 8412 --format compact`,
	Args: cobra.ExactArgs(1),
	RunE: runDisplay,
}

func runDisplay(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	display := pinview.NewDisplay(args[0]).
		WithTheme(pinview.NewTheme(settings.Palette())).
		WithMask(settings.Mask)

	p := ui.NewPrinter(cmd.OutOrStdout())
	switch outputFormat {
	case "compact":
		p.Line(display.View())
	case "json":
		return json.NewEncoder(cmd.OutOrStdout()).Encode(struct {
			Code   string `json:"code"`
			Digits int    `json:"digits"`
		}{Code: display.Text(), Digits: display.Len()})
	case "detailed":
		p.Header("Pin Display", "pinview display", ui.Param{Key: "Digits", Value: strconv.Itoa(display.Len())})
		p.Line(display.View())
	default:
		return unknownFormat()
	}
	return nil
}

func unknownFormat() error {
	return fmt.Errorf("unknown output format %q (use detailed, compact or json)", outputFormat)
}

// configCmd groups the settings file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the settings file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil && !forceInit {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := config.NewSettings().Save(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		data, err := settings.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

// loadSettings reads the settings file and applies any flags the user set
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	var settings *config.Settings
	var err error
	if configPath != "" {
		settings, err = config.Load(configPath)
	} else {
		settings, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("digits") {
		settings.Digits = digits
	}
	t := settings.PanelTitles()
	settings.Titles = &config.Titles{Title: t.Title, Subtitle: t.Subtitle, Button: t.Button}
	if flags.Changed("title") {
		settings.Titles.Title = title
	}
	if flags.Changed("subtitle") {
		settings.Titles.Subtitle = subtitle
	}
	if flags.Changed("button") {
		settings.Titles.Button = buttonTitle
	}
	if flags.Changed("mask") {
		settings.Mask = mask
	}
	if flags.Changed("initial-focus") {
		settings.InitialFocus = &initialFocus
	}
	if flags.Changed("focus-delay") {
		settings.InitialFocusDelay = focusDelay
	}
	if logLevel != "" {
		if settings.Log == nil {
			settings.Log = &config.LogSettings{}
		}
		settings.Log.Level = logLevel
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func initLogging(settings *config.Settings) error {
	var level, file string
	if settings.Log != nil {
		level, file = settings.Log.Level, settings.Log.File
	}
	return logging.InitializeWithOutput(level, file)
}
