package config

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/pinview/internal/pin"
	"github.com/muurk/pinview/internal/pinview"
)

// CurrentVersion is the settings file format version
const CurrentVersion = 1

// Settings represents the entire user configuration file.
type Settings struct {
	Version           int           `yaml:"version"`
	Digits            int           `yaml:"digits"`                        // Number of digit cells
	Titles            *Titles       `yaml:"titles,omitempty"`              // Text around the cells
	Mask              bool          `yaml:"mask"`                          // Hide typed digits
	InitialFocus      *int          `yaml:"initial_focus,omitempty"`       // Cell focused on start
	InitialFocusDelay time.Duration `yaml:"initial_focus_delay,omitempty"` // e.g. "750ms"
	Theme             *ThemeColors  `yaml:"theme,omitempty"`               // Color overrides
	Log               *LogSettings  `yaml:"log,omitempty"`                 // Logging output
}

// Titles mirrors pinview.Titles with YAML tags.
type Titles struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Button   string `yaml:"button"`
}

// ThemeColors overrides palette entries. Empty fields keep the default.
type ThemeColors struct {
	Primary string `yaml:"primary,omitempty"` // e.g. "#7D56F4"
	Muted   string `yaml:"muted,omitempty"`
	Text    string `yaml:"text,omitempty"`
	Surface string `yaml:"surface,omitempty"`
}

// LogSettings controls the zap logger. Environment variables still win
// when these are empty.
type LogSettings struct {
	Level string `yaml:"level,omitempty"` // debug, info, warn, error
	File  string `yaml:"file,omitempty"`  // Defaults to stderr
}

// NewSettings creates Settings with default values. Titles stay nil so the
// subtitle follows Digits.
func NewSettings() *Settings {
	return &Settings{
		Version: CurrentVersion,
		Digits:  4,
	}
}

// Validate checks the settings can build a panel.
func (s *Settings) Validate() error {
	if s.Version != CurrentVersion {
		return pin.NewConfigError("version", "unsupported config version: %d (expected %d)", s.Version, CurrentVersion)
	}
	if err := pin.ValidateCount(s.Digits); err != nil {
		return err
	}
	if s.InitialFocus != nil {
		if err := pin.ValidateIndex("initial_focus", *s.InitialFocus, s.Digits); err != nil {
			return err
		}
	}
	if s.InitialFocusDelay < 0 {
		return pin.NewConfigError("initial_focus_delay", "must not be negative, got %s", s.InitialFocusDelay)
	}
	return nil
}

// Palette returns the default palette with any overrides applied.
func (s *Settings) Palette() pinview.Palette {
	p := pinview.DefaultPalette()
	if s.Theme == nil {
		return p
	}
	if s.Theme.Primary != "" {
		p.Primary = lipgloss.Color(s.Theme.Primary)
	}
	if s.Theme.Muted != "" {
		p.Muted = lipgloss.Color(s.Theme.Muted)
	}
	if s.Theme.Text != "" {
		p.Text = lipgloss.Color(s.Theme.Text)
	}
	if s.Theme.Surface != "" {
		p.Surface = lipgloss.Color(s.Theme.Surface)
	}
	return p
}

// PanelTitles returns the text around the cells. Blank fields take the
// defaults for Digits, and so does the stock four digit subtitle older
// config files carry.
func (s *Settings) PanelTitles() pinview.Titles {
	def := pinview.DefaultTitlesFor(s.Digits)
	if s.Titles == nil {
		return def
	}

	t := pinview.Titles{
		Title:    s.Titles.Title,
		Subtitle: s.Titles.Subtitle,
		Button:   s.Titles.Button,
	}
	if t.Title == "" {
		t.Title = def.Title
	}
	if t.Subtitle == "" || t.Subtitle == pinview.DefaultTitles.Subtitle {
		t.Subtitle = def.Subtitle
	}
	if t.Button == "" {
		t.Button = def.Button
	}
	return t
}

// PanelOptions maps the settings onto panel options.
func (s *Settings) PanelOptions(onVerify pinview.OnVerify) pinview.Options {
	theme := pinview.NewTheme(s.Palette())
	return pinview.Options{
		Count:             s.Digits,
		InitialFocus:      s.InitialFocus,
		Titles:            s.PanelTitles(),
		OnVerify:          onVerify,
		Mask:              s.Mask,
		InitialFocusDelay: s.InitialFocusDelay,
		Theme:             &theme,
	}
}
