package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/pinview/internal/pin"
	"github.com/muurk/pinview/internal/pinview"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if !strings.Contains(configDir, "pinview") {
		t.Errorf("GetConfigDir() = %v, should contain 'pinview'", configDir)
	}

	switch runtime.GOOS {
	case "darwin", "linux":
		if os.Getenv("XDG_CONFIG_HOME") == "" && !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestGetConfigDirHonorsXDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on linux")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if want := filepath.Join(dir, "pinview"); got != want {
		t.Errorf("GetConfigDir() = %v, want %v", got, want)
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestNewSettings(t *testing.T) {
	s := NewSettings()

	if s.Version != CurrentVersion {
		t.Errorf("NewSettings().Version = %v, want %v", s.Version, CurrentVersion)
	}
	if s.Digits != 4 {
		t.Errorf("NewSettings().Digits = %v, want 4", s.Digits)
	}
	if s.Titles != nil {
		t.Errorf("NewSettings().Titles = %+v, want nil", s.Titles)
	}
	if got := s.PanelTitles(); got != pinview.DefaultTitles {
		t.Errorf("PanelTitles() = %+v, want %+v", got, pinview.DefaultTitles)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("NewSettings().Validate() error = %v", err)
	}
}

func TestSettingsValidate(t *testing.T) {
	three := 3
	four := 4

	tests := []struct {
		name    string
		mutate  func(s *Settings)
		wantErr bool
	}{
		{"Valid: defaults", func(s *Settings) {}, false},
		{"Valid: six digits", func(s *Settings) { s.Digits = 6 }, false},
		{"Valid: initial focus last", func(s *Settings) { s.InitialFocus = &three }, false},
		{"Invalid: zero digits", func(s *Settings) { s.Digits = 0 }, true},
		{"Invalid: negative digits", func(s *Settings) { s.Digits = -2 }, true},
		{"Invalid: initial focus out of range", func(s *Settings) { s.InitialFocus = &four }, true},
		{"Invalid: negative delay", func(s *Settings) { s.InitialFocusDelay = -time.Second }, true},
		{"Invalid: version", func(s *Settings) { s.Version = 2 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSettings()
			tt.mutate(s)
			err := s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !pin.IsInvalidConfiguration(err) {
				t.Errorf("Expected invalid configuration, got %T", err)
			}
		})
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Digits != 4 {
		t.Errorf("Digits = %d, want default 4", s.Digits)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "digits: 6\ninitial_focus_delay: 750ms\ntheme:\n  primary: \"#FF0000\"\n"
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Digits != 6 {
		t.Errorf("Digits = %d, want 6", s.Digits)
	}
	if s.InitialFocusDelay != 750*time.Millisecond {
		t.Errorf("InitialFocusDelay = %v, want 750ms", s.InitialFocusDelay)
	}
	if got := s.PanelTitles(); got != pinview.DefaultTitlesFor(6) {
		t.Errorf("PanelTitles() = %+v, want defaults for 6 digits", got)
	}
	if got := s.Palette().Primary; got != lipgloss.Color("#FF0000") {
		t.Errorf("Palette().Primary = %v, want #FF0000", got)
	}
	if got := s.Palette().Muted; got != pinview.DefaultPalette().Muted {
		t.Errorf("Palette().Muted = %v, want default", got)
	}
}

func TestLoadDigitsRewordsSubtitle(t *testing.T) {
	tests := []struct {
		name         string
		data         string
		wantTitle    string
		wantSubtitle string
	}{
		{
			"No titles",
			"version: 1\ndigits: 6\n",
			pinview.DefaultTitles.Title,
			"Enter the 6 digit code from the other device",
		},
		{
			"Stock four digit subtitle",
			"version: 1\ndigits: 6\ntitles:\n  title: Pair\n  subtitle: Enter the 4 digit code from the other device\n  button: Go\n",
			"Pair",
			"Enter the 6 digit code from the other device",
		},
		{
			"Custom subtitle kept",
			"version: 1\ndigits: 6\ntitles:\n  subtitle: Check the TV\n",
			pinview.DefaultTitles.Title,
			"Check the TV",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0600); err != nil {
				t.Fatal(err)
			}
			s, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			panel, err := pinview.New(s.PanelOptions(nil))
			if err != nil {
				t.Fatalf("pinview.New() error = %v", err)
			}
			defer panel.Close()

			if panel.Count() != 6 {
				t.Errorf("Count() = %d, want 6", panel.Count())
			}
			got := panel.Titles()
			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}
			if got.Subtitle != tt.wantSubtitle {
				t.Errorf("Subtitle = %q, want %q", got.Subtitle, tt.wantSubtitle)
			}
			if got.Button == "" {
				t.Error("Button should fall back to the default")
			}
		})
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"Zero digits", "digits: 0\n"},
		{"Bad version", "version: 9\n"},
		{"Malformed YAML", "digits: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0600); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load() expected error")
			}
		})
	}
}

func TestSettingsSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	two := 2

	s := NewSettings()
	s.Digits = 6
	s.Mask = true
	s.InitialFocus = &two
	s.Titles = &Titles{Title: "Pair device"}
	s.Log = &LogSettings{Level: "debug", File: "/tmp/pinview.log"}

	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should be renamed away")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# pinview Configuration File") {
		t.Error("saved file should start with the header comment")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Digits != 6 || !loaded.Mask || loaded.Titles.Title != "Pair device" {
		t.Errorf("loaded = %+v", loaded)
	}
	if loaded.InitialFocus == nil || *loaded.InitialFocus != 2 {
		t.Errorf("InitialFocus = %v, want 2", loaded.InitialFocus)
	}
	if loaded.Log == nil || loaded.Log.Level != "debug" {
		t.Errorf("Log = %+v, want debug", loaded.Log)
	}
}

func TestSaveRejectsInvalidSettings(t *testing.T) {
	s := NewSettings()
	s.Digits = 0
	path := filepath.Join(t.TempDir(), "config.yaml")

	if err := s.Save(path); !pin.IsInvalidConfiguration(err) {
		t.Errorf("Save() error = %v, want invalid configuration", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("invalid settings should not be written")
	}
}

func TestPanelOptions(t *testing.T) {
	s := NewSettings()
	s.Digits = 5
	s.Mask = true
	s.Titles = &Titles{Title: "T", Subtitle: "S", Button: "B"}

	var got string
	opts := s.PanelOptions(func(code string) { got = code })

	panel, err := pinview.New(opts)
	if err != nil {
		t.Fatalf("pinview.New() error = %v", err)
	}
	defer panel.Close()

	if panel.Count() != 5 {
		t.Errorf("Count() = %d, want 5", panel.Count())
	}
	if panel.Titles() != (pinview.Titles{Title: "T", Subtitle: "S", Button: "B"}) {
		t.Errorf("Titles() = %+v", panel.Titles())
	}

	for i := 0; i < 5; i++ {
		panel.Input(i, "1")
	}
	panel.Verify()
	if got != "11111" {
		t.Errorf("OnVerify got %q, want 11111", got)
	}
}

func BenchmarkGetConfigDir(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = GetConfigDir()
	}
}
