// Package config provides user configuration management for pinview.
//
// This package manages a YAML settings file holding the panel defaults:
// digit count, titles, masking, initial focus and color overrides. The
// file follows OS-specific conventions for its location. Command-line flags
// override whatever the file says.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/pinview/config.yaml or $HOME/.config/pinview/config.yaml
//   - macOS: $HOME/.config/pinview/config.yaml
//   - Windows: %LOCALAPPDATA%\pinview\config.yaml
//
// # Security
//
// Pin codes are never written to this file.
//
// # Usage Example
//
//	settings, err := config.LoadDefault()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	panel, err := pinview.New(settings.PanelOptions(onVerify))
//
// # Example File
//
//	version: 1
//	digits: 6
//	titles:
//	  title: Pair device
//	  subtitle: Enter the 6 digit code shown on the TV
//	  button: Pair
//	mask: false
//	initial_focus_delay: 0s
//	theme:
//	  primary: "#7D56F4"
package config
