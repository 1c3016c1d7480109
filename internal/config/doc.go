// Package config provides user configuration management for motohub.
//
// The configuration is a YAML file holding display preferences and,
// optionally, the profile, settings and garage to show on start. It is read
// once at startup. Edits made through the app only live in memory and are
// never written back.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/motohub/config.yaml or $HOME/.config/motohub/config.yaml
//   - macOS: $HOME/.config/motohub/config.yaml
//   - Windows: %LOCALAPPDATA%\motohub\config.yaml
//
// Every function taking a path uses this location when the path is empty.
//
// # File Format
//
//	version: 1
//	preferences:
//	  theme: dark
//	  toast_seconds: 4
//	seed:
//	  vehicles:
//	    - id: "1"
//	      name: My Classic 350
//	      type: motorcycle
//	      year: 2022
//	      specs:
//	        Engine: 349cc, Single Cylinder, 4 Stroke
//
// Spec keys are limited to the fixed technical specification set; any other
// key fails to load.
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	profile, settings, vehicles := cfg.SeedData()
package config
