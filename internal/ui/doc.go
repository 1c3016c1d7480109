// Package ui renders styled, non-interactive terminal output for the motohub
// CLI: headers, result boxes, vehicle and profile cards and toasts.
//
// Colours come from the theme package. Build a Printer after the theme is
// set so it picks up the right palette:
//
//	theme.Set(cfg.ThemeMode())
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintProfile(profile)
//	p.PrintGarage(vehicles)
//	p.PrintToast("Vehicle updated", "Your vehicle details have been updated successfully.")
//
// The same render functions back the interactive views in the tui package.
//
// # Logging Integration
//
// Logging is controlled via the MOTOHUB_LOG_LEVEL environment variable. When
// unset or empty, zap logging is silent so that output stays clean.
package ui
