// Package tui implements the interactive motohub profile page using Bubble
// Tea.
//
// # Architecture
//
// AppModel renders the profile header, the Vehicles/Posts/Routes/Groups tabs
// and the toast stack, and owns at most one open dialog. Every dialog is an
// EditorModel over a session.Controller obtained from the hub, so editing a
// vehicle, a post, the profile or the settings all follow the same flow:
//
//	hub.EditVehicle(id) → EditorModel (drafts keystrokes) → enter: Commit
//	                                                      → esc:   Cancel
//
// Commit runs the hub's save handler, which merges the entity back into the
// displayed state and raises a toast. Cancel leaves the state untouched.
//
// # Key Bindings
//
//	a        add vehicle         p  edit profile      s  settings
//	e/enter  edit selection      c  change cover      v  change avatar
//	tab      next tab            t  toggle theme      x  dismiss toasts
//	n        new post            q  quit
//
// e edits the selected vehicle on the Vehicles tab and the selected post on
// the Posts tab. A post with no text is never shared.
//
// Inside a dialog, tab/↑/↓ move between fields, space or ←/→ flip toggles
// and the vehicle or post type, enter saves and esc cancels.
//
// # Toasts
//
// Toasts expire on their own. A tea.Tick every ToastTickInterval prunes them
// from the notifier so the view never shows a stale one for long.
//
// # Themes
//
// Styles are rebuilt from theme.CurrentPalette on every render, so a
// committed dark mode setting or the t key restyles the next frame.
package tui
