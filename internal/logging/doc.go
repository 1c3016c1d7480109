// Package logging provides structured logging for motohub.
//
// It wraps a global zap logger with a few convenience functions and the
// domain helpers used by the edit flows:
//
//	logging.LogSessionEvent("vehicle", "vehicle-0192...", "opened")
//	logging.LogMerge("vehicle", "vehicle-0192...", true, 3)
//	logging.LogNotification("Vehicle updated")
//
// # Configuration
//
// Logging is silent unless a level is given, either explicitly or through the
// MOTOHUB_LOG_LEVEL environment variable:
//
//	if err := logging.Initialize(logging.Options{Level: "debug"}); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// The terminal UI owns stdout while it runs, so Options.File can point the
// console encoder at a file instead.
//
// # Thread Safety
//
// All functions are safe for concurrent use once Initialize has returned.
package logging
