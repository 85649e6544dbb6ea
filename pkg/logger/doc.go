// Package logger provides a small factory around log/slog plus helper
// attribute constructors shared across the client packages.
//
// New builds a *slog.Logger configured by functional options: output format
// (text or json), minimum level, output destination, and static attributes
// attached to every record. Development and Production presets bundle the
// usual choices for each environment.
//
// Attribute helpers such as Error, UserID and NotificationID keep attribute
// keys consistent across packages.
//
// Usage:
//
//	log := logger.New(
//	    logger.WithProduction("facexd-client"),
//	)
//	log.Info("notification store bound", logger.UserID("usr_123"))
package logger
