// Package logger builds the structured zap logger shared by every component.
//
// The retry loop, the dispatcher and the merge steps all log through named children of the
// logger returned by New, so a failing attempt can be traced back to the step that skipped or
// failed. HTTP handlers attach the request's RayID with WithRayID.
//
// # Configuration
//
//   - Level: debug, info, warn, error. "debug" also switches to zap's development config.
//   - Format: json (production) or console (development).
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log.Named("retry").Info("Retry loop started")
package logger
