// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and is shared by every component of the overlay
// core.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Scanner attached")
//
//	// Inside a component:
//	l := logger.WithComponent(log, "skills")
//	l.Warn("Skill row skipped", zap.Uint64("addr", addr))
package logger
