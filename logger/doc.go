// Package logger provides structured logging using zerolog.
//
// It supports JSON and console output, log level configuration and
// component-scoped loggers. Structured errors passed to WithError or
// LogError are expanded into their kind, discriminant, reason and details
// instead of being flattened to a message.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//	  stacktrace: true
//
// # Usage
//
//	log := logger.Get("billing")
//	log.WithError(err).Error("charge failed")
package logger
