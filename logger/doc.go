// Package logger provides structured logging built on zerolog.
//
// SDK clients tag their logger with a client name so that output from
// several pipelines sharing a process stays attributable:
//
//	log := logger.NewDefault("ipinfo")
//	log.WithComponent("transport").Debug("request sent")
//
// Nop returns a no-op logger for callers that wire none.
package logger
