// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package logging gives packages below the CLI a small logging surface so
// they need not depend on hclog or the terminal UI directly.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
)

const (
	// EnvLogLevel names the environment variable holding the log level.
	EnvLogLevel = "FLAGPARSE_LOG_LEVEL"

	DefaultLevel = hclog.Warn
)

// Logger is what the declarations loader and other internal packages log
// through. Messages are plain strings; structure is the caller's concern.
type Logger interface {
	Trace(message string)
	Debug(message string)
	Info(message string)
	Warning(message string)
	Error(message string)

	// ErrorWithContext logs err under sub with ctx lines such as
	// "Flag Name: verbose".
	ErrorWithContext(err error, sub string, ctx ...string)
}

// New returns the CLI's hclog logger writing to w. level is parsed loosely;
// anything unrecognized means DefaultLevel.
func New(name string, w io.Writer, level string) hclog.Logger {
	lvl := hclog.LevelFromString(strings.TrimSpace(level))
	if lvl == hclog.NoLevel {
		lvl = DefaultLevel
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Level:  lvl,
		Output: w,
		Color:  hclog.AutoColor,
	})
}

// HCLogger is a Logger backed by hclog.
type HCLogger struct {
	log hclog.Logger
}

// FromHCLog wraps l. With a nil l nothing is logged.
func FromHCLog(l hclog.Logger) *HCLogger {
	if l == nil {
		l = hclog.NewNullLogger()
	}
	return &HCLogger{log: l}
}

func (l *HCLogger) Trace(message string)   { l.log.Trace(message) }
func (l *HCLogger) Debug(message string)   { l.log.Debug(message) }
func (l *HCLogger) Info(message string)    { l.log.Info(message) }
func (l *HCLogger) Warning(message string) { l.log.Warn(message) }
func (l *HCLogger) Error(message string)   { l.log.Error(message) }

func (l *HCLogger) ErrorWithContext(err error, sub string, ctx ...string) {
	l.log.Error(sub, "error", err, "context", ctx)
}

// TestLogger sends every message, whatever its level, to a function such
// as testing.T.Log.
type TestLogger struct {
	log func(args ...interface{})
}

func NewTestLogger(log func(args ...interface{})) *TestLogger {
	return &TestLogger{log: log}
}

func (l *TestLogger) Trace(message string)   { l.log(message) }
func (l *TestLogger) Debug(message string)   { l.log(message) }
func (l *TestLogger) Info(message string)    { l.log(message) }
func (l *TestLogger) Warning(message string) { l.log(message) }
func (l *TestLogger) Error(message string)   { l.log(message) }

// ErrorWithContext logs the error, the subject and each context line as
// separate messages.
func (l *TestLogger) ErrorWithContext(err error, sub string, ctx ...string) {
	l.log(fmt.Sprintf("err: %s", err))
	l.log(sub)
	for _, c := range ctx {
		l.log(c)
	}
}
