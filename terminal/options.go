// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package terminal

import "io"

// Option adjusts a single Output call.
type Option func(*config)

type config struct {
	Writer io.Writer
	Style  string
}

// WithStyle renders the message in one of the named styles, e.g.
// HeaderStyle or WarningBoldStyle.
func WithStyle(style string) Option {
	return func(c *config) { c.Style = style }
}

// WithHeaderStyle opens a new section with a "==>" prefix. Meant for a
// single line.
func WithHeaderStyle() Option { return WithStyle(HeaderStyle) }

// WithInfoStyle indents the message under the preceding header.
func WithInfoStyle() Option { return WithStyle(InfoStyle) }

// WithDebugStyle marks the message as debug detail.
func WithDebugStyle() Option { return WithStyle(DebugStyle) }

// WithErrorStyle marks the message as a failure. Unless WithWriter says
// otherwise it goes to stderr.
func WithErrorStyle() Option { return WithStyle(ErrorStyle) }

// WithTraceStyle marks the message as trace detail, below debug.
func WithTraceStyle() Option { return WithStyle(TraceStyle) }

// WithWarningStyle marks the message as a warning.
func WithWarningStyle() Option { return WithStyle(WarningStyle) }

// WithSuccessStyle marks the message as a completed step.
func WithSuccessStyle() Option { return WithStyle(SuccessStyle) }

// WithWriter sends the message to w instead of the UI's stream.
func WithWriter(w io.Writer) Option {
	return func(c *config) { c.Writer = w }
}
