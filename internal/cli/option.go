// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"github.com/hashicorp/flagparse/internal/pkg/flag"
	"github.com/hashicorp/flagparse/terminal"
)

// Option adjusts how baseCommand.Init prepares a command run.
type Option func(c *baseConfig)

// baseConfig is what Init works from once every Option has applied.
type baseConfig struct {
	Args       []string
	Flags      *flag.Sets
	UI         terminal.UI
	Log        hclog.Logger
	Fs         afero.Fs
	Validation ValidationFn

	// Passthrough accepts arguments after "--" instead of rejecting them.
	Passthrough bool
}

// WithNoArgs parses args and, once flags are consumed, rejects anything
// left over.
func WithNoArgs(args []string) Option {
	return func(c *baseConfig) {
		c.Args = args
		c.Validation = NoArgs
	}
}

// WithMaximumNArgs parses args and allows up to n positional arguments
// after the flags.
func WithMaximumNArgs(n int, args []string) Option {
	return func(c *baseConfig) {
		c.Args = args
		c.Validation = MaximumNArgs(n)
	}
}

// WithPassthroughArgs is WithNoArgs for commands such as parse that take
// what follows "--" as their input.
func WithPassthroughArgs(args []string) Option {
	return func(c *baseConfig) {
		c.Args = args
		c.Validation = NoArgs
		c.Passthrough = true
	}
}

// WithFlags supplies the command's flag sets, normally c.Flags(). Init
// requires it.
func WithFlags(f *flag.Sets) Option {
	return func(c *baseConfig) { c.Flags = f }
}

// WithUI replaces the console UI, e.g. with one writing to buffers.
func WithUI(ui terminal.UI) Option {
	return func(c *baseConfig) { c.UI = ui }
}

// WithLogger overrides the logger built from the environment.
func WithLogger(l hclog.Logger) Option {
	return func(c *baseConfig) { c.Log = l }
}

// WithFs sets the filesystem declarations files are read from.
func WithFs(fs afero.Fs) Option {
	return func(c *baseConfig) { c.Fs = fs }
}
