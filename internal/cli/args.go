// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package cli

import "fmt"

// ValidationFn checks a command's positional arguments after flag parsing.
type ValidationFn func(c *baseCommand, args []string) error

// ValidationErr reports more positional arguments than the command accepts.
type ValidationErr struct {
	max int
	got int
}

func (v ValidationErr) Error() string {
	if v.max == 0 {
		return "this command takes no arguments"
	}
	noun := "argument"
	if v.max != 1 {
		noun = "arguments"
	}
	return fmt.Sprintf("this command requires at most %d %s, got %d", v.max, noun, v.got)
}

// NoArgs rejects any positional argument.
func NoArgs(_ *baseCommand, args []string) error {
	return MaximumNArgs(0)(nil, args)
}

// MaximumNArgs accepts up to n positional arguments.
func MaximumNArgs(n int) ValidationFn {
	return func(_ *baseCommand, args []string) error {
		if len(args) > n {
			return ValidationErr{max: n, got: len(args)}
		}
		return nil
	}
}
