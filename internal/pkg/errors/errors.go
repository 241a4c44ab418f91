// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package errors

import stdErrors "errors"

// Aliases so callers import a single errors package.
var (
	As     = stdErrors.As
	Is     = stdErrors.Is
	New    = stdErrors.New
	Unwrap = stdErrors.Unwrap
)

var (
	ErrDeclFileRequired   = New("declarations file is required")
	ErrDeclFileNotFound   = New("declarations file not found")
	ErrUnsupportedDefault = New("default must be a string, number, or bool")
	ErrInvalidFormat      = New("invalid output format")
	ErrTemplateFailed     = New("failed to render output template")
)
