// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

// Package flagparse is a small declarative command-line flag parser.
//
// Callers register the flags they accept (name, description and an
// optional default) on a Parser, then hand it the user-supplied argument
// vector. Parse walks the arguments once, left to right, and returns a
// Result keyed by flag name. Only registered names appear in the result;
// unknown flags are dropped without error.
//
// Tokens are classified as follows:
//
//	--name=value   long flag with an inline value (split on the first "=")
//	--name         long flag; consumes the next argument as its value when
//	               that argument does not start with "-"
//	-n             short flag; always true, never consumes a value
//	value          positional; only ever read as a long flag's value
//
// A value that follows a long flag wins over an inline "=value", so
// "--age=20 30" resolves age to "30".
//
// Defaults are merged by truthiness: an explicitly parsed false, 0 or ""
// is overridden by a truthy default, and a falsy default is still
// reported when the flag was never given. Callers that need to tell an
// explicit falsy value apart from a default should inspect Scan directly.
//
// Requesting help with -h or --help does not exit the process. Parse
// returns an *Exit describing the text to print, the stream to print it
// on and the exit code, and the caller decides how to terminate.
package flagparse
