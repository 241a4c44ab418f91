// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package flagparse

import "github.com/hashicorp/go-hclog"

// Result maps flag names to resolved values. A value is a string, the
// boolean true, a declared default, or nil for a registered flag that
// resolved to nothing.
type Result map[string]any

// Lookup returns the value for name. A nil value reports false.
func (r Result) Lookup(name string) (any, bool) {
	v, ok := r[name]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// GetString returns the value for name if it is a string.
func (r Result) GetString(name string) (string, bool) {
	s, ok := r[name].(string)
	return s, ok
}

// GetBool reports whether name resolved to the boolean true.
func (r Result) GetBool(name string) bool {
	b, ok := r[name].(bool)
	return ok && b
}

// Scan walks args once and records every flag it finds, registered or
// not. The argument following a long flag becomes that flag's value when
// it is non-empty and does not start with "-", overriding any inline
// value. Short flags are always true. Positional arguments are never
// recorded on their own. When a flag repeats, the last occurrence wins.
func Scan(args []string) Result {
	return scan(args, hclog.NewNullLogger())
}

func scan(args []string, logger hclog.Logger) Result {
	scanned := make(Result)

	for i, arg := range args {
		tok := Classify(arg)

		switch {
		case tok.Kind.IsLong():
			switch {
			case i+1 < len(args) && consumableValue(args[i+1]):
				scanned[tok.Key] = args[i+1]
				logger.Trace("long flag took next argument", "flag", tok.Key, "value", args[i+1])
			case tok.HasValue:
				scanned[tok.Key] = tok.Value
				logger.Trace("long flag with inline value", "flag", tok.Key, "value", tok.Value)
			default:
				scanned[tok.Key] = true
				logger.Trace("bare long flag", "flag", tok.Key)
			}

		case tok.Kind == TokenShort:
			scanned[tok.Key] = true
			logger.Trace("short flag", "flag", tok.Key)

		default:
			logger.Trace("skipping positional argument", "arg", arg)
		}
	}

	return scanned
}

// Parse is the stateless variant of Parser.Parse. It returns every
// scanned flag plus each entry of defaults whose key was not scanned. A
// scanned value always wins over a default, even a falsy one. Help flags
// get no special treatment.
func Parse(args []string, defaults map[string]any) Result {
	result := Scan(args)
	for name, def := range defaults {
		if _, ok := result[name]; !ok {
			result[name] = def
		}
	}
	return result
}
