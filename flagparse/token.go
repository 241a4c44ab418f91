// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package flagparse

import "strings"

// TokenKind is the classification of a single raw argument.
type TokenKind int

const (
	// TokenPositional is an argument with no leading dash.
	TokenPositional TokenKind = iota

	// TokenLongBare is a long flag without an inline value, e.g. --verbose.
	TokenLongBare

	// TokenLongValue is a long flag with an inline value, e.g. --name=John.
	TokenLongValue

	// TokenShort is a single-dash flag, e.g. -v.
	TokenShort
)

func (k TokenKind) String() string {
	switch k {
	case TokenPositional:
		return "positional"
	case TokenLongBare:
		return "long"
	case TokenLongValue:
		return "long-value"
	case TokenShort:
		return "short"
	default:
		return "unknown"
	}
}

// IsLong reports whether the token is a double-dash flag.
func (k TokenKind) IsLong() bool {
	return k == TokenLongBare || k == TokenLongValue
}

// Token is a classified argument.
type Token struct {
	// Arg is the raw argument.
	Arg string

	// Kind is the classification of Arg.
	Kind TokenKind

	// Key is the flag name with leading dashes removed. It is empty for
	// positional tokens and for a lone "--" or "-".
	Key string

	// Value is the inline value of a TokenLongValue. HasValue separates an
	// empty inline value ("--name=") from none at all.
	Value    string
	HasValue bool
}

// Classify inspects a single argument. Only the first "=" of a long flag
// separates the key from the value.
func Classify(arg string) Token {
	switch {
	case strings.HasPrefix(arg, "--"):
		key, value, found := strings.Cut(arg, "=")
		tok := Token{
			Arg:      arg,
			Kind:     TokenLongBare,
			Key:      strings.TrimPrefix(key, "--"),
			Value:    value,
			HasValue: found,
		}
		if found {
			tok.Kind = TokenLongValue
		}
		return tok

	case strings.HasPrefix(arg, "-"):
		return Token{
			Arg:  arg,
			Kind: TokenShort,
			Key:  strings.TrimPrefix(arg, "-"),
		}

	default:
		return Token{Arg: arg, Kind: TokenPositional}
	}
}

// Tokenize classifies every argument in order.
func Tokenize(args []string) []Token {
	tokens := make([]Token, len(args))
	for i, arg := range args {
		tokens[i] = Classify(arg)
	}
	return tokens
}

// consumableValue reports whether arg may be taken as the value of the
// long flag preceding it.
func consumableValue(arg string) bool {
	return arg != "" && !strings.HasPrefix(arg, "-")
}
