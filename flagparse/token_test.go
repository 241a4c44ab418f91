// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package flagparse

import (
	"testing"

	"github.com/shoenig/test/must"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		arg string
		exp Token
	}{
		{
			arg: "--name=John",
			exp: Token{Arg: "--name=John", Kind: TokenLongValue, Key: "name", Value: "John", HasValue: true},
		},
		{
			arg: "--config=key=value",
			exp: Token{Arg: "--config=key=value", Kind: TokenLongValue, Key: "config", Value: "key=value", HasValue: true},
		},
		{
			arg: "--name=",
			exp: Token{Arg: "--name=", Kind: TokenLongValue, Key: "name", HasValue: true},
		},
		{
			arg: "--verbose",
			exp: Token{Arg: "--verbose", Kind: TokenLongBare, Key: "verbose"},
		},
		{
			arg: "--",
			exp: Token{Arg: "--", Kind: TokenLongBare},
		},
		{
			arg: "-v",
			exp: Token{Arg: "-v", Kind: TokenShort, Key: "v"},
		},
		{
			arg: "-v=1",
			exp: Token{Arg: "-v=1", Kind: TokenShort, Key: "v=1"},
		},
		{
			arg: "-",
			exp: Token{Arg: "-", Kind: TokenShort},
		},
		{
			arg: "value",
			exp: Token{Arg: "value", Kind: TokenPositional},
		},
		{
			arg: "",
			exp: Token{Kind: TokenPositional},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.arg, func(t *testing.T) {
			must.Eq(t, tc.exp, Classify(tc.arg))
		})
	}
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize([]string{"--a", "b", "-c"})
	must.Len(t, 3, tokens)
	must.Eq(t, TokenLongBare, tokens[0].Kind)
	must.Eq(t, TokenPositional, tokens[1].Kind)
	must.Eq(t, TokenShort, tokens[2].Kind)
	must.True(t, tokens[0].Kind.IsLong())
	must.False(t, tokens[2].Kind.IsLong())
}
