// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package helper

import (
	"testing"

	"github.com/shoenig/test/must"
)

func TestTitle(t *testing.T) {
	cases := []struct {
		s   string
		exp string
	}{
		{s: "hello", exp: "Hello"},
		{s: "error parsing args or flags", exp: "Error Parsing Args Or Flags"},
	}

	for _, tc := range cases {
		result := Title(tc.s)
		must.Eq(t, tc.exp, result)
	}
}

func TestFlagTitle(t *testing.T) {
	cases := []struct {
		s   string
		exp string
	}{
		{s: "verbose", exp: "Verbose"},
		{s: "dry-run", exp: "Dry Run"},
		{s: "log_level", exp: "Log Level"},
	}

	for _, tc := range cases {
		must.Eq(t, tc.exp, FlagTitle(tc.s))
	}
}
