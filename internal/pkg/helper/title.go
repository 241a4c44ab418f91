// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package helper

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	titleFmt = cases.Title(language.AmericanEnglish)
)

// Title returns the American English title format of s.
func Title(s string) string {
	return titleFmt.String(s)
}

// FlagTitle formats a flag name such as "dry-run" as "Dry Run" for
// headings in tables and error output.
func FlagTitle(name string) string {
	return Title(strings.NewReplacer("-", " ", "_", " ").Replace(name))
}
