// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package errors

import "strings"

// Prefixes for UIErrorContext entries, one per kind of detail.
const (
	UIContextPrefixDeclFile = "Declarations File: "
	UIContextPrefixFlagName = "Flag Name: "
	UIContextPrefixFormat   = "Output Format: "
	UIContextPrefixHCLRange = "HCL Range: "
	UIContextPrefixArgs     = "Arguments: "
)

// UIErrorContext is the ordered list of "Prefix: value" lines printed under
// an error.
type UIErrorContext struct {
	contexts []string
}

func NewUIErrorContext() *UIErrorContext { return &UIErrorContext{} }

// Add sets the entry for prefix, replacing an earlier one in place.
func (u *UIErrorContext) Add(prefix, val string) {
	for i, c := range u.contexts {
		if strings.HasPrefix(c, prefix) {
			u.contexts[i] = prefix + val
			return
		}
	}
	u.contexts = append(u.contexts, prefix+val)
}

// Append adds every entry of context, keeping duplicates.
func (u *UIErrorContext) Append(context *UIErrorContext) {
	u.contexts = append(u.contexts, context.GetAll()...)
}

// Copy returns an independent UIErrorContext with the same entries.
func (u *UIErrorContext) Copy() *UIErrorContext {
	out := make([]string, len(u.contexts))
	copy(out, u.contexts)
	return &UIErrorContext{contexts: out}
}

func (u *UIErrorContext) GetAll() []string { return u.contexts }

// String joins the entries with newlines.
func (u *UIErrorContext) String() string { return strings.Join(u.contexts, "\n") }
