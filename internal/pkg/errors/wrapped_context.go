// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package errors

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// WrappedUIContext is an error carrying what the CLI needs to render it
// with terminal.UI.ErrorWithContext.
type WrappedUIContext struct {
	Err error

	// Subject is a short summary, e.g. "invalid flag declaration". File
	// names and other detail belong in Context.
	Subject string

	Context *UIErrorContext
}

// NewWrappedUIContext wraps err with a subject and a copy of ctx.
func NewWrappedUIContext(err error, subject string, ctx *UIErrorContext) *WrappedUIContext {
	if ctx == nil {
		ctx = NewUIErrorContext()
	}
	return &WrappedUIContext{Err: err, Subject: subject, Context: ctx.Copy()}
}

func (w *WrappedUIContext) Error() string {
	return fmt.Sprintf("%s: %v: \n%s", w.Subject, w.Err, w.Context.String())
}

func (w *WrappedUIContext) Unwrap() error { return w.Err }

// HCLDiagsToWrappedUIContext turns each error diagnostic into a
// WrappedUIContext whose context holds the source range. Warnings are
// dropped.
func HCLDiagsToWrappedUIContext(diags hcl.Diagnostics) []*WrappedUIContext {
	wrapped := make([]*WrappedUIContext, 0, len(diags))
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		w := &WrappedUIContext{
			Err:     New(diag.Detail),
			Subject: diag.Summary,
			Context: NewUIErrorContext(),
		}
		if diag.Subject != nil {
			w.Context.Add(UIContextPrefixHCLRange, diag.Subject.String())
		}
		wrapped = append(wrapped, w)
	}
	return wrapped
}
