// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package errors

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/shoenig/test/must"
)

func TestWrappedUIContext_Error(t *testing.T) {
	testCases := []struct {
		inputWrappedUIContext *WrappedUIContext
		expectedOutput        string
		name                  string
	}{
		{
			inputWrappedUIContext: &WrappedUIContext{
				Err:     New("description is required!"),
				Subject: "failed to register flag",
				Context: &UIErrorContext{contexts: []string{"Flag Name: verbose"}},
			},
			expectedOutput: "failed to register flag: description is required!: \nFlag Name: verbose",
			name:           "basic test 1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			must.Eq(t, tc.expectedOutput, tc.inputWrappedUIContext.Error())
		})
	}
}

func TestWrappedUIContext_Unwrap(t *testing.T) {
	ctx := NewUIErrorContext()
	ctx.Add(UIContextPrefixDeclFile, "flags.hcl")

	w := NewWrappedUIContext(ErrDeclFileNotFound, "failed to load declarations", ctx)
	must.True(t, Is(w, ErrDeclFileNotFound))

	// the wrapped context is a copy
	ctx.Add(UIContextPrefixFlagName, "name")
	must.Eq(t, []string{"Declarations File: flags.hcl"}, w.Context.GetAll())
}

func TestWrappedUIContext_HCLDiagsToWrappedUIContext(t *testing.T) {
	testCases := []struct {
		inputDiags     hcl.Diagnostics
		expectedOutput []*WrappedUIContext
		name           string
	}{
		{
			inputDiags: hcl.Diagnostics{
				{
					Severity: hcl.DiagError,
					Summary:  "Unsupported argument",
					Detail:   "An argument named \"descr\" is not expected here.",
					Subject:  &hcl.Range{Filename: "flags.hcl"},
				},
			},
			expectedOutput: []*WrappedUIContext{
				{
					Err:     New("An argument named \"descr\" is not expected here."),
					Subject: "Unsupported argument",
					Context: &UIErrorContext{contexts: []string{"HCL Range: flags.hcl:0,0-0"}},
				},
			},
			name: "basic test 1",
		},
		{
			inputDiags: hcl.Diagnostics{
				{
					Severity: hcl.DiagWarning,
					Summary:  "just a warning",
				},
			},
			expectedOutput: []*WrappedUIContext{},
			name:           "warnings are skipped",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := HCLDiagsToWrappedUIContext(tc.inputDiags)
			must.Len(t, len(tc.expectedOutput), got)
			for i, exp := range tc.expectedOutput {
				must.Eq(t, exp.Subject, got[i].Subject)
				must.EqError(t, got[i].Err, exp.Err.Error())
				must.Eq(t, exp.Context.GetAll(), got[i].Context.GetAll())
			}
		})
	}
}
