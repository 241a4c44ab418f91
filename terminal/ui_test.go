// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package terminal

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/shoenig/test/must"
)

func testUI() (UI, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return NewBasicUI(&stdout, &stderr, true), &stdout, &stderr
}

func TestNamedValues(t *testing.T) {
	ui, stdout, _ := testUI()
	ui.NamedValues([]NamedValue{
		{"name", "DefaultName"},
		{"age", 25},
		{"verbose", true},
		{"empty", ""},
		{"the_key_value", "style"},
	})

	expected := `
           name: DefaultName
            age: 25
        verbose: true
  the_key_value: style

`

	must.Eq(t, strings.TrimLeft(expected, "\n"), stdout.String())
}

func TestNamedValues_header(t *testing.T) {
	var buf bytes.Buffer
	ui, _, _ := testUI()
	ui.Output("Declarations:", WithHeaderStyle(), WithWriter(&buf))
	ui.NamedValues([]NamedValue{
		{"File", "flags.hcl"},
		{"Usage", "mytool [options]"},
		{"Flags", 3},
	},
		WithWriter(&buf),
	)

	expected := `
==> Declarations:
   File: flags.hcl
  Usage: mytool [options]
  Flags: 3

`

	must.Eq(t, expected, buf.String())
}

func TestInfoStyle(t *testing.T) {
	ui, stdout, _ := testUI()
	ui.Output(strings.TrimSpace(`
one
two
  three`),
		WithInfoStyle(),
	)

	expected := `    one
    two
      three
`

	must.Eq(t, expected, stdout.String())
}

func TestOutput_interpolation(t *testing.T) {
	ui, stdout, _ := testUI()
	ui.Output("parsed %d flags", 3)
	ui.Output("100% literal")

	must.Eq(t, "parsed 3 flags\n100% literal\n", stdout.String())
}

func TestError_stderr(t *testing.T) {
	ui, stdout, stderr := testUI()
	ui.Error("boom")
	ui.Warning("careful")

	must.Eq(t, "careful\n", stdout.String())
	must.Eq(t, "boom\n", stderr.String())
}

func TestStyles_stream(t *testing.T) {
	testCases := []struct {
		name      string
		out       func(UI)
		expStdout string
		expStderr string
	}{
		{name: "trace", out: func(ui UI) { ui.Trace("tokens") }, expStdout: "tokens\n"},
		{name: "warning", out: func(ui UI) { ui.Warning("duplicate flag") }, expStdout: "duplicate flag\n"},
		{name: "warning bold", out: func(ui UI) { ui.WarningBold("duplicate flag") }, expStdout: "duplicate flag\n"},
		{name: "debug", out: func(ui UI) { ui.Debug("loaded") }, expStdout: "loaded\n"},
		{name: "success", out: func(ui UI) { ui.Success("done") }, expStdout: "done\n"},
		{name: "error", out: func(ui UI) { ui.Error("failed") }, expStderr: "failed\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ui, stdout, stderr := testUI()
			tc.out(ui)
			must.Eq(t, tc.expStdout, stdout.String())
			must.Eq(t, tc.expStderr, stderr.String())
		})
	}
}

func TestErrorWithContext(t *testing.T) {
	ui, _, stderr := testUI()
	ui.ErrorWithContext(errors.New("description is required!"), "invalid flag declaration",
		"Declarations File: flags.hcl", "Flag Name: verbose")

	expected := "! Invalid Flag Declaration\n\n" +
		"\tError:   description is required!\n" +
		"\tType:    *errors.errorString\n" +
		"\tContext: \n" +
		"\t         - Declarations File: flags.hcl\n" +
		"\t         - Flag Name: verbose\n\n"

	must.Eq(t, expected, stderr.String())
}

func TestTable(t *testing.T) {
	ui, stdout, _ := testUI()
	tbl := NewTable("NAME", "DESCRIPTION")
	tbl.AddRow("name", "User name")
	tbl.AddRow("verbose", "Enable verbose mode")
	ui.Table(tbl)

	out := stdout.String()
	must.StrContains(t, out, "NAME")
	must.StrContains(t, out, "Enable verbose mode")
	must.Eq(t, 2, len(tbl.Rows))
}

func TestIsPlain(t *testing.T) {
	// a pipe-less descriptor that is never a terminal
	must.True(t, IsPlain("", ^uintptr(0)))
	must.True(t, IsPlain("1", ^uintptr(0)))
}
