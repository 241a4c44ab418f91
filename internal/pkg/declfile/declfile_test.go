// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package declfile

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/shoenig/test/must"
	"github.com/spf13/afero"

	"github.com/hashicorp/flagparse/flagparse"
	"github.com/hashicorp/flagparse/internal/pkg/errors"
	"github.com/hashicorp/flagparse/internal/pkg/logging"
)

const testHCL = `
usage = "mytool [options]"

flag "name" {
  description = "User name"
  default     = "DefaultName"
}

flag "age" {
  description = "User age"
  default     = 25
}

flag "ratio" {
  description = "Sampling ratio"
  default     = 0.5
}

flag "verbose" {
  description = "Enable verbose mode"
  default     = false
}

flag "config" {
  description = "Configuration string"
}
`

func testLoader(t *testing.T, files map[string]string) *Loader {
	fs := afero.NewMemMapFs()
	for name, content := range files {
		must.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	return New(&Config{Fs: fs, Logger: logging.NewTestLogger(t.Log)})
}

func TestLoader_LoadHCL(t *testing.T) {
	l := testLoader(t, map[string]string{"flags.hcl": testHCL})

	f, err := l.Load("flags.hcl")
	must.NoError(t, err)

	must.Eq(t, "flags.hcl", f.Path)
	must.True(t, f.HasUsage)
	must.Eq(t, "mytool [options]", f.Usage)

	exp := []flagparse.Declaration{
		{Name: "name", Description: "User name", Default: "DefaultName"},
		{Name: "age", Description: "User age", Default: int64(25)},
		{Name: "ratio", Description: "Sampling ratio", Default: 0.5},
		{Name: "verbose", Description: "Enable verbose mode", Default: false},
		{Name: "config", Description: "Configuration string"},
	}
	must.Eq(t, exp, f.Declarations, must.Sprint(spew.Sdump(f.Declarations)))

	rng, ok := f.Range("age")
	must.True(t, ok)
	must.Eq(t, 9, rng.Start.Line)
	must.MapContainsKey(t, l.Files(), "flags.hcl")
}

func TestLoader_LoadJSON(t *testing.T) {
	l := testLoader(t, map[string]string{"flags.json": `{
  "flag": {
    "path": {
      "description": "Path to binaries",
      "default": "/usr/local/bin"
    }
  }
}`})

	f, err := l.Load("flags.json")
	must.NoError(t, err)
	must.False(t, f.HasUsage)
	must.Eq(t, []flagparse.Declaration{
		{Name: "path", Description: "Path to binaries", Default: "/usr/local/bin"},
	}, f.Declarations)
}

func TestLoader_Errors(t *testing.T) {
	testCases := []struct {
		name       string
		src        string
		expSummary string
	}{
		{
			name:       "syntax error",
			src:        `flag "name" {`,
			expSummary: "Unclosed configuration block",
		},
		{
			name: "list default",
			src: `flag "names" {
  description = "names"
  default     = ["a", "b"]
}`,
			expSummary: "Invalid flag default",
		},
		{
			name: "unknown attribute",
			src: `flag "name" {
  descr = "typo"
}`,
			expSummary: "Unsupported argument",
		},
		{
			name:       "unknown block",
			src:        `option "name" {}`,
			expSummary: "Unsupported block type",
		},
		{
			name:       "missing label",
			src:        `flag {}`,
			expSummary: "Missing name for flag",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := testLoader(t, map[string]string{"flags.hcl": tc.src})

			f, err := l.Load("flags.hcl")
			must.True(t, f == nil)

			diags, ok := err.(hcl.Diagnostics)
			must.True(t, ok, must.Sprintf("expected hcl.Diagnostics, got %T", err))
			must.True(t, diags.HasErrors())
			must.Eq(t, tc.expSummary, diags[0].Summary)
		})
	}
}

func TestLoader_MissingFile(t *testing.T) {
	l := testLoader(t, nil)

	_, err := l.Load("nope.hcl")
	must.Eq(t, errors.ErrDeclFileNotFound, err, must.Cmp(cmpopts.EquateErrors()))
	must.StrContains(t, err.Error(), "nope.hcl")

	_, err = l.Load("")
	must.ErrorIs(t, err, errors.ErrDeclFileRequired)
}

func TestFile_Apply(t *testing.T) {
	l := testLoader(t, map[string]string{"flags.hcl": testHCL})
	f, err := l.Load("flags.hcl")
	must.NoError(t, err)

	p := flagparse.New()
	must.NoError(t, f.Apply(p))
	must.Eq(t, []string{"name", "age", "ratio", "verbose", "config"}, p.Registry().Names())

	result, err := p.Parse([]string{"--config=key=value", "--ratio", "0.75"})
	must.NoError(t, err)
	must.Eq(t, flagparse.Result{
		"name":    "DefaultName",
		"age":     int64(25),
		"ratio":   "0.75",
		"verbose": false,
		"config":  "key=value",
	}, result)

	must.StrContains(t, p.HelpText(), "Usage: mytool [options]")
}

func TestFile_ApplyInvalid(t *testing.T) {
	l := testLoader(t, map[string]string{"flags.hcl": `
flag "verbose" {
}

flag "name" {
  description = "User name"
}
`})
	f, err := l.Load("flags.hcl")
	must.NoError(t, err)

	p := flagparse.New()
	err = f.Apply(p)
	must.Error(t, err)

	merr, ok := err.(*multierror.Error)
	must.True(t, ok)
	must.Len(t, 1, merr.Errors)

	wrapped, ok := merr.Errors[0].(*errors.WrappedUIContext)
	must.True(t, ok)
	must.Eq(t, "invalid flag declaration", wrapped.Subject)
	must.EqError(t, wrapped.Err, "description is required!")
	must.SliceContains(t, wrapped.Context.GetAll(), "Flag Name: verbose")

	// valid declarations are still registered
	must.Eq(t, []string{"name"}, p.Registry().Names())
}

func TestLoader_DuplicateFlagLastWins(t *testing.T) {
	l := testLoader(t, map[string]string{"flags.hcl": `
flag "name" {
  description = "first"
}

flag "other" {
  description = "other"
}

flag "name" {
  description = "second"
}
`})
	f, err := l.Load("flags.hcl")
	must.NoError(t, err)

	p := flagparse.New()
	must.NoError(t, f.Apply(p))
	must.Eq(t, []string{"name", "other"}, p.Registry().Names())

	d, _ := p.Registry().Lookup("name")
	must.Eq(t, "second", d.Description)
}
