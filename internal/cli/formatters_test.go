// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"testing"

	"github.com/shoenig/test/must"

	"github.com/hashicorp/flagparse/flagparse"
	"github.com/hashicorp/flagparse/internal/pkg/errors"
)

func TestFormatList(t *testing.T) {
	out := formatList([]string{
		"name" + listDelim + "Alice",
		"verbose" + listDelim,
		"config" + listDelim + "key=value",
	})
	must.Eq(t, "name     Alice\nverbose  <none>\nconfig   key=value", out)
}

func TestFormatValue(t *testing.T) {
	must.Eq(t, "", formatValue(nil))
	must.Eq(t, "true", formatValue(true))
	must.Eq(t, "25", formatValue(int64(25)))
	must.Eq(t, "0.5", formatValue(0.5))
}

func TestFormatResultJSON(t *testing.T) {
	r := flagparse.Result{"name": "Alice", "config": nil, "verbose": true}

	out, err := formatResultJSON([]string{"name", "config", "verbose"}, r)
	must.NoError(t, err)
	must.Eq(t, "{\n  \"name\": \"Alice\",\n  \"config\": null,\n  \"verbose\": true\n}", out)

	out, err = formatResultJSON(nil, r)
	must.NoError(t, err)
	must.Eq(t, "{}", out)
}

func TestFormatResultText_pipeInValue(t *testing.T) {
	out := formatResultText([]string{"expr", "x"}, flagparse.Result{"expr": "a|b", "x": true})
	must.Eq(t, "expr  a|b\nx     true", out)
}

func TestRenderTemplate(t *testing.T) {
	r := flagparse.Result{"name": "alice", "verbose": true}

	out, err := renderTemplate(`{{ .name | title }}{{ if .verbose }}!{{ end }}`, r)
	must.NoError(t, err)
	must.Eq(t, "Alice!", out)

	out, err = renderTemplate(`{{ spewDump .verbose }}`, r)
	must.NoError(t, err)
	must.Eq(t, "(bool) true\n", out)

	_, err = renderTemplate(`{{ .name `, r)
	must.ErrorIs(t, err, errors.ErrTemplateFailed)
}

func TestValidationErr(t *testing.T) {
	must.EqError(t, NoArgs(nil, []string{"a"}), "this command takes no arguments")
	must.NoError(t, NoArgs(nil, nil))
	must.EqError(t, MaximumNArgs(1)(nil, []string{"a", "b"}), "this command requires at most 1 argument, got 2")
	must.NoError(t, MaximumNArgs(2)(nil, []string{"a", "b"}))
}
