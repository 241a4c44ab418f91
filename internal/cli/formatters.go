// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/davecgh/go-spew/spew"
	"github.com/ryanuber/columnize"

	"github.com/hashicorp/flagparse/flagparse"
	"github.com/hashicorp/flagparse/internal/pkg/errors"
	"github.com/hashicorp/flagparse/terminal"
)

const (
	formatJSON  = "json"
	formatText  = "text"
	formatTable = "table"
)

var outputFormats = []string{formatJSON, formatText, formatTable}

// listDelim separates the columns of rows passed to formatList. Flag values
// are free text and may contain "|".
const listDelim = "\x1f"

// formatList takes a set of strings and formats them into properly
// aligned output, replacing any blank fields with a placeholder
// for awk-ability.
func formatList(in []string) string {
	columnConf := columnize.DefaultConfig()
	columnConf.Delim = listDelim
	columnConf.Empty = "<none>"
	return columnize.Format(in, columnConf)
}

// formatValue renders a resolved flag value. Unresolved flags are empty.
func formatValue(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// formatResultJSON renders r as an indented JSON object whose members
// follow keys.
func formatResultJSON(keys []string, r flagparse.Result) (string, error) {
	var b strings.Builder
	b.WriteString("{")
	for i, k := range keys {
		name, err := json.Marshal(k)
		if err != nil {
			return "", err
		}
		value, err := json.MarshalIndent(r[k], "  ", "  ")
		if err != nil {
			return "", err
		}
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, "\n  %s: %s", name, value)
	}
	if len(keys) > 0 {
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String(), nil
}

// formatResultText renders one "name value" row per key.
func formatResultText(keys []string, r flagparse.Result) string {
	rows := make([]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, k+listDelim+formatValue(r[k]))
	}
	return formatList(rows)
}

// resultTable shows each resolved value and whether it came from the
// arguments or the declaration.
func resultTable(reg *flagparse.Registry, r, scanned flagparse.Result) *terminal.Table {
	tbl := terminal.NewTable("NAME", "VALUE", "SOURCE")
	for name, d := range reg.Entries() {
		tbl.AddRow(name, formatValue(r[name]), flagparse.ValueSource(scanned, d).String())
	}
	return tbl
}

func declTable(reg *flagparse.Registry) *terminal.Table {
	tbl := terminal.NewTable("NAME", "DESCRIPTION", "DEFAULT")
	for name, d := range reg.Entries() {
		tbl.AddRow(name, d.Description, formatValue(d.Default))
	}
	return tbl
}

// renderTemplate executes tpl against r. The sprig functions, spewDump and
// spewPrintf are available.
func renderTemplate(tpl string, r flagparse.Result) (string, error) {
	funcs := sprig.TxtFuncMap()
	funcs["spewDump"] = spew.Sdump
	funcs["spewPrintf"] = spew.Sprintf

	t, err := template.New("result").Funcs(funcs).Option("missingkey=zero").Parse(tpl)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errors.ErrTemplateFailed, err)
	}

	var b strings.Builder
	if err := t.Execute(&b, map[string]any(r)); err != nil {
		return "", fmt.Errorf("%w: %w", errors.ErrTemplateFailed, err)
	}
	return b.String(), nil
}
