// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package terminal

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Table is the data handed to UI.Table: a header row and the body rows.
type Table struct {
	Headers []string
	Rows    [][]string
}

func NewTable(headers ...string) *Table {
	return &Table{Headers: headers}
}

// AddRow appends one row. Cells line up with Headers by position.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// newTableWriter returns a borderless tablewriter that never wraps cells,
// so long flag values stay on one line.
func newTableWriter(w io.Writer, headers []string) *tablewriter.Table {
	noWrap := tw.CellConfig{Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone}}
	t := tablewriter.NewTable(w,
		tablewriter.WithBorders(tw.BorderNone),
		tablewriter.WithConfig(tablewriter.Config{Row: noWrap}),
	)
	t.Header(headers)
	return t
}

func (ui *basicUI) Table(tbl *Table, opts ...Option) {
	cfg := &config{Writer: ui.stdout}
	for _, opt := range opts {
		opt(cfg)
	}

	t := newTableWriter(cfg.Writer, tbl.Headers)
	if err := t.Bulk(tbl.Rows); err != nil {
		fmt.Fprintln(ui.stderr, err)
		return
	}
	if err := t.Render(); err != nil {
		fmt.Fprintln(ui.stderr, err)
	}
}
