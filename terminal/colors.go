// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package terminal

import "github.com/fatih/color"

var colorHeader = color.New(color.Bold)

// styleColors maps each Output style to its color. DefaultStyle and unknown
// styles print as is.
var styleColors = map[string]*color.Color{
	HeaderStyle:      colorHeader,
	BoldStyle:        colorHeader,
	InfoStyle:        color.New(),
	DebugStyle:       color.New(color.FgHiBlue),
	TraceStyle:       color.New(color.FgCyan),
	ErrorStyle:       color.New(color.FgRed),
	ErrorBoldStyle:   color.New(color.FgRed, color.Bold),
	WarningStyle:     color.New(color.FgYellow),
	WarningBoldStyle: color.New(color.FgYellow, color.Bold),
	SuccessStyle:     color.New(color.FgGreen),
	SuccessBoldStyle: color.New(color.FgGreen, color.Bold),
}

// sprint colors s unless the UI is plain.
func (ui *basicUI) sprint(c *color.Color, s string) string {
	if ui.plain {
		return s
	}
	return c.Sprint(s)
}
