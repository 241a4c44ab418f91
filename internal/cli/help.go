// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"bytes"
	"io"
	"regexp"
	"strings"

	"github.com/mitchellh/go-glint"
)

var (
	// reSectionTitle matches lines such as "Parse Options:".
	reSectionTitle = regexp.MustCompile(`^[a-zA-Z0-9_-].*:$`)

	// reQuotedCommand matches an invocation quoted in prose, e.g.
	// "flagparse list --help".
	reQuotedCommand = regexp.MustCompile(`"` + cliName + ` (\w\s?)+"`)

	helpLabels = []string{"Usage: ", "Alias: ", "Examples:"}
)

// renderDocument draws cs once into w. Columns are wide enough that glint
// never clamps a line; wrapping is left to the terminal.
func renderDocument(w io.Writer, cs ...glint.Component) {
	d := glint.New()
	d.SetRenderer(&glint.TerminalRenderer{Output: w, Rows: 10, Cols: 180})
	d.Append(cs...)
	d.RenderFrame()
}

// formatHelp highlights a command's help text line by line: labels and
// quoted invocations in magenta, section titles in bold.
func formatHelp(v string) string {
	lines := strings.Split(strings.TrimSpace(v), "\n")
	cs := make([]glint.Component, 0, len(lines))
	for _, line := range lines {
		cs = append(cs, helpLine(line))
	}

	var buf bytes.Buffer
	renderDocument(&buf, cs...)
	return buf.String()
}

func helpLine(line string) glint.Component {
	for _, label := range helpLabels {
		if rest, ok := strings.CutPrefix(line, label); ok {
			return glint.Layout(magenta(label), glint.Text(rest)).Row()
		}
	}

	if reSectionTitle.MatchString(line) {
		return glint.Style(glint.Text(line), glint.Bold())
	}

	matches := reQuotedCommand.FindAllStringIndex(line, -1)
	if len(matches) == 0 {
		return glint.Text(line)
	}

	// Keep the quotes plain and color what is between them.
	var cs []glint.Component
	last := 0
	for _, m := range matches {
		start, end := m[0]+1, m[1]-1
		cs = append(cs, glint.Text(line[last:start]), magenta(line[start:end]))
		last = end
	}
	cs = append(cs, glint.Text(line[last:]))
	return glint.Layout(cs...).Row()
}

func magenta(s string) glint.Component {
	return glint.Style(glint.Text(s), glint.Color("lightMagenta"))
}
