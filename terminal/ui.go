// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package terminal

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/mattn/go-isatty"

	"github.com/hashicorp/flagparse/internal/pkg/helper"
)

// EnvPlain disables colored output when set to a non-empty value.
const EnvPlain = "FLAGPARSE_PLAIN"

// NamedValue is one "name: value" row for UI.NamedValues.
type NamedValue struct {
	Name  string
	Value interface{}
}

// UI is how commands talk to the user.
type UI interface {
	// Output prints msg, formatted with any non-Option arguments. Options
	// choose the style and writer.
	Output(msg string, raw ...interface{})

	// NamedValues prints rows with the names right aligned. Empty string
	// values are skipped.
	NamedValues([]NamedValue, ...Option)

	OutputWriters() (stdout, stderr io.Writer, err error)

	Table(*Table, ...Option)

	// ErrorWithContext prints err under a titled subject followed by the
	// context lines, all on stderr.
	ErrorWithContext(err error, sub string, ctx ...string)

	// Shorthands for Output with the matching style.
	Debug(string)
	Error(string)
	Header(string)
	Info(string)
	Success(string)
	Trace(string)
	Warning(string)
	WarningBold(string)
}

// basicUI writes line oriented output to a pair of writers. Errors go to
// stderr unless an Option overrides the writer.
type basicUI struct {
	stdout io.Writer
	stderr io.Writer
	plain  bool
}

// NewBasicUI returns a UI writing to stdout and stderr. When plain is
// true no color escape sequences are emitted.
func NewBasicUI(stdout, stderr io.Writer, plain bool) UI {
	return &basicUI{stdout: stdout, stderr: stderr, plain: plain}
}

// ConsoleUI returns a UI bound to the process stdout and stderr. Color is
// disabled when EnvPlain is set or stdout is not a terminal.
func ConsoleUI() UI {
	return NewBasicUI(os.Stdout, os.Stderr, IsPlain(os.Getenv(EnvPlain), os.Stdout.Fd()))
}

// IsPlain reports whether output should be uncolored given the value of
// EnvPlain and the stdout file descriptor.
func IsPlain(env string, fd uintptr) bool {
	if strings.TrimSpace(env) != "" {
		return true
	}
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// Interpret splits raw into format arguments for msg and Options, returning
// the formatted message with the chosen style and writer. A nil writer
// means the UI picks the stream.
func Interpret(msg string, raw ...interface{}) (string, string, io.Writer) {
	var args []interface{}
	var opts []Option
	for _, r := range raw {
		if opt, ok := r.(Option); ok {
			opts = append(opts, opt)
		} else {
			args = append(args, r)
		}
	}

	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	return msg, cfg.Style, cfg.Writer
}

const (
	HeaderStyle      = "header"
	DebugStyle       = "debug"
	ErrorStyle       = "error"
	ErrorBoldStyle   = "error-bold"
	TraceStyle       = "trace"
	WarningStyle     = "warning"
	WarningBoldStyle = "warning-bold"
	InfoStyle        = "info"
	SuccessStyle     = "success"
	SuccessBoldStyle = "success-bold"
	BoldStyle        = "bold"

	DefaultStyle = "default"
)

func (ui *basicUI) Output(msg string, raw ...interface{}) {
	msg, style, w := Interpret(msg, raw...)

	if w == nil {
		w = ui.stdout
		if style == ErrorStyle || style == ErrorBoldStyle {
			w = ui.stderr
		}
	}

	switch style {
	case HeaderStyle:
		msg = ui.sprint(styleColors[style], "\n==> "+msg)
	case InfoStyle:
		lines := strings.Split(msg, "\n")
		for i, line := range lines {
			lines[i] = ui.sprint(styleColors[style], "    "+line)
		}
		msg = strings.Join(lines, "\n")
	default:
		if c, ok := styleColors[style]; ok {
			msg = ui.sprint(c, msg)
		}
	}

	fmt.Fprintln(w, msg)
}

func (ui *basicUI) NamedValues(rows []NamedValue, opts ...Option) {
	cfg := &config{Writer: ui.stdout}
	for _, opt := range opts {
		opt(cfg)
	}

	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 1, 8, 0, ' ', tabwriter.AlignRight)
	for _, row := range rows {
		if s, ok := row.Value.(string); ok && s == "" {
			continue
		}
		fmt.Fprintf(tw, "  %s: \t%v\n", row.Name, row.Value)
	}
	tw.Flush()

	fmt.Fprintln(cfg.Writer, buf.String())
}

func (ui *basicUI) OutputWriters() (io.Writer, io.Writer, error) {
	return ui.stdout, ui.stderr, nil
}

func (ui *basicUI) ErrorWithContext(err error, sub string, ctx ...string) {
	label := func(s string) string { return ui.sprint(colorHeader, s) }
	w := ui.stderr

	fmt.Fprintf(w, "%s\n\n", ui.sprint(styleColors[ErrorStyle], "! "+helper.Title(sub)))
	fmt.Fprintf(w, "\t%s%s\n", label("Error:   "), err.Error())
	fmt.Fprintf(w, "\t%s%T\n", label("Type:    "), err)
	if len(ctx) > 0 {
		fmt.Fprintf(w, "\t%s\n", label("Context: "))
		for _, line := range ctx {
			fmt.Fprintf(w, "\t         - %s\n", line)
		}
	}
	fmt.Fprintln(w)
}

func (ui *basicUI) Debug(msg string)       { ui.Output(msg, WithDebugStyle()) }
func (ui *basicUI) Error(msg string)       { ui.Output(msg, WithErrorStyle()) }
func (ui *basicUI) Header(msg string)      { ui.Output(msg, WithHeaderStyle()) }
func (ui *basicUI) Info(msg string)        { ui.Output(msg, WithInfoStyle()) }
func (ui *basicUI) Success(msg string)     { ui.Output(msg, WithSuccessStyle()) }
func (ui *basicUI) Trace(msg string)       { ui.Output(msg, WithTraceStyle()) }
func (ui *basicUI) Warning(msg string)     { ui.Output(msg, WithWarningStyle()) }
func (ui *basicUI) WarningBold(msg string) { ui.Output(msg, WithStyle(WarningBoldStyle)) }
