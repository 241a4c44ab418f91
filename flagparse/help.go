// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package flagparse

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Stream selects where an Exit's text is written.
type Stream int

const (
	Stdout Stream = iota
	Stderr
)

func (s Stream) String() string {
	if s == Stderr {
		return "stderr"
	}
	return "stdout"
}

// Exit is the outcome of the help paths. It carries the text to print and
// the status the process should end with. Exit implements error so Parse
// can hand it back through its error return; callers are expected to print
// it and terminate rather than treat it as a failure.
type Exit struct {
	Code   int
	Stream Stream
	Text   string
}

func (e *Exit) Error() string {
	return fmt.Sprintf("exit requested with status %d", e.Code)
}

// Write prints the text to stdout or stderr according to Stream and returns
// Code.
func (e *Exit) Write(stdout, stderr io.Writer) int {
	w := stdout
	if e.Stream == Stderr {
		w = stderr
	}
	fmt.Fprintln(w, e.Text)
	return e.Code
}

// AsExit unwraps err into an *Exit.
func AsExit(err error) (*Exit, bool) {
	var exit *Exit
	if errors.As(err, &exit) {
		return exit, true
	}
	return nil, false
}

const (
	helpColumn = 22
	nameColumn = 20
)

// HelpText renders the usage line, if any, followed by one line per
// registered flag in registration order.
func (p *Parser) HelpText() string {
	var b strings.Builder

	if p.usage != "" {
		fmt.Fprintf(&b, "Usage: %s\n\n", p.usage)
	}

	b.WriteString("Options:\n")
	writeHelpLine(&b, fmt.Sprintf("%-*s%s", helpColumn, "--help, -h", "This help text."))

	for name, decl := range p.registry.Entries() {
		line := fmt.Sprintf("--%-*s%s", nameColumn, name, decl.Description)
		if truthy(decl.Default) {
			line += fmt.Sprintf(" (default: %v)", decl.Default)
		}
		writeHelpLine(&b, line)
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func writeHelpLine(b *strings.Builder, line string) {
	b.WriteString(strings.TrimRight(line, " "))
	b.WriteByte('\n')
}

// Help returns the outcome for an explicit help request: the help text on
// stdout and exit status 0.
func (p *Parser) Help() *Exit {
	return &Exit{Code: 0, Stream: Stdout, Text: p.HelpText()}
}

// ShowHelp returns the outcome for a usage error: the help text on stderr
// and exit status 1.
func (p *Parser) ShowHelp() *Exit {
	return &Exit{Code: 1, Stream: Stderr, Text: p.HelpText()}
}
