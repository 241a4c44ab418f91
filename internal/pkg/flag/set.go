// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

// Package flag groups a command's own options into titled sections for
// help output while parsing them all through one pflag.FlagSet.
package flag

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/kr/text"
	"github.com/mitchellh/go-wordwrap"
	"github.com/posener/complete"
	flag "github.com/spf13/pflag"
)

const (
	helpWidth       = 80
	helpUsageIndent = 8
)

var reWhitespaceRun = regexp.MustCompile(`\s+`)

// Sets holds a command's flags. Every flag lives in unionSet, which is
// what gets parsed; the per-section sets exist for help and completion.
type Sets struct {
	unionSet    *flag.FlagSet
	flagSets    []*Set
	completions complete.Flags
}

func NewSets() *Sets {
	union := flag.NewFlagSet("", flag.ContinueOnError)
	// Callers report parse errors themselves.
	union.Usage = func() {}
	union.SetOutput(io.Discard)

	return &Sets{unionSet: union, completions: complete.Flags{}}
}

// NewSet adds a help section titled name, e.g. "Output Options".
func (f *Sets) NewSet(name string) *Set {
	s := &Set{
		name:        name,
		flagSet:     flag.NewFlagSet(name, flag.ContinueOnError),
		unionSet:    f.unionSet,
		completions: f.completions,
	}
	f.flagSets = append(f.flagSets, s)
	return s
}

func (f *Sets) Completions() complete.Flags { return f.completions }

// Parse parses args. Arguments after a "--" are not interpreted; see
// Passthrough.
func (f *Sets) Parse(args []string) error { return f.unionSet.Parse(args) }

func (f *Sets) Parsed() bool { return f.unionSet.Parsed() }

// Args returns the positional arguments before any "--".
func (f *Sets) Args() []string {
	args := f.unionSet.Args()
	if at := f.unionSet.ArgsLenAtDash(); at >= 0 {
		return args[:at]
	}
	return args
}

// HasPassthrough reports whether args contained a "--".
func (f *Sets) HasPassthrough() bool { return f.unionSet.ArgsLenAtDash() >= 0 }

// Passthrough returns what followed "--", or nil without one.
func (f *Sets) Passthrough() []string {
	if !f.HasPassthrough() {
		return nil
	}
	return f.unionSet.Args()[f.unionSet.ArgsLenAtDash():]
}

// Help renders every section in creation order, skipping hidden flags.
func (f *Sets) Help() string {
	var b strings.Builder
	for _, s := range f.flagSets {
		fmt.Fprintf(&b, "%s:\n\n", s.name)
		s.flagSet.VisitAll(func(fl *flag.Flag) { writeFlagHelp(&b, fl) })
	}
	return strings.TrimRight(b.String(), "\n")
}

// Set is one help section of a Sets.
type Set struct {
	name        string
	flagSet     *flag.FlagSet
	unionSet    *flag.FlagSet
	completions complete.Flags
}

func (f *Set) Name() string { return f.name }

// writeFlagHelp writes one flag entry in the layout pflag uses, followed by
// its usage wrapped to helpWidth.
func writeFlagHelp(w io.Writer, fl *flag.Flag) {
	if v, ok := fl.Value.(FlagVisibility); fl.Hidden || (ok && v.Hidden()) {
		return
	}

	if fl.Shorthand != "" {
		fmt.Fprintf(w, "  -%s, --%s", fl.Shorthand, fl.Name)
	} else {
		fmt.Fprintf(w, "      --%s", fl.Name)
	}
	if ex, ok := fl.Value.(FlagExample); ok && ex.Example() != "" {
		fmt.Fprintf(w, "=<%s>", ex.Example())
	}
	if !defaultIsZeroValue(fl) {
		if fl.Value.Type() == "string" {
			fmt.Fprintf(w, " (default %q)", fl.DefValue)
		} else {
			fmt.Fprintf(w, " (default %s)", fl.DefValue)
		}
	}

	usage := reWhitespaceRun.ReplaceAllString(fl.Usage, " ")
	fmt.Fprintf(w, "\n%s\n\n", indentWrapped(usage, helpUsageIndent))
}

// indentWrapped wraps s so that, indented by pad spaces, no line is wider
// than helpWidth.
func indentWrapped(s string, pad int) string {
	wrapped := wordwrap.WrapString(strings.TrimSpace(s), uint(helpWidth-pad))
	return text.Indent(wrapped, strings.Repeat(" ", pad))
}

func defaultIsZeroValue(fl *flag.Flag) bool {
	switch fl.Value.(type) {
	case boolFlag:
		return fl.DefValue == "false"
	case *stringValue, *enumSingleValue:
		return fl.DefValue == ""
	}
	switch fl.Value.String() {
	case "false", "<nil>", "", "0":
		return true
	}
	return false
}
