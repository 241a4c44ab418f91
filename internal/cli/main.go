// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/mitchellh/cli"
	"github.com/mitchellh/go-glint"

	"github.com/hashicorp/flagparse/internal/pkg/helper"
	"github.com/hashicorp/flagparse/internal/pkg/version"
)

const cliName = "flagparse"

// commonCommands lead the top-level help, in this order.
var commonCommands = []string{"parse", "usage", "list"}

// commandAliases maps each hidden alternate name to the command it runs.
var commandAliases = map[string]string{
	"help-text": "usage",
}

// Main runs flagparse and returns the process exit status. args[0] is the
// program name.
func Main(args []string) int {
	ctx, stop := helper.WithInterrupt(context.Background())
	defer stop()

	base, commands := Commands(ctx)
	defer base.Close()

	c := newCLI(args[0], args[1:], commands)
	if c.IsVersion() {
		// --version and -v print exactly what the version command prints.
		c = newCLI(args[0], []string{"version"}, commands)
	}

	code, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", cliName, err)
		return 1
	}
	return code
}

// newCLI builds a runner for args. A cli.CLI can't be reused once it has
// inspected its arguments, so every run gets a fresh one.
func newCLI(name string, args []string, commands map[string]cli.CommandFactory) *cli.CLI {
	return &cli.CLI{
		Name:                       name,
		Args:                       args,
		Version:                    version.GetVersion().FullVersionNumber(true),
		Commands:                   commands,
		HiddenCommands:             slices.Sorted(maps.Keys(commandAliases)),
		Autocomplete:               true,
		AutocompleteNoDefaultFlags: true,
		HelpFunc:                   commandsHelp,
	}
}

// Commands returns the command factories sharing one baseCommand, which
// the caller closes when the run ends.
func Commands(ctx context.Context, opts ...Option) (*baseCommand, map[string]cli.CommandFactory) {
	base := &baseCommand{
		Ctx:           ctx,
		globalOptions: opts,
	}

	commands := map[string]cli.CommandFactory{
		"parse":   factory(func() cli.Command { return &ParseCommand{baseCommand: base} }),
		"usage":   factory(func() cli.Command { return &UsageCommand{baseCommand: base} }),
		"list":    factory(func() cli.Command { return &ListCommand{baseCommand: base} }),
		"version": factory(func() cli.Command { return &VersionCommand{baseCommand: base} }),
	}
	for alias, target := range commandAliases {
		commands[alias] = commands[target]
	}

	return base, commands
}

func factory(newCmd func() cli.Command) cli.CommandFactory {
	return func() (cli.Command, error) { return newCmd(), nil }
}

// commandsHelp is the top-level help: a short banner, the common commands
// and then everything else alphabetically. Aliases are filtered out by
// cli.CLI before this is called.
func commandsHelp(commands map[string]cli.CommandFactory) string {
	var other []string
	for name := range commands {
		if !slices.Contains(commonCommands, name) {
			other = append(other, name)
		}
	}
	slices.Sort(other)

	var buf bytes.Buffer
	renderDocument(&buf,
		glint.Style(glint.Text("Welcome to "+cliName), glint.Bold()),
		glint.Layout(
			glint.Style(glint.Text("Version:"), glint.Color("green")),
			glint.Text(" v"+version.GetVersion().VersionNumber()),
		).Row(),
		glint.Text(""),
		glint.Layout(
			glint.Style(glint.Text("Usage:"), glint.Color("lightMagenta")),
			glint.Text(" "+cliName+" [--version] [--help] [--autocomplete-(un)install] <command> [args]"),
		).Row(),
		glint.Text(""),
		commandSection("Common commands", commonCommands, commands),
		commandSection("Other commands", other, commands),
	)
	return buf.String()
}

// commandSection lists names with their synopses under a bold title.
// Names missing from factories are skipped.
func commandSection(title string, names []string, factories map[string]cli.CommandFactory) glint.Component {
	var b bytes.Buffer
	tw := tabwriter.NewWriter(&b, 0, 2, 6, ' ', 0)
	for _, name := range names {
		fn, ok := factories[name]
		if !ok {
			continue
		}
		cmd, err := fn()
		if err != nil {
			panic(fmt.Sprintf("failed to load %q command: %s", name, err))
		}
		fmt.Fprintf(tw, "%s\t%s\n", name, cmd.Synopsis())
	}
	tw.Flush()

	return glint.Fragment(
		glint.Style(glint.Text(title), glint.Bold()),
		glint.Layout(glint.Text(b.String())).PaddingLeft(2),
	)
}
