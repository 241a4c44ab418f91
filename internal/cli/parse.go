// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"strings"

	"github.com/posener/complete"

	"github.com/hashicorp/flagparse/flagparse"
	"github.com/hashicorp/flagparse/internal/pkg/errors"
	"github.com/hashicorp/flagparse/internal/pkg/flag"
)

// ParseCommand parses the arguments after "--" against the flags of a
// declarations file and prints the resolved values.
type ParseCommand struct {
	*baseCommand
	format   string
	template string
}

func (c *ParseCommand) Run(args []string) int {
	c.cmdKey = "parse"

	if err := c.Init(
		WithPassthroughArgs(args),
		WithFlags(c.Flags()),
	); err != nil {
		c.ui.ErrorWithContext(err, ErrParsingArgsOrFlags)
		c.ui.Info(c.helpUsageMessage())
		return 1
	}

	p, err := c.loadParser()
	if err != nil {
		return 1
	}

	errCtx := errors.NewUIErrorContext()
	errCtx.Add(errors.UIContextPrefixDeclFile, c.declFile)
	errCtx.Add(errors.UIContextPrefixArgs, strings.Join(c.passthrough, " "))

	result, err := p.Parse(c.passthrough)
	if exit, ok := flagparse.AsExit(err); ok {
		stdout, stderr, _ := c.ui.OutputWriters()
		return exit.Write(stdout, stderr)
	}
	if err != nil {
		c.showErrors(err, "failed to parse arguments", errCtx)
		return 1
	}

	if c.template != "" {
		out, err := renderTemplate(c.template, result)
		if err != nil {
			c.ui.ErrorWithContext(err, "failed to render output", errCtx.GetAll()...)
			return 1
		}
		c.ui.Output(out)
		return 0
	}

	keys := p.Registry().Names()

	switch c.format {
	case formatJSON:
		out, err := formatResultJSON(keys, result)
		if err != nil {
			errCtx.Add(errors.UIContextPrefixFormat, c.format)
			c.ui.ErrorWithContext(err, "failed to format output", errCtx.GetAll()...)
			return 1
		}
		c.ui.Output(out)
	case formatText:
		if len(keys) == 0 {
			c.ui.Output("No flags resolved.")
			return 0
		}
		c.ui.Output(formatResultText(keys, result))
	case formatTable:
		c.ui.Table(resultTable(p.Registry(), result, flagparse.Scan(c.passthrough)))
	default:
		errCtx.Add(errors.UIContextPrefixFormat, c.format)
		c.ui.ErrorWithContext(errors.ErrInvalidFormat, "failed to format output", errCtx.GetAll()...)
		return 1
	}

	return 0
}

func (c *ParseCommand) Flags() *flag.Sets {
	return c.flagSet(flagSetDeclarations|flagSetOutput, func(set *flag.Sets) {
		f := set.NewSet("Parse Options")

		f.EnumSingleVar(&flag.EnumSingleVar{
			Name:    "format",
			Target:  &c.format,
			Values:  outputFormats,
			Default: formatJSON,
			Usage:   fmt.Sprintf(`Output format for the resolved flags. One of %s.`, strings.Join(outputFormats, ", ")),
		})

		f.StringVar(&flag.StringVar{
			Name:    "template",
			Target:  &c.template,
			Default: "",
			Example: "tpl",
			Usage: `Go template applied to the resolved flags instead of
					--format. Sprig functions and spewDump are available.`,
		})
	})
}

func (c *ParseCommand) AutocompleteArgs() complete.Predictor {
	return complete.PredictNothing
}

func (c *ParseCommand) AutocompleteFlags() complete.Flags {
	return c.Flags().Completions()
}

func (c *ParseCommand) Synopsis() string {
	return "Parse arguments against a declarations file"
}

func (c *ParseCommand) Help() string {
	c.Example = `
	# Resolve arguments as JSON
	flagparse parse -f flags.hcl -- --name=Alice -v

	# Show the resolved values as a table
	flagparse parse -f flags.hcl --format=table -- --config key=value

	# Format the result with a template
	flagparse parse -f flags.hcl --template '{{ .name | upper }}' -- --name alice
	`
	return formatHelp(`
	Usage: flagparse parse [options] -- <args...>

	Parse the arguments following "--" against the flags declared in the
	declarations file. A help flag in the arguments prints the help text.

` + c.GetExample() + c.Flags().Help())
}
