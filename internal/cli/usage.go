// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"github.com/posener/complete"

	"github.com/hashicorp/flagparse/internal/pkg/flag"
)

// UsageCommand prints the help text generated from a declarations file.
type UsageCommand struct {
	*baseCommand
	asError bool
}

func (c *UsageCommand) Run(args []string) int {
	c.cmdKey = "usage"

	if err := c.Init(
		WithNoArgs(args),
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

	exit := p.Help()
	if c.asError {
		exit = p.ShowHelp()
	}

	stdout, stderr, _ := c.ui.OutputWriters()
	return exit.Write(stdout, stderr)
}

func (c *UsageCommand) Flags() *flag.Sets {
	return c.flagSet(flagSetDeclarations, func(set *flag.Sets) {
		f := set.NewSet("Usage Options")

		f.BoolVar(&flag.BoolVar{
			Name:    "error",
			Target:  &c.asError,
			Default: false,
			Usage: `Print the help text to stderr and exit 1, the way a
					program shows usage after bad input.`,
		})
	})
}

func (c *UsageCommand) AutocompleteArgs() complete.Predictor {
	return complete.PredictNothing
}

func (c *UsageCommand) AutocompleteFlags() complete.Flags {
	return c.Flags().Completions()
}

func (c *UsageCommand) Synopsis() string {
	return "Print the help text of a declarations file"
}

func (c *UsageCommand) Help() string {
	c.Example = `
	# Print the help text
	flagparse usage -f flags.hcl

	# Print it as an error
	flagparse usage -f flags.hcl --error
	`
	return formatHelp(`
	Usage: flagparse usage [options]

	Print the help text generated from the declarations file.

` + c.GetExample() + c.Flags().Help())
}
