// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"github.com/mitchellh/go-glint"
	"github.com/posener/complete"

	"github.com/hashicorp/flagparse/internal/pkg/flag"
	"github.com/hashicorp/flagparse/internal/pkg/version"
)

// VersionCommand prints the build's version. It also serves --version.
type VersionCommand struct {
	*baseCommand
}

func (c *VersionCommand) Run(args []string) int {
	c.cmdKey = "version"

	if err := c.Init(WithNoArgs(args), WithFlags(c.Flags())); err != nil {
		c.ui.ErrorWithContext(err, ErrParsingArgsOrFlags)
		c.ui.Info(c.helpUsageMessage())
		return 1
	}

	stdout, _, _ := c.ui.OutputWriters()
	renderDocument(stdout,
		glint.Layout(
			glint.Style(glint.Text(cliName), glint.Bold()),
			glint.Text(" "+version.HumanVersion()),
		).Row(),
		glint.Text(""),
	)
	return 0
}

func (c *VersionCommand) Flags() *flag.Sets { return c.flagSet(0, nil) }

func (c *VersionCommand) AutocompleteArgs() complete.Predictor { return complete.PredictNothing }

func (c *VersionCommand) AutocompleteFlags() complete.Flags { return c.Flags().Completions() }

func (c *VersionCommand) Synopsis() string { return "Show the flagparse version" }

func (c *VersionCommand) Help() string {
	return formatHelp(`
Usage: flagparse version

  Show the version of this flagparse build, with the short git revision
  when one was compiled in. "flagparse --version" prints the same.
`)
}
