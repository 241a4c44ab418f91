// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"github.com/posener/complete"

	"github.com/hashicorp/flagparse/internal/pkg/errors"
	"github.com/hashicorp/flagparse/internal/pkg/flag"
	"github.com/hashicorp/flagparse/internal/pkg/helper"
	"github.com/hashicorp/flagparse/terminal"
)

// ListCommand lists the flags of a declarations file, or shows the details
// of a single flag.
type ListCommand struct {
	*baseCommand
}

func (c *ListCommand) Run(args []string) int {
	c.cmdKey = "list"

	if err := c.Init(
		WithMaximumNArgs(1, args),
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
	reg := p.Registry()

	if len(c.args) == 1 {
		name := c.args[0]
		d, ok := reg.Lookup(name)
		if !ok {
			errCtx := errors.NewUIErrorContext()
			errCtx.Add(errors.UIContextPrefixDeclFile, c.declFile)
			errCtx.Add(errors.UIContextPrefixFlagName, name)
			c.ui.ErrorWithContext(errors.New("flag is not declared"), "unknown flag", errCtx.GetAll()...)
			return 1
		}

		c.ui.Header(helper.FlagTitle(name))
		c.ui.NamedValues([]terminal.NamedValue{
			{Name: "Name", Value: "--" + d.Name},
			{Name: "Description", Value: d.Description},
			{Name: "Default", Value: formatValue(d.Default)},
		})
		return 0
	}

	if reg.Len() > 0 {
		c.ui.Table(declTable(reg))
	} else {
		c.ui.Output("No flags declared in %s.", c.declFile)
	}

	return 0
}

func (c *ListCommand) Flags() *flag.Sets {
	return c.flagSet(flagSetDeclarations|flagSetOutput, nil)
}

func (c *ListCommand) AutocompleteArgs() complete.Predictor {
	return complete.PredictNothing
}

func (c *ListCommand) AutocompleteFlags() complete.Flags {
	return c.Flags().Completions()
}

func (c *ListCommand) Synopsis() string {
	return "List the flags of a declarations file"
}

func (c *ListCommand) Help() string {
	c.Example = `
	# List all declared flags
	flagparse list -f flags.hcl

	# Show a single flag
	flagparse list -f flags.hcl verbose
	`
	return formatHelp(`
	Usage: flagparse list [options] [name]

	List the flags declared in the declarations file.

` + c.GetExample() + c.Flags().Help())
}
