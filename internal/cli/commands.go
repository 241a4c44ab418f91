// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/posener/complete"
	"github.com/spf13/afero"

	"github.com/hashicorp/flagparse/flagparse"
	"github.com/hashicorp/flagparse/internal/pkg/declfile"
	"github.com/hashicorp/flagparse/internal/pkg/errors"
	"github.com/hashicorp/flagparse/internal/pkg/flag"
	"github.com/hashicorp/flagparse/internal/pkg/logging"
	"github.com/hashicorp/flagparse/terminal"
)

// baseCommand carries what every flagparse command shares. Fields in
// lower case are only valid once Init has returned without error.
type baseCommand struct {
	cmdKey string

	// Ctx is canceled on interrupt.
	Ctx context.Context

	Log hclog.Logger

	// Example is shown under "Examples:" in the command's help.
	Example string

	ui terminal.UI
	fs afero.Fs

	// Values of the shared flags.
	flagPlain bool
	declFile  string
	usage     string

	// args are the positional arguments left after flag parsing and
	// passthrough is what followed "--".
	args        []string
	passthrough []string

	// globalOptions come from Commands and apply before a command's own.
	globalOptions []Option
}

// Close releases the UI if it holds resources. Main defers it.
func (c *baseCommand) Close() error {
	if closer, ok := c.ui.(io.Closer); ok && closer != nil {
		closer.Close()
	}
	return nil
}

func (c *baseCommand) GetExample() string {
	if len(c.Example) > 0 {
		return "Examples:" + c.Example + "\n"
	}
	return ""
}

// Init sets up the UI, logger and filesystem, then parses and validates the
// command's arguments. Every Run starts with it; on error the UI is ready
// for reporting.
func (c *baseCommand) Init(opts ...Option) error {
	var baseCfg baseConfig
	for _, opt := range append(slices.Clone(c.globalOptions), opts...) {
		opt(&baseCfg)
	}

	ui := baseCfg.UI
	if ui == nil {
		ui = terminal.ConsoleUI()
	}
	c.ui = ui

	c.Log = baseCfg.Log
	if c.Log == nil {
		c.Log = logging.New(cliName, os.Stderr, os.Getenv(logging.EnvLogLevel))
	}

	c.fs = baseCfg.Fs
	if c.fs == nil {
		c.fs = afero.NewOsFs()
	}

	if err := baseCfg.Flags.Parse(baseCfg.Args); err != nil {
		return err
	}
	c.args = baseCfg.Flags.Args()

	if baseCfg.Flags.HasPassthrough() {
		if !baseCfg.Passthrough {
			return errors.New(`this command does not accept arguments after "--"`)
		}
		c.passthrough = baseCfg.Flags.Passthrough()
	}

	if baseCfg.Validation != nil {
		if err := baseCfg.Validation(c, c.args); err != nil {
			return err
		}
	}

	// --plain only replaces the console UI, never one given by WithUI.
	if c.flagPlain && baseCfg.UI == nil {
		c.ui = terminal.NewBasicUI(os.Stdout, os.Stderr, true)
	}

	c.Log.Debug("command initialized", "command", c.cmdKey, "args", c.args, "passthrough", c.passthrough)
	return nil
}

// flagSet builds a command's flags: the shared sections picked by bit,
// then whatever f adds.
func (c *baseCommand) flagSet(bit flagSetBit, f func(*flag.Sets)) *flag.Sets {
	set := flag.NewSets()

	if bit&flagSetDeclarations != 0 {
		f := set.NewSet("Declaration Options")
		f.StringVar(&flag.StringVar{
			Name:      "decl-file",
			Shorthand: "f",
			Target:    &c.declFile,
			Default:   "",
			EnvVar:    EnvDeclFile,
			Example:   "path",
			Usage: `Path to the declarations file. Files ending in ".json"
					are read as HCL JSON, anything else as native HCL.`,
			Completion: complete.PredictOr(complete.PredictFiles("*.hcl"), complete.PredictFiles("*.json")),
		})

		f.StringVar(&flag.StringVar{
			Name:    "usage",
			Target:  &c.usage,
			Default: "",
			Usage: `Usage line shown at the top of the help text. Overrides
					the usage attribute of the declarations file.`,
		})
	}

	if bit&flagSetOutput != 0 {
		f := set.NewSet("Output Options")
		f.BoolVar(&flag.BoolVar{
			Name:    "plain",
			Target:  &c.flagPlain,
			Default: false,
			EnvVar:  terminal.EnvPlain,
			Usage:   `Disable colored output.`,
		})
	}

	if f != nil {
		// Configure our values
		f(set)
	}

	return set
}

// loadParser reads the declarations file and returns a Parser with every
// declaration registered. Problems are written to the UI and reported as
// ErrSentinel.
func (c *baseCommand) loadParser() (*flagparse.Parser, error) {
	errCtx := errors.NewUIErrorContext()
	errCtx.Add(errors.UIContextPrefixDeclFile, c.declFile)

	loader := declfile.New(&declfile.Config{
		Fs:     c.fs,
		Logger: logging.FromHCLog(c.Log.Named("declfile")),
	})

	file, err := loader.Load(c.declFile)
	if err != nil {
		var diags hcl.Diagnostics
		if errors.As(err, &diags) {
			for _, w := range errors.HCLDiagsToWrappedUIContext(diags) {
				w.Context.Append(errCtx)
				c.ui.ErrorWithContext(w.Err, w.Subject, w.Context.GetAll()...)
			}
		} else {
			c.ui.ErrorWithContext(err, "failed to load declarations", errCtx.GetAll()...)
		}
		return nil, ErrSentinel
	}

	p := flagparse.New(flagparse.WithLogger(c.Log.Named("parser")))
	if err := file.Apply(p); err != nil {
		c.showErrors(err, "invalid flag declaration", errCtx)
		return nil, ErrSentinel
	}

	if c.usage != "" {
		p.Usage(c.usage)
	}

	c.Log.Debug("declarations loaded", "file", c.declFile, "flags", p.Registry().Len())
	return p, nil
}

// showErrors writes every error in err. Errors that carry their own
// context are shown with it; errCtx is used for the rest.
func (c *baseCommand) showErrors(err error, sub string, errCtx *errors.UIErrorContext) {
	errs := []error{err}
	var mErr *multierror.Error
	if errors.As(err, &mErr) {
		errs = mErr.WrappedErrors()
	}

	for _, e := range errs {
		var wrapped *errors.WrappedUIContext
		if errors.As(e, &wrapped) {
			c.ui.ErrorWithContext(wrapped.Err, wrapped.Subject, wrapped.Context.GetAll()...)
			continue
		}
		c.ui.ErrorWithContext(e, sub, errCtx.GetAll()...)
	}
}

// helpUsageMessage points at the command's help after an Init failure.
func (c *baseCommand) helpUsageMessage() string {
	if c.cmdKey == "" {
		return fmt.Sprintf(`See "%s --help"`, cliName)
	}
	return fmt.Sprintf(`See "%s %s --help"`, cliName, c.cmdKey)
}

// flagSetBit selects shared flag sections for baseCommand.flagSet.
type flagSetBit uint

const (
	flagSetDeclarations flagSetBit = 1 << iota // --decl-file and --usage
	flagSetOutput                              // --plain
)

const (
	// EnvDeclFile is the env var read when --decl-file is not set.
	EnvDeclFile = "FLAGPARSE_DECL_FILE"
)

var (
	// ErrSentinel means the failure was already shown to the user.
	ErrSentinel = errors.New("error sentinel")

	// ErrParsingArgsOrFlags is the subject shown when Init fails.
	ErrParsingArgsOrFlags = "error parsing args or flags"
)
