// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package flagparse

import (
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
)

// Parser holds a Registry of declared flags and the result of the most
// recent successful Parse. The zero value is not usable; create one with
// New.
type Parser struct {
	// Flags is the result of the last successful Parse. It is cleared by
	// UnregisterFlags.
	Flags Result

	registry *Registry
	usage    string
	logger   hclog.Logger

	// regErr accumulates failures from chained RegisterFlag calls.
	regErr *multierror.Error
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used to trace token handling.
func WithLogger(logger hclog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithUsage sets the usage line shown at the top of the help text.
func WithUsage(usage string) Option {
	return func(p *Parser) { p.usage = usage }
}

// New returns a Parser with an empty Registry.
func New(opts ...Option) *Parser {
	p := &Parser{
		Flags:    Result{},
		registry: NewRegistry(),
		logger:   hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Usage sets the usage line shown at the top of the help text.
func (p *Parser) Usage(usage string) *Parser {
	p.usage = usage
	return p
}

// RegisterFlag declares a flag and returns the Parser for chaining. Only
// the first element of def is used as the default. A registration that
// fails validation is not stored; the error is kept and reported by Err
// and by Parse. Callers that need the failure at once should use Register.
func (p *Parser) RegisterFlag(name, description string, def ...any) *Parser {
	d := Declaration{Name: name, Description: description}
	if len(def) > 0 {
		d.Default = def[0]
	}

	if err := p.Register(d); err != nil {
		p.regErr = multierror.Append(p.regErr, err)
	}
	return p
}

// Register declares a flag, failing immediately when d is invalid.
func (p *Parser) Register(d Declaration) error {
	if err := p.registry.Register(d); err != nil {
		return err
	}
	p.logger.Debug("registered flag", "flag", d.Name, "has_default", d.HasDefault())
	return nil
}

// Err returns the errors collected from chained RegisterFlag calls.
func (p *Parser) Err() error {
	return p.regErr.ErrorOrNil()
}

// UnregisterFlags removes every declaration, any recorded registration
// errors and the last published result.
func (p *Parser) UnregisterFlags() {
	p.registry.Reset()
	p.regErr = nil
	p.Flags = Result{}
}

// Registry returns the Parser's declarations.
func (p *Parser) Registry() *Registry {
	return p.registry
}

// Parse resolves args, the user-supplied arguments without the program
// name, against the registered flags.
//
// If -h or --help (or --h, -help) is present, Parse returns a nil Result
// and the *Exit from Help; Flags is left untouched. Errors recorded by
// RegisterFlag are returned before any argument is looked at.
//
// For every registered flag the resolved value is the first of: the
// parsed value if truthy, the default if truthy, true if the flag was
// present at all, the declared default, or nil.
func (p *Parser) Parse(args []string) (Result, error) {
	if err := p.Err(); err != nil {
		return nil, err
	}

	scanned := scan(args, p.logger)

	if _, ok := scanned["h"]; ok {
		return nil, p.Help()
	}
	if _, ok := scanned["help"]; ok {
		return nil, p.Help()
	}

	result := make(Result, p.registry.Len())
	for name, decl := range p.registry.Entries() {
		result[name] = resolve(scanned, decl)
	}

	for name := range scanned {
		if _, ok := p.registry.Lookup(name); !ok {
			p.logger.Trace("dropping unregistered flag", "flag", name)
		}
	}

	p.Flags = result
	return result, nil
}

// Source names where a resolved value came from.
type Source int

const (
	SourceDefault Source = iota
	SourceArgument
)

func (s Source) String() string {
	if s == SourceArgument {
		return "argument"
	}
	return "default"
}

// ValueSource reports whether decl resolves from the scanned arguments or
// from its default. A falsy scanned value loses to a truthy default.
func ValueSource(scanned Result, decl Declaration) Source {
	value, present := scanned[decl.Name]
	if truthy(value) || (present && !truthy(decl.Default)) {
		return SourceArgument
	}
	return SourceDefault
}

func resolve(scanned Result, decl Declaration) any {
	if ValueSource(scanned, decl) == SourceDefault {
		return decl.Default
	}
	if value := scanned[decl.Name]; truthy(value) {
		return value
	}
	return true
}
