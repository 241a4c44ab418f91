// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

// Package declfile loads flag declarations from HCL or HCL JSON files.
//
//	usage = "mytool [options]"
//
//	flag "name" {
//	  description = "User name"
//	  default     = "DefaultName"
//	}
//
// Blocks are registered in the order they appear in the file.
package declfile

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"

	"github.com/hashicorp/flagparse/flagparse"
	"github.com/hashicorp/flagparse/internal/pkg/errors"
	"github.com/hashicorp/flagparse/internal/pkg/logging"
)

// Config configures a Loader.
type Config struct {
	// Fs is the filesystem files are read from. Defaults to the OS
	// filesystem.
	Fs afero.Fs

	// Logger receives debug output. Defaults to a logger that discards.
	Logger logging.Logger
}

// Loader reads declarations files. A Loader keeps every parsed file so
// diagnostics can be rendered with source snippets.
type Loader struct {
	fs     afero.Afero
	log    logging.Logger
	parser *hclparse.Parser
}

// New returns a Loader for cfg. A nil cfg uses the defaults.
func New(cfg *Config) *Loader {
	if cfg == nil {
		cfg = &Config{}
	}
	fs := cfg.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	log := cfg.Logger
	if log == nil {
		log = logging.FromHCLog(nil)
	}

	return &Loader{
		fs:     afero.Afero{Fs: fs},
		log:    log,
		parser: hclparse.NewParser(),
	}
}

// Files returns the parsed HCL files keyed by filename.
func (l *Loader) Files() map[string]*hcl.File {
	return l.parser.Files()
}

// File is the decoded content of a declarations file.
type File struct {
	// Path is the file the declarations were read from.
	Path string

	// Usage is the usage line, if the file sets one.
	Usage    string
	HasUsage bool

	// Declarations are the flags in file order.
	Declarations []flagparse.Declaration

	ranges map[string]hcl.Range
}

// Range returns the source range of the named flag block.
func (f *File) Range(name string) (hcl.Range, bool) {
	r, ok := f.ranges[name]
	return r, ok
}

var rootSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "usage"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "flag", LabelNames: []string{"name"}},
	},
}

type flagBody struct {
	Description string    `hcl:"description,optional"`
	Default     cty.Value `hcl:"default,optional"`
}

// Load reads and decodes path. Files ending in ".json" are parsed as HCL
// JSON; everything else as native HCL syntax. Decoding problems are
// returned as hcl.Diagnostics.
func (l *Loader) Load(path string) (*File, error) {
	if path == "" {
		return nil, errors.ErrDeclFileRequired
	}

	src, err := l.fs.ReadFile(path)
	if err != nil {
		if exists, _ := l.fs.Exists(path); !exists {
			return nil, fmt.Errorf("%w: %s", errors.ErrDeclFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read declarations file %q: %w", path, err)
	}

	l.log.Debug(fmt.Sprintf("loading declarations from %s", path))
	return l.decode(path, src)
}

func (l *Loader) decode(filename string, src []byte) (*File, error) {
	var hclFile *hcl.File
	var diags hcl.Diagnostics

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		hclFile, diags = l.parser.ParseJSON(src, filename)
	default:
		hclFile, diags = l.parser.ParseHCL(src, filename)
	}
	if diags.HasErrors() {
		return nil, diags
	}

	content, contentDiags := hclFile.Body.Content(rootSchema)
	diags = diags.Extend(contentDiags)
	if diags.HasErrors() {
		return nil, diags
	}

	out := &File{
		Path:         filename,
		Declarations: make([]flagparse.Declaration, 0, len(content.Blocks)),
		ranges:       make(map[string]hcl.Range, len(content.Blocks)),
	}

	if attr, ok := content.Attributes["usage"]; ok {
		diags = diags.Extend(gohcl.DecodeExpression(attr.Expr, nil, &out.Usage))
		out.HasUsage = true
	}

	for _, block := range content.Blocks {
		name := block.Labels[0]

		var body flagBody
		if blockDiags := gohcl.DecodeBody(block.Body, nil, &body); blockDiags.HasErrors() {
			diags = diags.Extend(blockDiags)
			continue
		}

		def, err := primitive(body.Default)
		if err != nil {
			rng := block.DefRange
			diags = diags.Append(&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid flag default",
				Detail:   fmt.Sprintf("The default for flag %q is invalid: %s.", name, err),
				Subject:  &rng,
			})
			continue
		}

		if prev, ok := out.ranges[name]; ok {
			l.log.Warning(fmt.Sprintf("flag %q at %s overrides the declaration at %s", name, block.DefRange, prev))
		}

		out.Declarations = append(out.Declarations, flagparse.Declaration{
			Name:        name,
			Description: body.Description,
			Default:     def,
		})
		out.ranges[name] = block.DefRange
	}

	if diags.HasErrors() {
		return nil, diags
	}
	return out, nil
}

// Apply registers every declaration on p and sets the usage line when the
// file has one. Invalid declarations are skipped and reported together as
// *errors.WrappedUIContext values inside a *multierror.Error.
func (f *File) Apply(p *flagparse.Parser) error {
	if f.HasUsage {
		p.Usage(f.Usage)
	}

	var mErr *multierror.Error
	for _, decl := range f.Declarations {
		if err := p.Register(decl); err != nil {
			ctx := errors.NewUIErrorContext()
			ctx.Add(errors.UIContextPrefixDeclFile, f.Path)
			ctx.Add(errors.UIContextPrefixFlagName, decl.Name)
			if rng, ok := f.Range(decl.Name); ok {
				ctx.Add(errors.UIContextPrefixHCLRange, rng.String())
			}
			mErr = multierror.Append(mErr, errors.NewWrappedUIContext(err, "invalid flag declaration", ctx))
		}
	}
	return mErr.ErrorOrNil()
}
