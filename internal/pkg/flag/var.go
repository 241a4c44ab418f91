// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package flag

import (
	"fmt"

	"github.com/posener/complete"
	flag "github.com/spf13/pflag"
)

// FlagExample is implemented by values that show a placeholder in help,
// as in --decl-file=<path>.
type FlagExample interface {
	Example() string
}

// FlagVisibility is implemented by values that can be kept out of help and
// completions while still parsing.
type FlagVisibility interface {
	Hidden() bool
}

// VarFlag registers an arbitrary pflag.Value. The typed helpers in this
// package all build one.
type VarFlag struct {
	Name       string
	Shorthand  string
	Usage      string
	Default    string
	EnvVar     string
	Value      flag.Value
	Completion complete.Predictor
}

func (f *Set) VarFlag(i *VarFlag) {
	if v, ok := i.Value.(FlagVisibility); ok && v.Hidden() {
		f.unionSet.VarP(i.Value, i.Name, i.Shorthand, "")
		return
	}

	usage := i.Usage
	if i.EnvVar != "" {
		usage += fmt.Sprintf(" The default is taken from $%s when it is set.", i.EnvVar)
	}

	// The help section and the parsed union each get their own *pflag.Flag
	// sharing i.Value.
	for _, set := range []*flag.FlagSet{f.flagSet, f.unionSet} {
		set.VarP(i.Value, i.Name, i.Shorthand, usage)
		if i.Default != "" {
			set.Lookup(i.Name).DefValue = i.Default
		}
	}

	predictor := i.Completion
	if predictor == nil {
		predictor = complete.PredictNothing
	}
	f.completions["--"+i.Name] = predictor
	if i.Shorthand != "" {
		f.completions["-"+i.Shorthand] = predictor
	}
}
