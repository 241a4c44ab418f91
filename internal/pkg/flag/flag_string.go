// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package flag

import (
	"os"

	"github.com/posener/complete"
)

// StringVar declares a free-form string option.
type StringVar struct {
	Name       string
	Shorthand  string
	Usage      string
	Default    string
	Hidden     bool
	EnvVar     string
	Target     *string
	Completion complete.Predictor

	// Example is the help placeholder; "string" when empty.
	Example string
}

func (f *Set) StringVar(i *StringVar) {
	*i.Target = i.Default
	if v, ok := os.LookupEnv(i.EnvVar); ok {
		*i.Target = v
	}

	example := i.Example
	if example == "" {
		example = "string"
	}

	f.VarFlag(&VarFlag{
		Name:       i.Name,
		Shorthand:  i.Shorthand,
		Usage:      i.Usage,
		Default:    i.Default,
		EnvVar:     i.EnvVar,
		Value:      &stringValue{target: i.Target, hidden: i.Hidden, example: example},
		Completion: i.Completion,
	})
}

type stringValue struct {
	target  *string
	hidden  bool
	example string
}

func (s *stringValue) Set(val string) error {
	*s.target = val
	return nil
}

func (s *stringValue) Get() interface{} { return *s.target }
func (s *stringValue) String() string   { return *s.target }
func (s *stringValue) Example() string  { return s.example }
func (s *stringValue) Hidden() bool     { return s.hidden }
func (s *stringValue) Type() string     { return "string" }
