// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package flag

import (
	"fmt"
	"os"
	"strings"

	"github.com/posener/complete"
	"golang.org/x/exp/slices"
)

// EnumSingleVar declares an option restricted to one of Values, such as
// --format. An EnvVar value outside Values is ignored.
type EnumSingleVar struct {
	Name      string
	Shorthand string
	Usage     string
	Values    []string
	Default   string
	Hidden    bool
	EnvVar    string
	Target    *string
}

func (f *Set) EnumSingleVar(i *EnumSingleVar) {
	*i.Target = i.Default
	if v, ok := os.LookupEnv(i.EnvVar); ok && slices.Contains(i.Values, v) {
		*i.Target = v
	}

	usage := fmt.Sprintf("%s. One possible value from: %s.",
		strings.TrimRight(i.Usage, ". \t"), strings.Join(i.Values, ", "))

	f.VarFlag(&VarFlag{
		Name:       i.Name,
		Shorthand:  i.Shorthand,
		Usage:      usage,
		Default:    i.Default,
		EnvVar:     i.EnvVar,
		Value:      &enumSingleValue{values: i.Values, target: i.Target, hidden: i.Hidden},
		Completion: complete.PredictSet(i.Values...),
	})
}

type enumSingleValue struct {
	values []string
	target *string
	hidden bool
}

func (s *enumSingleValue) Set(val string) error {
	if !slices.Contains(s.values, val) {
		return fmt.Errorf("%q is not one of: %s", val, strings.Join(s.values, ", "))
	}
	*s.target = val
	return nil
}

func (s *enumSingleValue) Get() interface{} { return *s.target }
func (s *enumSingleValue) String() string   { return *s.target }
func (s *enumSingleValue) Example() string  { return strings.Join(s.values, "|") }
func (s *enumSingleValue) Hidden() bool     { return s.hidden }
func (s *enumSingleValue) Type() string     { return "EnumSingle" }
