// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package flag

import (
	"os"
	"strconv"

	"github.com/posener/complete"
)

// BoolVar declares a switch such as --plain. Passing the flag with no value
// sets it; --plain=false clears it.
type BoolVar struct {
	Name       string
	Usage      string
	Default    bool
	Hidden     bool
	Target     *bool
	Completion complete.Predictor

	// EnvVar, when set to something strconv.ParseBool accepts, overrides
	// Default. Other values are ignored.
	EnvVar string
}

// boolFlag is satisfied by values that may be given without "=value".
type boolFlag interface {
	IsBoolFlag() bool
}

func (f *Set) BoolVar(i *BoolVar) {
	*i.Target = i.Default
	if raw, ok := os.LookupEnv(i.EnvVar); ok {
		if b, err := strconv.ParseBool(raw); err == nil {
			*i.Target = b
		}
	}

	f.VarFlag(&VarFlag{
		Name:       i.Name,
		Usage:      i.Usage,
		Default:    strconv.FormatBool(i.Default),
		EnvVar:     i.EnvVar,
		Value:      &boolValue{target: i.Target, hidden: i.Hidden},
		Completion: i.Completion,
	})

	// pflag only treats its own bool type as optional-valued.
	f.unionSet.Lookup(i.Name).NoOptDefVal = "true"
}

type boolValue struct {
	target *bool
	hidden bool
}

func (b *boolValue) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*b.target = v
	return nil
}

func (b *boolValue) Get() interface{} { return *b.target }
func (b *boolValue) String() string   { return strconv.FormatBool(*b.target) }
func (b *boolValue) Example() string  { return "" }
func (b *boolValue) Hidden() bool     { return b.hidden }
func (b *boolValue) IsBoolFlag() bool { return true }
func (b *boolValue) Type() string     { return "bool" }
