// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package flagparse

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Declaration describes a single accepted flag.
type Declaration struct {
	// Name is the flag name without leading dashes. Required.
	Name string

	// Description is shown in the help text. Required.
	Description string

	// Default is used when the flag is not supplied. A nil Default means
	// the flag has no default.
	Default any
}

// HasDefault reports whether a default value was declared.
func (d Declaration) HasDefault() bool { return d.Default != nil }

// Registry is an insertion-ordered set of flag declarations keyed by name.
type Registry struct {
	decls *orderedmap.OrderedMap[string, Declaration]
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		decls: orderedmap.New[string, Declaration](),
	}
}

// Register validates and stores d. Registering a name that already exists
// replaces its declaration but keeps its original position. Nothing is
// stored when validation fails.
func (r *Registry) Register(d Declaration) error {
	if err := d.validate(); err != nil {
		return err
	}
	r.decls.Set(d.Name, d)
	return nil
}

// Lookup returns the declaration registered under name.
func (r *Registry) Lookup(name string) (Declaration, bool) {
	return r.decls.Get(name)
}

// Len returns the number of registered declarations.
func (r *Registry) Len() int {
	return r.decls.Len()
}

// Reset removes every declaration.
func (r *Registry) Reset() {
	r.decls = orderedmap.New[string, Declaration]()
}

// Entries returns the declarations in insertion order. The sequence is
// lazy and may be ranged over any number of times.
func (r *Registry) Entries() iter.Seq2[string, Declaration] {
	return func(yield func(string, Declaration) bool) {
		for pair := r.decls.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Names returns the registered names in insertion order.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.decls.Len())
	for name := range r.Entries() {
		names = append(names, name)
	}
	return names
}

func (d Declaration) validate() error {
	if d.Name == "" {
		return &ValidationError{Field: FieldName}
	}
	if d.Description == "" {
		return &ValidationError{Field: FieldDescription, Flag: d.Name}
	}
	return nil
}
