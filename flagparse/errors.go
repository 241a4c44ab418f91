// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package flagparse

import "fmt"

// Declaration fields checked at registration time.
const (
	FieldName        = "name"
	FieldDescription = "description"
)

// ValidationError is returned when a flag is registered without a name or
// a description.
type ValidationError struct {
	// Field is the missing field, FieldName or FieldDescription.
	Field string

	// Flag is the name of the offending flag, when it is known.
	Flag string
}

func (e *ValidationError) Error() string {
	switch e.Field {
	case FieldName:
		return "flag name is required!"
	case FieldDescription:
		return "description is required!"
	default:
		return fmt.Sprintf("invalid flag declaration: %s", e.Field)
	}
}
