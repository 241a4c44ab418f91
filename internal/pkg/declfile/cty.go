// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package declfile

import (
	"math/big"

	"github.com/zclconf/go-cty/cty"

	"github.com/hashicorp/flagparse/internal/pkg/errors"
)

// primitive converts a decoded default into a Go value. Null and unset
// values mean no default. Whole numbers that fit become int64, any other
// number becomes float64.
func primitive(v cty.Value) (any, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.IsWhollyKnown() {
		return nil, errors.ErrUnsupportedDefault
	}

	switch v.Type() {
	case cty.String:
		return v.AsString(), nil
	case cty.Bool:
		return v.True(), nil
	case cty.Number:
		bf := v.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == big.Exact {
				return i, nil
			}
		}
		f, _ := bf.Float64()
		return f, nil
	}

	return nil, errors.ErrUnsupportedDefault
}
