package terraform

import (
	"fmt"
	"math/big"

	"github.com/zclconf/go-cty/cty"
)

// decodeValue converts an evaluated cty value into the plain Go shape the
// synthesizer accumulates: strings, bools, int64/float64 numbers, []any,
// and map[string]any.
func decodeValue(v cty.Value) (any, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.IsKnown() {
		return nil, fmt.Errorf("cannot decode unknown value")
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty == cty.Number:
		f := v.AsBigFloat()
		if i, accuracy := f.Int64(); accuracy == big.Exact {
			return i, nil
		}
		approx, _ := f.Float64()
		return approx, nil

	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		elements := make([]any, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, element := it.Element()
			decoded, err := decodeValue(element)
			if err != nil {
				return nil, err
			}
			elements = append(elements, decoded)
		}
		return elements, nil

	case ty.IsObjectType() || ty.IsMapType():
		entries := make(map[string]any)
		for it := v.ElementIterator(); it.Next(); {
			key, element := it.Element()
			decoded, err := decodeValue(element)
			if err != nil {
				return nil, err
			}
			entries[key.AsString()] = decoded
		}
		return entries, nil

	default:
		return nil, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
	}
}
