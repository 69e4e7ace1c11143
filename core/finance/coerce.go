package finance

import (
	"encoding/json"
	"strconv"
	"strings"

	"fincalc/internal/errors"
)

// Coerce interprets a raw value as a float64. It accepts the shapes a JSON
// body, an HCL attribute, or a flag parser can produce. Anything else fails
// with a TYPE_ERROR naming the parameter. Coercion always runs before domain
// validation, which reports VALUE_ERROR instead.
func Coerce(name string, v interface{}) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, errors.InvalidType(name)
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, errors.InvalidType(name)
		}
		return f, nil
	default:
		return 0, errors.InvalidType(name)
	}
}

// CoerceSlice interprets a raw value as an ordered sequence of float64.
// A non-sequence value fails with a TYPE_ERROR naming the parameter; an
// uncoercible element fails with a TYPE_ERROR naming its positional index
// (e.g. "asset_2"). The first failure aborts the call.
func CoerceSlice(name string, v interface{}) ([]float64, error) {
	raw, ok := v.([]interface{})
	if !ok {
		if fs, ok := v.([]float64); ok {
			return fs, nil
		}
		return nil, errors.Newf(errors.TypeInvalidType, "%s must be a list of numbers", name)
	}

	out := make([]float64, 0, len(raw))
	for i, elem := range raw {
		f, err := Coerce(indexed(name, i), elem)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func indexed(name string, i int) string {
	return name + "_" + strconv.Itoa(i)
}
