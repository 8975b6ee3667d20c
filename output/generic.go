// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"encoding/json"
)

// generic turns arbitrary data into its generic JSON-like form made of
// map[string]any, []any, strings, bools, nil, int64 and float64 values, by
// passing it through JSON. Structs thus get their JSON field names.
func generic(data any) (any, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return numbers(v), nil
}

// numbers replaces json.Number values by int64, or float64 where the number
// isn't integral.
func numbers(v any) any {
	switch v := v.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	case map[string]any:
		for key, val := range v {
			v[key] = numbers(val)
		}
		return v
	case []any:
		for idx, val := range v {
			v[idx] = numbers(val)
		}
		return v
	default:
		return v
	}
}
