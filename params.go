// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package d42

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Params are the user-supplied key/value parameters forwarded to the API,
// either as a JSON request body or as an URL query string.
type Params map[string]any

// ErrInvalidParams is returned (wrapped) by ParseParams for parameters that
// cannot be parsed.
var ErrInvalidParams = errors.New("invalid parameters")

// ParseParams assembles parameters from an optional JSON object blob and a
// list of "key=value" items. The key=value items supersede the blob key by
// key, in the order given, so the last occurrence of a duplicate key wins.
// Values of key=value items are always strings; only the first "=" separates
// key and value, so values may contain "=" themselves.
func ParseParams(blob string, kvs []string) (Params, error) {
	params := Params{}
	if strings.TrimSpace(blob) != "" {
		dec := json.NewDecoder(bytes.NewReader([]byte(blob)))
		dec.UseNumber()
		var obj map[string]any
		if err := dec.Decode(&obj); err != nil {
			return nil, fmt.Errorf("%w: not a serialized JSON object: %s", ErrInvalidParams, err)
		}
		if obj == nil {
			return nil, fmt.Errorf("%w: JSON null is not a parameter object", ErrInvalidParams)
		}
		for key, val := range obj {
			params[key] = val
		}
	}
	for _, kv := range kvs {
		key, val, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q is not of the form key=value", ErrInvalidParams, kv)
		}
		params[key] = val
	}
	return params, nil
}

// Has returns true if all the specified keys are present with non-nil values.
// It returns false when no keys are given at all.
func (p Params) Has(keys ...string) bool {
	if len(p) == 0 || len(keys) == 0 {
		return false
	}
	for _, key := range keys {
		if val, ok := p[key]; !ok || val == nil {
			return false
		}
	}
	return true
}

// String returns the textual representation of the value for key, or "" if
// there is no such key.
func (p Params) String(key string) string {
	val, ok := p[key]
	if !ok || val == nil {
		return ""
	}
	if s, ok := val.(string); ok {
		return s
	}
	return fmt.Sprint(val)
}

// Without returns a shallow copy of the parameters, minus the specified keys.
func (p Params) Without(keys ...string) Params {
	cp := make(Params, len(p))
	for key, val := range p {
		cp[key] = val
	}
	for _, key := range keys {
		delete(cp, key)
	}
	return cp
}

// Encode returns the parameters in URL-encoded form ("key=value&..."), sorted
// by key. Values that are JSON objects or arrays are encoded as JSON text.
func (p Params) Encode() string {
	vals := url.Values{}
	for key, val := range p {
		switch val.(type) {
		case map[string]any, []any:
			b, _ := json.Marshal(val)
			vals.Set(key, string(b))
		default:
			vals.Set(key, p.String(key))
		}
	}
	return vals.Encode()
}

// Query returns the URL-encoded parameters including the leading "?", or an
// empty string if there are no parameters.
func (p Params) Query() string {
	if len(p) == 0 {
		return ""
	}
	return "?" + p.Encode()
}
