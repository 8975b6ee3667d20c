// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package d42

import (
	"encoding/json"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns a copy of a decoded JSON value where all strings, both
// map keys and leaf values, are turned into valid UTF-8 in Unicode
// normalization form C. Invalid byte sequences are replaced by U+FFFD. Maps
// and slices are rebuilt recursively, keeping their structure; numbers,
// booleans, and nil are returned as-is.
func Normalize(v any) any {
	switch v := v.(type) {
	case nil:
		return nil
	case string:
		return normalizeString(v)
	case bool, json.Number, float64, float32, int, int64, int32, uint, uint64, uint32:
		return v
	case map[string]any:
		m := make(map[string]any, len(v))
		for key, val := range v {
			m[normalizeString(key)] = Normalize(val)
		}
		return m
	case []any:
		s := make([]any, len(v))
		for idx, val := range v {
			s[idx] = Normalize(val)
		}
		return s
	default:
		log.Warnf("unexpected type %T while normalizing API response", v)
		return v
	}
}

func normalizeString(s string) string {
	return norm.NFC.String(strings.ToValidUTF8(s, "\uFFFD"))
}
