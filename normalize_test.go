// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package d42

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("normalizing API responses", func() {

	It("keeps structure and scalar types", func() {
		in := map[string]any{
			"Devices": []any{
				map[string]any{
					"id":       json.Number("42"),
					"name":     "host1",
					"in_rack":  true,
					"notes":    nil,
					"tags":     []any{"a", "b"},
					"hw_ratio": json.Number("0.5"),
				},
			},
			"total_count": json.Number("1"),
		}
		out := Normalize(in)
		Expect(out).To(Equal(in))
	})

	It("normalizes strings in keys and values", func() {
		decomposed := "Cafe\u0301"
		out := Normalize(map[string]any{
			decomposed: []any{decomposed, "bad\xffbyte"},
		})
		Expect(out).To(Equal(map[string]any{
			"Caf\u00e9": []any{"Caf\u00e9", "bad\uFFFDbyte"},
		}))
	})

	It("passes through nil and unexpected types", func() {
		Expect(Normalize(nil)).To(BeNil())
		type odd struct{ A int }
		Expect(Normalize(odd{A: 1})).To(Equal(odd{A: 1}))
	})

})
