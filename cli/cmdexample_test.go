// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package cli

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("command examples", func() {

	It("joins examples with empty lines", func() {
		Expect(joinExamples("d42", []CommandExamples{
			func() map[string]string { return map[string]string{"d42": "  d42 --get-device -p device_id=42\n"} },
			func() map[string]string { return map[string]string{"other": "nope"} },
			func() map[string]string { return map[string]string{"d42": "  d42 --panda"} },
		})).To(Equal("  d42 --get-device -p device_id=42\n\n  d42 --panda"))
		Expect(joinExamples("d42", nil)).To(BeEmpty())
	})

})
