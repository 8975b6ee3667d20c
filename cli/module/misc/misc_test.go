// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package misc

import (
	"github.com/d42-tools/d42/cli"
	"github.com/d42-tools/d42/cli/module/moduletest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("misc module", func() {

	It("offers the panda operation", func() {
		mod, err := New()
		Expect(err).NotTo(HaveOccurred())
		Expect(mod.Name()).To(Equal(Name))
		Expect(mod.(cli.OperationProvider).Operations()).To(HaveKey("panda"))
	})

	It("shows a panda regardless of the output format, without calling the API", func() {
		s := moduletest.NewSession(nil, nil, true)
		Expect(Panda(s.Session)).To(BeTrue())
		Expect(s.API.Calls).To(BeEmpty())
		Expect(s.Output.String()).To(ContainSubstring(`_/ | _`))
		Expect(s.Output.String()).To(HaveSuffix("@@\n"))
	})

})
