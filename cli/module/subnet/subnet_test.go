// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package subnet

import (
	"encoding/json"

	"github.com/d42-tools/d42"
	"github.com/d42-tools/d42/cli/module/moduletest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("subnet module", func() {

	params := func() d42.Params {
		return d42.Params{"network": "10.1.0.0", "mask_bits": json.Number("24"), "name": "lab"}
	}

	It("requires network, mask, and name for creation", func() {
		s := moduletest.NewSession(d42.Params{"network": "10.1.0.0"}, nil, true)
		Expect(Create(s.Session)).To(BeFalse())
		Expect(s.ErrorMessages()).To(Equal([]string{
			"Required options were not found: network, mask_bits, name"}))
		Expect(s.Errors.FinalExitStatus()).To(Equal(130))
	})

	It("creates an absent subnet", func() {
		s := moduletest.NewSession(params(), nil, true)
		s.API.Results = []d42.Result{
			moduletest.OK(map[string]any{"subnets": []any{}}),
			moduletest.OK(map[string]any{"code": 0}),
		}
		Expect(Create(s.Session)).To(BeTrue())
		Expect(s.API.Methods()).To(Equal([]string{
			"GET /subnets/?mask_bits=24&network=10.1.0.0",
			"POST /subnets/",
		}))
		Expect(s.API.Calls[1].Body).To(Equal(params()))
	})

	It("doesn't create an existing subnet", func() {
		s := moduletest.NewSession(params(), nil, true)
		s.API.Default = moduletest.OK(map[string]any{"subnets": []any{map[string]any{}}})
		Expect(Create(s.Session)).To(BeFalse())
		Expect(s.API.Calls).To(HaveLen(1))
		Expect(s.ErrorMessages()).To(Equal([]string{"An existing subnet matched this create request"}))
	})

	It("updates only existing subnets", func() {
		s := moduletest.NewSession(d42.Params{"network": "10.1.0.0", "mask_bits": "24"}, nil, true)
		s.API.Default = moduletest.OK(map[string]any{"subnets": []any{}})
		Expect(Update(s.Session)).To(BeFalse())
		Expect(s.ErrorMessages()).To(Equal([]string{"No existing subnet was found for this update request"}))
	})

	It("searches, gets, and deletes", func() {
		s := moduletest.NewSession(d42.Params{"subnet_id": "3"}, map[string]any{"yes": true}, false)
		s.API.Default = moduletest.OK(map[string]any{})
		Expect(Search(s.Session)).To(BeTrue())
		Expect(Get(s.Session)).To(BeTrue())
		Expect(Delete(s.Session)).To(BeTrue())
		Expect(s.API.Methods()).To(Equal([]string{
			"GET /subnets/?subnet_id=3",
			"GET /subnets/3/",
			"DELETE /subnets/3/",
		}))
	})

	It("records failed API calls", func() {
		s := moduletest.NewSession(d42.Params{"subnet_id": "3"}, nil, true)
		s.API.Default = moduletest.Failed(404)
		Expect(Get(s.Session)).To(BeFalse())
		Expect(s.Errors.FinalExitStatus()).To(Equal(131))
	})

	It("doesn't delete when declined", func() {
		s := moduletest.NewSession(d42.Params{"subnet_id": "3"}, nil, false)
		Expect(Delete(s.Session)).To(BeFalse())
		Expect(s.API.Calls).To(BeEmpty())
		Expect(s.Errors.FinalExitStatus()).To(Equal(134))
	})

})
