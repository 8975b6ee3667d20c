// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package vlan

import (
	"github.com/d42-tools/d42"
	"github.com/d42-tools/d42/cli/module/moduletest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("vlan module", func() {

	It("creates an absent vlan", func() {
		s := moduletest.NewSession(d42.Params{"number": "100", "name": "lab"}, nil, true)
		s.API.Results = []d42.Result{
			moduletest.OK(map[string]any{"vlans": []any{}}),
			moduletest.OK(map[string]any{"code": 0}),
		}
		Expect(Create(s.Session)).To(BeTrue())
		Expect(s.API.Methods()).To(Equal([]string{"GET /vlans/?number=100", "POST /vlans/"}))
	})

	It("doesn't create an existing vlan", func() {
		s := moduletest.NewSession(d42.Params{"number": "100"}, nil, true)
		s.API.Default = moduletest.OK(map[string]any{"vlans": []any{map[string]any{"number": 100}}})
		Expect(Create(s.Session)).To(BeFalse())
		Expect(s.ErrorMessages()).To(Equal([]string{"An existing vlan matched this create request"}))
		Expect(s.Errors.FinalExitStatus()).To(Equal(135))
	})

	It("updates an existing vlan by its id", func() {
		s := moduletest.NewSession(d42.Params{"id": "5", "name": "lab"}, nil, true)
		s.API.Results = []d42.Result{
			moduletest.OK(map[string]any{"vlans": []any{map[string]any{"vlan_id": 5}}}),
			moduletest.OK(map[string]any{"code": 0}),
		}
		Expect(Update(s.Session)).To(BeTrue())
		Expect(s.API.Methods()).To(Equal([]string{"GET /vlans/?vlan_id=5", "POST /vlans/5/"}))
		Expect(s.API.Calls[1].Body).To(Equal(d42.Params{"name": "lab"}))
		Expect(s.Params).To(HaveKey("id"))
	})

	It("doesn't update a missing vlan", func() {
		s := moduletest.NewSession(d42.Params{"id": "5"}, nil, true)
		s.API.Default = moduletest.OK(map[string]any{"vlans": []any{}})
		Expect(Update(s.Session)).To(BeFalse())
		Expect(s.API.Calls).To(HaveLen(1))
	})

	It("searches, gets, and deletes", func() {
		s := moduletest.NewSession(d42.Params{"vlan_id": "5"}, nil, true)
		s.API.Default = moduletest.OK(map[string]any{})
		Expect(Search(s.Session)).To(BeTrue())
		Expect(Get(s.Session)).To(BeTrue())
		Expect(Delete(s.Session)).To(BeTrue())
		Expect(s.API.Methods()).To(Equal([]string{
			"GET /vlans/?vlan_id=5",
			"GET /vlans/5/",
			"DELETE /vlans/5/",
		}))
	})

	It("doesn't delete when declined", func() {
		s := moduletest.NewSession(d42.Params{"vlan_id": "5"}, nil, false)
		Expect(Delete(s.Session)).To(BeFalse())
		Expect(s.Errors.FinalExitStatus()).To(Equal(139))
	})

})
