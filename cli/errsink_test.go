// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"errors"
	"io"

	"github.com/d42-tools/d42/output"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("error sink", func() {

	It("exits with the last recorded status", func() {
		sink := NewErrorSink(nil)
		Expect(sink.FinalExitStatus()).To(BeZero())
		Expect(sink.Record("m1", 10, nil)).To(Succeed())
		Expect(sink.Record("m2", 20, nil)).To(Succeed())
		Expect(sink.FinalExitStatus()).To(Equal(20))
		Expect(sink.Records()).To(HaveLen(2))
	})

	It("renders each record as it is recorded", func() {
		var buff bytes.Buffer
		out := output.New(&buff)
		Expect(out.SetFormat(output.JSON)).To(Succeed())
		sink := NewErrorSink(out)
		Expect(sink.Record("Device does not exist.", 111, map[string]any{"name": "web01"})).To(Succeed())
		Expect(buff.String()).To(MatchJSON(
			`{"error":"Device does not exist.","exit_status":111,"blob":{"name":"web01"}}`))
	})

	It("keeps the record even when rendering fails", func() {
		var buff bytes.Buffer
		out := output.New(&buff)
		out.Register(output.JSON, output.PrinterFunc(func(w io.Writer, data any) error {
			return errors.New("boom")
		}), true)
		Expect(out.SetFormat(output.JSON)).To(Succeed())
		sink := NewErrorSink(out)
		Expect(sink.Record("m", 42, nil)).To(MatchError(ContainSubstring("boom")))
		Expect(sink.FinalExitStatus()).To(Equal(42))
	})

})
