// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"
)

var _ = Describe("options", func() {

	var cmd *cobra.Command
	var opts *Options
	var env map[string]string

	BeforeEach(func() {
		cmd = &cobra.Command{Use: "d42", RunE: func(*cobra.Command, []string) error { return nil }}
		env = map[string]string{}
		opts = NewOptions(cmd, func(name string) string { return env[name] })
	})

	parse := func(args ...string) error {
		GinkgoHelper()
		cmd.SetArgs(args)
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return cmd.Execute()
	}

	It("creates each group only once", func() {
		g := opts.Group("global")
		Expect(opts.Group("global")).To(BeIdenticalTo(g))
		opts.Group("misc")
		opts.Group("global")
		groups := opts.Groups()
		Expect(groups).To(HaveLen(2))
		Expect(groups[0].Name()).To(Equal("global"))
		Expect(groups[1].Name()).To(Equal("misc"))
	})

	DescribeTable("rejecting malformed definitions",
		func(opt Option) {
			Expect(opts.Add("global", opt)).To(MatchError(ErrInvalidOption))
		},
		Entry("empty long name", Option{Kind: Bool}),
		Entry("dashed long name", Option{Long: "--foo", Kind: Bool}),
		Entry("spaced long name", Option{Long: "foo bar", Kind: Bool}),
		Entry("multi-letter shorthand", Option{Long: "search-devices", Short: "sd", Kind: Bool}),
		Entry("non-letter shorthand", Option{Long: "foo", Short: "1", Kind: Bool}),
		Entry("choice without choices", Option{Long: "out", Kind: Choice}),
		Entry("choice with bad default", Option{Long: "out", Kind: Choice, Choices: []string{"json"}, Default: "xml"}),
		Entry("const without constant", Option{Long: "get-device", Kind: Const}),
		Entry("bool with bad default", Option{Long: "yes", Kind: Bool, Default: "maybe"}),
		Entry("unknown kind", Option{Long: "foo", Kind: Kind(42)}),
	)

	It("rejects colliding names and destinations", func() {
		Expect(opts.Add("global", Option{Long: "params", Kind: String})).To(Succeed())
		Expect(opts.Add("misc", Option{Long: "params", Kind: String})).To(MatchError(ErrInvalidOption))
		Expect(opts.Add("misc", Option{Long: "yes", Short: "y", Kind: Bool})).To(Succeed())
		Expect(opts.Add("misc", Option{Long: "yay", Short: "y", Kind: Bool})).To(MatchError(ErrInvalidOption))
		Expect(opts.Add("misc", Option{Long: "blob", Dest: "params", Kind: String})).To(MatchError(ErrInvalidOption))
		Expect(opts.Add("operations", Option{Long: "a", Dest: "op", Kind: Const, Const: "x.a"})).To(Succeed())
		Expect(opts.Add("operations", Option{Long: "b", Dest: "op", Kind: Const, Const: "x.b"})).To(Succeed())
		Expect(opts.Add("operations", Option{Long: "c", Dest: "op", Kind: String})).To(MatchError(ErrInvalidOption))
	})

	It("resolves all kinds of options", func() {
		Expect(opts.Add("global", Option{Long: "params", Kind: String})).To(Succeed())
		Expect(opts.Add("global", Option{Long: "prm", Short: "p", Kind: Append})).To(Succeed())
		Expect(opts.Add("global", Option{Long: "out", Kind: Choice, Choices: []string{"json", "yaml"}, Default: "json"})).To(Succeed())
		Expect(opts.Add("misc", Option{Long: "yes", Short: "y", Kind: Bool})).To(Succeed())
		Expect(opts.Add("misc", Option{Long: "insecure", Short: "k", Kind: Bool})).To(Succeed())
		Expect(opts.Add("operations", Option{Long: "get-device", Dest: OperationDest, Kind: Const, Const: "device.get"})).To(Succeed())
		Expect(opts.Add("operations", Option{Long: "delete-device", Dest: OperationDest, Kind: Const, Const: "device.delete"})).To(Succeed())

		Expect(parse("--params", `{"a":1}`, "-p", "a=2", "--prm", "b=x=y", "-y",
			"--out", "yaml", "--get-device")).To(Succeed())
		r := opts.Resolve()
		Expect(opts.Resolve()).To(BeIdenticalTo(r))
		Expect(r.String("params")).To(Equal(`{"a":1}`))
		Expect(r.Strings("prm")).To(Equal([]string{"a=2", "b=x=y"}))
		Expect(r.String("out")).To(Equal("yaml"))
		Expect(r.Changed("out")).To(BeTrue())
		Expect(r.Bool("yes")).To(BeTrue())
		Expect(r.Bool("insecure")).To(BeFalse())
		Expect(r.Has("insecure")).To(BeFalse())
		Expect(r.Operation()).To(Equal("device.get"))
		Expect(r.Changed(OperationDest)).To(BeTrue())
		Expect(r.Has("nonexisting")).To(BeFalse())
	})

	It("leaves the operation unset when no operation flag is given", func() {
		Expect(opts.Add("operations", Option{Long: "get-device", Dest: OperationDest, Kind: Const, Const: "device.get"})).To(Succeed())
		Expect(parse()).To(Succeed())
		Expect(opts.Resolve().Operation()).To(BeEmpty())
	})

	It("rejects invalid choices while parsing", func() {
		Expect(opts.Add("global", Option{Long: "out", Kind: Choice, Choices: []string{"json", "yaml"}, Default: "json"})).To(Succeed())
		Expect(parse("--out", "xml")).To(MatchError(ContainSubstring("invalid choice")))
	})

	It("takes defaults from the environment", func() {
		env["D42_API_URL"] = "https://cmdb.example.com"
		env["D42_OUT"] = "xml"
		Expect(opts.Add("global", Option{Long: "d42-url", Kind: String, Env: "D42_API_URL"})).To(Succeed())
		Expect(opts.Add("global", Option{Long: "out", Kind: Choice, Choices: []string{"json"}, Default: "json", Env: "D42_OUT"})).To(Succeed())
		Expect(parse()).To(Succeed())
		r := opts.Resolve()
		Expect(r.String("d42_url")).To(Equal("https://cmdb.example.com"))
		Expect(r.Changed("d42_url")).To(BeFalse())
		Expect(r.String("out")).To(Equal("json"))
	})

	It("refuses options after parsing", func() {
		Expect(parse()).To(Succeed())
		opts.Resolve()
		Expect(opts.Add("global", Option{Long: "late", Kind: Bool})).To(MatchError(ErrInvalidOption))
	})

	It("annotates operation flags as mutually exclusive", func() {
		Expect(opts.Add("operations", Option{Long: "get-device", Dest: OperationDest, Kind: Const, Const: "device.get"})).To(Succeed())
		Expect(opts.Add("operations", Option{Long: "get-ip", Dest: OperationDest, Kind: Const, Const: "ipaddr.get"})).To(Succeed())
		Expect(cmd.Flags().Lookup("get-ip").Annotations).To(
			HaveKeyWithValue(MutualFlagGroupAnnotation, []string{OperationDest}))
		MarkMutuallyExclusive(cmd)
		Expect(parse("--get-device", "--get-ip")).To(MatchError(ContainSubstring("none of the others can be")))
	})

	It("lists options group by group", func() {
		Expect(opts.Add("global", Option{Long: "d42-url", Kind: String, Metavar: "URL", Usage: "API URL", Env: "D42_API_URL"})).To(Succeed())
		Expect(opts.Add("misc", Option{Long: "yes", Short: "y", Kind: Bool, Usage: "assume yes"})).To(Succeed())
		opts.Group("operations")
		var buff bytes.Buffer
		opts.Usage(&buff)
		Expect(buff.String()).To(MatchRegexp(`(?s)Global options:\n\s+--d42-url URL\s+API URL \[\$D42_API_URL\].*Misc options:\n\s+-y, --yes\s+assume yes`))
		Expect(buff.String()).NotTo(ContainSubstring("Operations options"))
	})

	Context("module hooks", func() {

		It("invokes each contributor once in load order", func() {
			calls := []string{}
			hook := func(name string) func(*Options) error {
				return func(o *Options) error {
					calls = append(calls, name)
					return o.Add(OperationsGroup, Option{
						Long: "op-" + name, Dest: OperationDest, Kind: Const, Const: Operation(name, "op")})
				}
			}
			mods := LoadModules(Catalog{
				"b":    func() (Module, error) { return &testModule{name: "b", register: hook("b")}, nil },
				"a":    func() (Module, error) { return &testModule{name: "a", register: hook("a")}, nil },
				"bare": func() (Module, error) { return bareModule{name: "bare"}, nil },
			}, []string{"b", "bare", "a"})
			Expect(opts.InvokeModuleHooks(mods)).To(Succeed())
			Expect(calls).To(Equal([]string{"b", "a"}))
			Expect(cmd.Flags().Lookup("op-a")).NotTo(BeNil())
		})

		It("reports failing and panicking hooks", func() {
			boom := errors.New("boom")
			mods := LoadModules(Catalog{
				"bad": func() (Module, error) {
					return &testModule{name: "bad", register: func(*Options) error { return boom }}, nil
				},
			}, []string{"bad"})
			err := opts.InvokeModuleHooks(mods)
			var herr *HookError
			Expect(errors.As(err, &herr)).To(BeTrue())
			Expect(herr.Module).To(Equal("bad"))
			Expect(err).To(MatchError(boom))

			mods = LoadModules(Catalog{
				"panicky": func() (Module, error) {
					return &testModule{name: "panicky", register: func(*Options) error { panic("ouch") }}, nil
				},
			}, []string{"panicky"})
			err = opts.InvokeModuleHooks(mods)
			Expect(errors.As(err, &herr)).To(BeTrue())
			Expect(herr.Module).To(Equal("panicky"))
			Expect(err.Error()).To(ContainSubstring("ouch"))
		})

	})

})
