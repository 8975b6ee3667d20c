// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/exp/slices"
)

// Names of the option groups always present.
const (
	GlobalGroup     = "global"
	MiscGroup       = "misc"
	OperationsGroup = "operations"
)

// OperationDest is the destination shared by all operation selector flags.
const OperationDest = "operation"

// MutualFlagGroupAnnotation is the flag annotation for grouping mutually
// exclusive flags. Flags with the same annotation value get marked as mutually
// exclusive on the root command.
const MutualFlagGroupAnnotation = "mutually-exclusive-group"

// Kind of an option, that is, how its value is parsed and stored.
type Kind int

// Option kinds.
const (
	Bool   Kind = iota // flag without argument, true when given
	String             // single string argument, last one wins
	Append             // string argument that may be given repeatedly
	Choice             // string argument restricted to a set of choices
	Const              // flag without argument storing a constant
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case String:
		return "string"
	case Append:
		return "append"
	case Choice:
		return "choice"
	case Const:
		return "const"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Option defines a single command line option.
type Option struct {
	Long    string   // long name without leading dashes
	Short   string   // optional single-letter shorthand
	Dest    string   // destination key; defaults to Long with "-" replaced by "_"
	Usage   string   // help text
	Metavar string   // name of the argument shown in the help
	Kind    Kind     // how to parse and store the value
	Choices []string // allowed values of a Choice option
	Const   string   // constant stored by a Const option
	Default string   // default value (Bool: "true" or "false")
	Env     string   // environment variable overriding the default, if set
}

// ErrInvalidOption is returned (wrapped) for malformed or colliding option
// definitions.
var ErrInvalidOption = errors.New("invalid option definition")

// Group is a named collection of options, shown together in the help.
type Group struct {
	name  string
	flags *pflag.FlagSet
}

// Name returns the name of the group.
func (g *Group) Name() string { return g.name }

// Flags returns the flags belonging to this group, in order of registration.
func (g *Group) Flags() *pflag.FlagSet { return g.flags }

// destination keeps track of the flags writing to the same destination key.
type destination struct {
	kind   Kind
	value  func() any
	target *string // shared by Const options
	flags  []*pflag.Flag
}

// Options registers command line options in named groups on a cobra command
// and finally resolves the parsed flags into their destinations.
type Options struct {
	cmd      *cobra.Command
	groups   []*Group
	dests    map[string]*destination
	order    []string
	getenv   func(string) string
	resolved *Resolved
}

// NewOptions returns an empty option registry for the specified command. The
// getenv function is used to look up environment variables providing option
// defaults; nil means os.Getenv.
func NewOptions(cmd *cobra.Command, getenv func(string) string) *Options {
	if getenv == nil {
		getenv = os.Getenv
	}
	return &Options{
		cmd:    cmd,
		dests:  map[string]*destination{},
		getenv: getenv,
	}
}

// Command returns the command the options are registered with.
func (o *Options) Command() *cobra.Command { return o.cmd }

// Group returns the named group, creating it if necessary. Asking for the same
// name always returns the same group.
func (o *Options) Group(name string) *Group {
	for _, g := range o.groups {
		if g.name == name {
			return g
		}
	}
	g := &Group{name: name, flags: pflag.NewFlagSet(name, pflag.ContinueOnError)}
	g.flags.SortFlags = false
	o.groups = append(o.groups, g)
	return g
}

// Groups returns all groups in order of their creation.
func (o *Options) Groups() []*Group { return slices.Clone(o.groups) }

// Add validates the option definition and registers it in the named group as
// well as on the command.
func (o *Options) Add(group string, opt Option) error {
	if o.resolved != nil {
		return fmt.Errorf("%w: option %q added after parsing", ErrInvalidOption, opt.Long)
	}
	if err := o.validate(&opt); err != nil {
		return err
	}
	if opt.Env != "" {
		if val := o.getenv(opt.Env); val != "" {
			_, err := parseBool(val)
			switch {
			case opt.Kind == Bool && err != nil,
				opt.Kind == Choice && !slices.Contains(opt.Choices, val):
				log.Warnf("ignoring invalid value %q of $%s", val, opt.Env)
			default:
				opt.Default = val
			}
		}
	}
	g := o.Group(group)
	dest := o.dests[opt.Dest]
	if dest == nil {
		dest = &destination{kind: opt.Kind}
		o.dests[opt.Dest] = dest
		o.order = append(o.order, opt.Dest)
	}

	usage := opt.Usage
	if opt.Env != "" {
		usage += " [$" + opt.Env + "]"
	}
	fs := g.flags
	switch opt.Kind {
	case Bool:
		def, _ := parseBool(opt.Default)
		p := new(bool)
		fs.BoolVarP(p, opt.Long, opt.Short, def, usage)
		dest.value = func() any { return *p }
	case String:
		v := &stringValue{val: opt.Default, typ: metavar(opt, "string")}
		fs.VarP(v, opt.Long, opt.Short, usage)
		dest.value = func() any { return v.val }
	case Append:
		v := &appendValue{typ: metavar(opt, "stringArray")}
		if opt.Default != "" {
			v.vals = []string{opt.Default}
		}
		fs.VarP(v, opt.Long, opt.Short, usage)
		dest.value = func() any { return slices.Clone(v.vals) }
	case Choice:
		v := &choiceValue{val: opt.Default, choices: slices.Clone(opt.Choices), typ: metavar(opt, "choice")}
		fs.VarP(v, opt.Long, opt.Short,
			fmt.Sprintf("%s (choices: %s)", usage, strings.Join(opt.Choices, ", ")))
		dest.value = func() any { return v.val }
	case Const:
		if dest.target == nil {
			dest.target = new(string)
			dest.value = constGetter(dest.target)
		}
		v := &constValue{target: dest.target, constant: opt.Const}
		fs.VarP(v, opt.Long, opt.Short, usage)
		fs.Lookup(opt.Long).NoOptDefVal = "true"
	}
	flag := fs.Lookup(opt.Long)
	dest.flags = append(dest.flags, flag)
	if opt.Kind == Const {
		_ = fs.SetAnnotation(opt.Long, MutualFlagGroupAnnotation, []string{opt.Dest})
	}
	o.cmd.Flags().AddFlag(flag)
	log.Debugf("registered option --%s in group %q", opt.Long, group)
	return nil
}

// validate checks the option definition on its own as well as against the
// options registered so far; it also fills in a missing destination.
func (o *Options) validate(opt *Option) error {
	if opt.Long == "" || strings.HasPrefix(opt.Long, "-") || strings.ContainsAny(opt.Long, " \t=") {
		return fmt.Errorf("%w: malformed long name %q", ErrInvalidOption, opt.Long)
	}
	if len(opt.Short) > 1 || (opt.Short != "" && !isLetter(opt.Short[0])) {
		return fmt.Errorf("%w: option %q: shorthand %q must be a single letter",
			ErrInvalidOption, opt.Long, opt.Short)
	}
	if opt.Dest == "" {
		opt.Dest = strings.ReplaceAll(opt.Long, "-", "_")
	}
	switch opt.Kind {
	case String, Append:
	case Bool:
		if _, err := parseBool(opt.Default); err != nil {
			return fmt.Errorf("%w: option %q: invalid default %q", ErrInvalidOption, opt.Long, opt.Default)
		}
	case Choice:
		if len(opt.Choices) == 0 {
			return fmt.Errorf("%w: choice option %q without choices", ErrInvalidOption, opt.Long)
		}
		if opt.Default != "" && !slices.Contains(opt.Choices, opt.Default) {
			return fmt.Errorf("%w: option %q: default %q is not a choice",
				ErrInvalidOption, opt.Long, opt.Default)
		}
	case Const:
		if opt.Const == "" {
			return fmt.Errorf("%w: const option %q without constant", ErrInvalidOption, opt.Long)
		}
	default:
		return fmt.Errorf("%w: option %q has unknown kind %s", ErrInvalidOption, opt.Long, opt.Kind)
	}
	if o.cmd.Flags().Lookup(opt.Long) != nil {
		return fmt.Errorf("%w: option %q already registered", ErrInvalidOption, opt.Long)
	}
	if opt.Short != "" && o.cmd.Flags().ShorthandLookup(opt.Short) != nil {
		return fmt.Errorf("%w: option %q: shorthand -%s already registered",
			ErrInvalidOption, opt.Long, opt.Short)
	}
	if dest, ok := o.dests[opt.Dest]; ok && (dest.kind != Const || opt.Kind != Const) {
		return fmt.Errorf("%w: option %q: destination %q already in use",
			ErrInvalidOption, opt.Long, opt.Dest)
	}
	return nil
}

// Resolve returns the values of all options after the command line has been
// parsed. The values are collected only once; later calls return the same
// result.
func (o *Options) Resolve() *Resolved {
	if o.resolved != nil {
		return o.resolved
	}
	r := &Resolved{values: map[string]any{}, changed: map[string]bool{}}
	for _, name := range o.order {
		dest := o.dests[name]
		r.values[name] = dest.value()
		for _, flag := range dest.flags {
			if flag.Changed {
				r.changed[name] = true
			}
		}
	}
	o.resolved = r
	return r
}

// Usage writes the options group by group to w.
func (o *Options) Usage(w io.Writer) {
	for _, g := range o.groups {
		if !g.flags.HasFlags() {
			continue
		}
		fmt.Fprintf(w, "\n%s options:\n%s", titled(g.name), g.flags.FlagUsages())
	}
}

// HookError reports a module whose option registration failed.
type HookError struct {
	Module string
	Err    error
}

func (e *HookError) Error() string {
	return fmt.Sprintf("module %q failed to register its options: %s", e.Module, e.Err.Error())
}

func (e *HookError) Unwrap() error { return e.Err }

// InvokeModuleHooks lets each loaded module register its options, exactly
// once and in load order. The first failing (or panicking) module aborts with
// a HookError.
func (o *Options) InvokeModuleHooks(mods *Modules) error {
	for _, mod := range mods.All() {
		contrib, ok := mod.(OptionContributor)
		if !ok {
			continue
		}
		if err := invokeHook(contrib, o); err != nil {
			return &HookError{Module: mod.Name(), Err: err}
		}
	}
	return nil
}

func invokeHook(contrib OptionContributor, o *Options) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return contrib.RegisterOptions(o)
}

// Resolved holds the final option values by destination key.
type Resolved struct {
	values  map[string]any
	changed map[string]bool
}

// String returns the value of a String or Choice option, or the constant of
// the Const option given; otherwise "".
func (r *Resolved) String(dest string) string {
	s, _ := r.values[dest].(string)
	return s
}

// Bool returns the value of a Bool option.
func (r *Resolved) Bool(dest string) bool {
	b, _ := r.values[dest].(bool)
	return b
}

// Strings returns the values of an Append option in command line order.
func (r *Resolved) Strings(dest string) []string {
	s, _ := r.values[dest].([]string)
	return slices.Clone(s)
}

// Has reports whether dest has a non-zero value.
func (r *Resolved) Has(dest string) bool {
	switch v := r.values[dest].(type) {
	case string:
		return v != ""
	case bool:
		return v
	case []string:
		return len(v) > 0
	}
	return false
}

// Changed reports whether any flag for dest was given on the command line.
func (r *Resolved) Changed(dest string) bool { return r.changed[dest] }

// Operation returns the selected operation token in "module.handler" form,
// or "" if no operation was selected.
func (r *Resolved) Operation() string { return r.String(OperationDest) }

func constGetter(target *string) func() any {
	return func() any { return *target }
}

func metavar(opt Option, def string) string {
	if opt.Metavar != "" {
		return opt.Metavar
	}
	return def
}

func parseBool(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func titled(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

type stringValue struct {
	val string
	typ string
}

func (v *stringValue) String() string     { return v.val }
func (v *stringValue) Set(s string) error { v.val = s; return nil }
func (v *stringValue) Type() string       { return v.typ }

// appendValue collects all arguments; the first one given replaces any
// default.
type appendValue struct {
	vals    []string
	changed bool
	typ     string
}

func (v *appendValue) String() string {
	if len(v.vals) == 0 {
		return "[]"
	}
	return "[" + strings.Join(v.vals, ",") + "]"
}

func (v *appendValue) Set(s string) error {
	if !v.changed {
		v.vals = nil
		v.changed = true
	}
	v.vals = append(v.vals, s)
	return nil
}

func (v *appendValue) Type() string { return v.typ }

type choiceValue struct {
	val     string
	choices []string
	typ     string
}

func (v *choiceValue) String() string { return v.val }

func (v *choiceValue) Set(s string) error {
	if !slices.Contains(v.choices, s) {
		return fmt.Errorf("invalid choice %q (choose from %s)", s, strings.Join(v.choices, ", "))
	}
	v.val = s
	return nil
}

func (v *choiceValue) Type() string { return v.typ }

// constValue stores its constant into a destination possibly shared with
// other const flags.
type constValue struct {
	target   *string
	constant string
}

func (v *constValue) String() string {
	return strconv.FormatBool(*v.target == v.constant)
}

func (v *constValue) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	switch {
	case on:
		*v.target = v.constant
	case *v.target == v.constant:
		*v.target = ""
	}
	return nil
}

func (v *constValue) Type() string { return "bool" }

// MarkMutuallyExclusive starts with the specified command and collects
// mutually exclusive flags as identified by their annotations. It then
// configures them into their groups. This process then recursively repeats
// with each child command.
func MarkMutuallyExclusive(cmd *cobra.Command) {
	exclusives := map[string][]string{}
	groups := []string{}
	cmd.MarkFlagsMutuallyExclusive() // hack: trigger merging if not already happened
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		group := flag.Annotations[MutualFlagGroupAnnotation]
		if len(group) != 1 {
			return
		}
		members, ok := exclusives[group[0]]
		if !ok {
			groups = append(groups, group[0])
		}
		if slices.Contains(members, flag.Name) {
			return
		}
		exclusives[group[0]] = append(members, flag.Name)
	})
	for _, group := range groups {
		if len(exclusives[group]) > 1 {
			cmd.MarkFlagsMutuallyExclusive(exclusives[group]...)
		}
	}
	for _, subcmd := range cmd.Commands() {
		MarkMutuallyExclusive(subcmd)
	}
}

// NewResolved returns resolved options with the specified values, as if they
// had been given on the command line; for instance, to run handlers outside
// the d42 command.
func NewResolved(values map[string]any) *Resolved {
	r := &Resolved{values: map[string]any{}, changed: map[string]bool{}}
	for dest, val := range values {
		r.values[dest] = val
		r.changed[dest] = true
	}
	return r
}
