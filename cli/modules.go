// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/thediveo/go-plugger/v3"
	"golang.org/x/exp/slices"
)

// Catalog maps module names to their constructors.
type Catalog map[string]func() (Module, error)

// PluginCatalog returns the catalog of the modules registered in the
// ModulePlugin group, together with their names in plugin order.
func PluginCatalog() (Catalog, []string) {
	catalog := Catalog{}
	names := []string{}
	for _, symbol := range plugger.Group[ModulePlugin]().PluginsSymbols() {
		if _, ok := catalog[symbol.Plugin]; ok {
			log.Warnf("ignoring duplicate module %q", symbol.Plugin)
			continue
		}
		catalog[symbol.Plugin] = symbol.S
		names = append(names, symbol.Plugin)
	}
	return catalog, names
}

// Modules are the successfully loaded modules, together with the table of
// their operations.
type Modules struct {
	mods []Module
	ops  map[string]map[string]Handler
}

// LoadModules constructs the named modules from the catalog, in the order of
// names. Modules that are unknown or fail to construct are skipped with a
// warning. The operations of the loaded modules are indexed by module and
// handler name.
func LoadModules(catalog Catalog, names []string) *Modules {
	m := &Modules{ops: map[string]map[string]Handler{}}
	if len(names) == 0 {
		log.Info("No modules loaded")
		return m
	}
	for _, name := range names {
		mod, err := construct(catalog, name)
		if err != nil {
			log.Warnf("Unable to load module %s: %s", name, err.Error())
			continue
		}
		if _, ok := m.ops[mod.Name()]; ok {
			log.Warnf("Unable to load module %s: module %q already loaded", name, mod.Name())
			continue
		}
		ops := map[string]Handler{}
		if provider, ok := mod.(OperationProvider); ok {
			for handler, fn := range provider.Operations() {
				if fn == nil {
					continue
				}
				ops[handler] = fn
			}
		}
		m.mods = append(m.mods, mod)
		m.ops[mod.Name()] = ops
		log.Debugf("loaded module %s with %d operations", mod.Name(), len(ops))
	}
	return m
}

func construct(catalog Catalog, name string) (mod Module, err error) {
	newmod, ok := catalog[name]
	if !ok || newmod == nil {
		return nil, fmt.Errorf("no such module")
	}
	defer func() {
		if r := recover(); r != nil {
			mod = nil
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	mod, err = newmod()
	if err == nil && mod == nil {
		err = fmt.Errorf("constructor returned no module")
	}
	return
}

// All returns the loaded modules in load order.
func (m *Modules) All() []Module { return slices.Clone(m.mods) }

// Names returns the names of the loaded modules in load order.
func (m *Modules) Names() []string {
	names := make([]string, 0, len(m.mods))
	for _, mod := range m.mods {
		names = append(names, mod.Name())
	}
	return names
}

// Lookup returns the named module.
func (m *Modules) Lookup(name string) (Module, bool) {
	for _, mod := range m.mods {
		if mod.Name() == name {
			return mod, true
		}
	}
	return nil, false
}

// Handler returns the handler of the specified module operation.
func (m *Modules) Handler(module, handler string) (Handler, bool) {
	fn, ok := m.ops[module][handler]
	return fn, ok
}
