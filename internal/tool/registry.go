package tool

import (
	"sort"

	"github.com/rescuegate/rescuegate/internal/errs"
)

// Registry is the immutable, fixed mapping from tool name to descriptor.
// Construct with NewRegistry; there is no mutation method.
type Registry struct {
	byName map[string]Descriptor
	order  []string // registration order, for stable tools/list output
}

// NewRegistry builds the fixed tool set.
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]Descriptor)}
	for _, d := range buildDescriptors(r) {
		r.byName[d.Name] = d
		r.order = append(r.order, d.Name)
	}
	return r
}

// Get looks up a tool by name.
func (r *Registry) Get(name string) (Descriptor, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// List returns every descriptor, or only the core subset when lazy is true.
// Order is the registry's fixed registration order, core tools first.
func (r *Registry) List(lazy bool) []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		d := r.byName[name]
		if lazy && d.Visibility != Core {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Names returns every registered tool name, sorted, for inspect_tool's
// no-argument listing.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.order))
	for name := range r.byName {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Describe returns the full descriptor for inspect_tool's tool_name case.
func (r *Registry) Describe(name string) (Descriptor, error) {
	d, ok := r.byName[name]
	if !ok {
		return Descriptor{}, errs.Validation("tool_name", "unknown tool %q", name)
	}
	return d, nil
}
