package statetree

import (
	"fmt"
	"maps"
	"slices"

	"github.com/protoless/protoless/obj"
)

// Instance is a live model instance: a state object carrying data, actions
// and views.
type Instance struct {
	model *Model
	state *obj.Object
}

// Model returns the model the instance was built from.
func (i *Instance) Model() *Model {
	return i.model
}

// State returns the instance's state object.
func (i *Instance) State() *obj.Object {
	return i.state
}

// Snapshot returns the instance's data as a plain map: the own enumerable
// value properties of the state object. Actions and views are attached
// non-enumerably and computed views are accessors, so neither shows up.
func (i *Instance) Snapshot() map[string]any {
	snap := make(map[string]any)
	for name, d := range i.state.Own() {
		if !d.Enumerable || d.IsAccessor() {
			continue
		}
		snap[name] = d.Value
	}

	return snap
}

// Apply writes the given snapshot data onto the instance's state object.
func (i *Instance) Apply(snap map[string]any) error {
	for _, k := range slices.Sorted(maps.Keys(snap)) {
		if err := i.state.Set(k, snap[k]); err != nil {
			return fmt.Errorf("failed to apply snapshot key %q: %w", k, err)
		}
	}

	return nil
}
