// Package bridge wires the deferred binder into a statetree hook table so
// that action and view providers may return class-shaped values instead of
// plain records, and adds a createStore convenience entry point.
package bridge

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/protoless/protoless"
	"github.com/protoless/protoless/obj"
	"github.com/protoless/protoless/statetree"
)

// CreateStoreExtra is the name under which the createStore entry point is
// registered on the hook table. Its presence doubles as the guard against
// installing twice.
const CreateStoreExtra = "createStore"

// CreateStoreFunc is the signature of the createStore entry point.
type CreateStoreFunc func(m *statetree.Model, initial map[string]any) (*StoreBundle, error)

// Install patches the hook table: providers passed to Actions and Views are
// routed through the deferred binder before the builder records them, and the
// createStore entry point is registered. Install must run before models are
// built with h; running it again is a no-op.
func Install(h *statetree.Hooks) {
	if h.Extra(CreateStoreExtra) != nil {
		return
	}

	h.WrapActions = wrapProvider
	h.WrapViews = wrapProvider
	h.SetExtra(CreateStoreExtra, CreateStoreFunc(CreateStore))
}

func wrapProvider(p statetree.RecordProvider) statetree.RecordProvider {
	bound := protoless.Bind(func(ctx any) any {
		return p(ctx.(*obj.Object))
	})

	return func(self *obj.Object) any {
		return bound(self)
	}
}

// Store is a handle on an instantiated model.
type Store struct {
	id   uuid.UUID
	inst *statetree.Instance
}

// ID returns the store's unique id.
func (s *Store) ID() uuid.UUID {
	return s.id
}

// Instance returns the underlying model instance.
func (s *Store) Instance() *statetree.Instance {
	return s.inst
}

// Snapshot returns the current data snapshot of the store.
func (s *Store) Snapshot() map[string]any {
	return s.inst.Snapshot()
}

// StoreBundle is the result of createStore: the model definition, the live
// state object and the store handle.
type StoreBundle struct {
	Model *statetree.Model
	State *obj.Object
	Store *Store
}

// CreateStore instantiates the model, optionally from initial data, and
// returns the bundle of model, state and store handle.
func CreateStore(m *statetree.Model, initial map[string]any) (*StoreBundle, error) {
	inst, err := m.Instantiate(initial)
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate model %q: %w", m.Name(), err)
	}

	return &StoreBundle{
		Model: m,
		State: inst.State(),
		Store: &Store{id: uuid.New(), inst: inst},
	}, nil
}
