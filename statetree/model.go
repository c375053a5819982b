// Package statetree provides a small reactive-model builder: a Model collects
// record providers for actions and views and instantiates state objects that
// carry the data as enumerable properties and the behavior as non-enumerable
// ones. Providers yield records of callables and getters; how those records
// are authored is the caller's concern (see the bridge package for accepting
// class-shaped providers).
package statetree

import (
	"fmt"
	"maps"
	"slices"

	"github.com/protoless/protoless/obj"
)

// RecordProvider produces a record of actions or views for a model instance.
// It receives the instance's state object so that the returned members can
// capture it.
type RecordProvider func(self *obj.Object) any

// Model is a buildable model type: a named collection of action and view
// providers.
type Model struct {
	name    string
	actions []RecordProvider
	views   []RecordProvider
	hooks   *Hooks
}

// New creates a new model using the default hook table.
func New(name string, opts ...func(*Model)) *Model {
	m := &Model{
		name:  name,
		hooks: DefaultHooks,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// WithHooks sets the hook table for the model.
func WithHooks(h *Hooks) func(*Model) {
	return func(m *Model) {
		m.hooks = h
	}
}

// Name returns the model name.
func (m *Model) Name() string {
	return m.name
}

// Hooks returns the model's hook table.
func (m *Model) Hooks() *Hooks {
	return m.hooks
}

// Actions registers a provider of action callables and returns the model for
// chaining.
func (m *Model) Actions(p RecordProvider) *Model {
	if wrap := m.hooks.WrapActions; wrap != nil {
		p = wrap(p)
	}
	m.actions = append(m.actions, p)
	return m
}

// Views registers a provider of view getters and returns the model for
// chaining.
func (m *Model) Views(p RecordProvider) *Model {
	if wrap := m.hooks.WrapViews; wrap != nil {
		p = wrap(p)
	}
	m.views = append(m.views, p)
	return m
}

// Instantiate creates an instance of the model. Initial data becomes
// enumerable value properties on the state object; every view and action
// provider then runs against it and its record members are attached
// non-enumerably, so snapshots only see data.
func (m *Model) Instantiate(initial map[string]any) (*Instance, error) {
	state := obj.New()
	for _, k := range slices.Sorted(maps.Keys(initial)) {
		state.Put(k, initial[k])
	}

	for _, p := range m.views {
		if err := m.attach(state, p, "views"); err != nil {
			return nil, err
		}
	}
	for _, p := range m.actions {
		if err := m.attach(state, p, "actions"); err != nil {
			return nil, err
		}
	}

	return &Instance{model: m, state: state}, nil
}

func (m *Model) attach(state *obj.Object, p RecordProvider, kind string) error {
	res := p(state)
	rec, ok := res.(*obj.Object)
	if !ok {
		return fmt.Errorf("%s provider of model %q must yield a record, got %T", kind, m.name, res)
	}

	for name, d := range rec.Own() {
		if !d.Enumerable {
			continue
		}
		d.Enumerable = false
		if err := state.Define(name, d); err != nil {
			return fmt.Errorf("failed to attach %s member %q on model %q: %w", kind, name, m.name, err)
		}
	}

	return nil
}
