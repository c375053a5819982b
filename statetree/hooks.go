package statetree

import "github.com/protoless/protoless/internal/ordmap"

// Hooks is the patchable surface of the model builder. Integrations may
// replace the wrap slots to pre-process record providers and register named
// extra entry points. Patching is a startup-time side effect: it must happen
// before models are built with these hooks, and no synchronization is
// provided for doing it later.
type Hooks struct {
	// WrapActions, when set, is applied to every provider passed to
	// Model.Actions before it is recorded.
	WrapActions func(RecordProvider) RecordProvider
	// WrapViews, when set, is applied to every provider passed to
	// Model.Views before it is recorded.
	WrapViews func(RecordProvider) RecordProvider

	extras *ordmap.Map[string, any]
}

// NewHooks creates an empty hook table.
func NewHooks() *Hooks {
	return &Hooks{
		extras: ordmap.New[string, any](),
	}
}

// DefaultHooks is the process-wide hook table used by models built without an
// explicit one.
var DefaultHooks = NewHooks()

// Extra returns the named extra entry point or nil.
func (h *Hooks) Extra(name string) any {
	v, ok := h.extras.Get(name)
	if !ok {
		return nil
	}
	return v
}

// SetExtra registers a named extra entry point.
func (h *Hooks) SetExtra(name string, v any) {
	h.extras.Set(name, v)
}

// ExtraNames returns the names of the registered extra entry points in
// registration order.
func (h *Hooks) ExtraNames() []string {
	return h.extras.Keys()
}
