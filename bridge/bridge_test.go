package bridge_test

import (
	"reflect"
	"testing"

	"github.com/protoless/protoless/bridge"
	"github.com/protoless/protoless/obj"
	"github.com/protoless/protoless/statetree"
	"github.com/stretchr/testify/require"
)

func TestInstall(t *testing.T) {
	t.Run("ClassProviders", func(t *testing.T) {
		h := statetree.NewHooks()
		bridge.Install(h)

		calls := 0
		m := statetree.New("Counter", statetree.WithHooks(h)).
			Views(func(self *obj.Object) any {
				return obj.NewClass("CounterViews").Getter("double", func() any {
					return self.Get("count").(int) * 2
				})
			}).
			Actions(func(self *obj.Object) any {
				calls++
				return obj.NewClass("CounterActions").Method("increment", func(_ ...any) any {
					self.Set("count", self.Get("count").(int)+1)
					return nil
				})
			})

		inst, err := m.Instantiate(map[string]any{"count": 1})
		require.NoError(t, err)
		require.Equal(t, 1, calls)

		state := inst.State()
		require.Equal(t, 2, state.Get("double"))
		_, err = state.Call("increment")
		require.NoError(t, err)
		require.Equal(t, 2, state.Get("count"))

		// Class-system members never leak onto the state object.
		require.False(t, state.HasOwn("constructor"))
	})

	t.Run("RecordProvidersStillWork", func(t *testing.T) {
		h := statetree.NewHooks()
		bridge.Install(h)

		m := statetree.New("Plain", statetree.WithHooks(h)).
			Actions(func(_ *obj.Object) any {
				return obj.New().PutFn("noop", func(_ ...any) any { return nil })
			})

		inst, err := m.Instantiate(nil)
		require.NoError(t, err)
		require.True(t, inst.State().HasOwn("noop"))
	})

	t.Run("Idempotent", func(t *testing.T) {
		h := statetree.NewHooks()
		bridge.Install(h)
		require.NotNil(t, h.Extra(bridge.CreateStoreExtra))

		// A second install must leave the entry points untouched.
		sentinel := func(p statetree.RecordProvider) statetree.RecordProvider { return p }
		h.WrapActions = sentinel
		bridge.Install(h)
		require.Equal(t,
			reflect.ValueOf(sentinel).Pointer(),
			reflect.ValueOf(h.WrapActions).Pointer(),
		)

		wrapped := 0
		h.WrapActions = func(p statetree.RecordProvider) statetree.RecordProvider {
			wrapped++
			return p
		}
		statetree.New("M", statetree.WithHooks(h)).
			Actions(func(_ *obj.Object) any { return obj.New() })
		require.Equal(t, 1, wrapped)
	})
}

func TestCreateStore(t *testing.T) {
	h := statetree.NewHooks()
	bridge.Install(h)

	m := statetree.New("Counter", statetree.WithHooks(h)).
		Actions(func(self *obj.Object) any {
			return obj.NewClass("CounterActions").Method("increment", func(_ ...any) any {
				self.Set("count", self.Get("count").(int)+1)
				return nil
			})
		})

	create, ok := h.Extra(bridge.CreateStoreExtra).(bridge.CreateStoreFunc)
	require.True(t, ok)

	bundle, err := create(m, map[string]any{"count": 10})
	require.NoError(t, err)
	require.Same(t, m, bundle.Model)
	require.Same(t, bundle.Store.Instance().State(), bundle.State)
	require.NotEqual(t, [16]byte{}, [16]byte(bundle.Store.ID()))

	_, err = bundle.State.Call("increment")
	require.NoError(t, err)
	require.Equal(t, map[string]any{"count": 11}, bundle.Store.Snapshot())

	t.Run("DistinctIDs", func(t *testing.T) {
		other, err := bridge.CreateStore(m, nil)
		require.NoError(t, err)
		require.NotEqual(t, bundle.Store.ID(), other.Store.ID())
	})

	t.Run("BadModel", func(t *testing.T) {
		bad := statetree.New("Bad", statetree.WithHooks(statetree.NewHooks())).
			Actions(func(_ *obj.Object) any { return "nope" })

		_, err := bridge.CreateStore(bad, nil)
		require.ErrorContains(t, err, "failed to instantiate model")
	})
}
