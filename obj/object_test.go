package obj_test

import (
	"testing"

	"github.com/protoless/protoless/obj"
	"github.com/stretchr/testify/require"
)

func TestObject(t *testing.T) {
	t.Run("GetSet", func(t *testing.T) {
		o := obj.New()
		require.True(t, obj.IsUndefined(o.Get("foo")))

		require.NoError(t, o.Set("foo", 42))
		require.Equal(t, 42, o.Get("foo"))

		d, ok := o.GetOwn("foo")
		require.True(t, ok)
		require.True(t, d.Writable)
		require.True(t, d.Enumerable)
		require.True(t, d.Configurable)
	})

	t.Run("NilValueIsNotUndefined", func(t *testing.T) {
		o := obj.New().Put("foo", nil)
		require.Nil(t, o.Get("foo"))
		require.False(t, obj.IsUndefined(o.Get("foo")))
		require.True(t, obj.IsUndefined(o.Get("bar")))
	})

	t.Run("Accessor", func(t *testing.T) {
		backing := 7
		o := obj.New().PutAccessor("n",
			func() any { return backing },
			func(v any) { backing = v.(int) },
		)

		require.Equal(t, 7, o.Get("n"))
		require.NoError(t, o.Set("n", 11))
		require.Equal(t, 11, backing)
	})

	t.Run("GetterOnly", func(t *testing.T) {
		o := obj.New().PutGetter("g", func() any { return "x" })
		require.Equal(t, "x", o.Get("g"))

		err := o.Set("g", "y")
		require.ErrorIs(t, err, obj.ErrNotWritable)
	})

	t.Run("NonWritable", func(t *testing.T) {
		o := obj.New()
		o.MustDefine("k", obj.Descriptor{Value: 1, Enumerable: true, Configurable: true})

		err := o.Set("k", 2)
		require.ErrorIs(t, err, obj.ErrNotWritable)
		require.Equal(t, 1, o.Get("k"))
	})

	t.Run("NonConfigurable", func(t *testing.T) {
		o := obj.New()
		o.MustDefine("k", obj.Descriptor{Value: 1, Writable: true})

		err := o.Define("k", obj.Descriptor{Value: 2})
		require.ErrorIs(t, err, obj.ErrNotConfigurable)

		err = o.Delete("k")
		require.ErrorIs(t, err, obj.ErrNotConfigurable)
	})

	t.Run("Delete", func(t *testing.T) {
		o := obj.New().Put("a", 1)
		require.NoError(t, o.Delete("a"))
		require.False(t, o.HasOwn("a"))
		require.NoError(t, o.Delete("a"))
	})

	t.Run("PrototypeChain", func(t *testing.T) {
		parent := obj.Blank().Put("inherited", "p")
		child := obj.NewWithProto(parent)

		require.Equal(t, "p", child.Get("inherited"))
		require.True(t, child.Has("inherited"))
		require.False(t, child.HasOwn("inherited"))

		// Assignment shadows the inherited value property.
		require.NoError(t, child.Set("inherited", "c"))
		require.Equal(t, "c", child.Get("inherited"))
		require.Equal(t, "p", parent.Get("inherited"))
	})

	t.Run("Names", func(t *testing.T) {
		o := obj.New().Put("b", 1).Put("a", 2)
		o.MustDefine("m", obj.Descriptor{Value: 3, Writable: true, Configurable: true})

		require.Equal(t, []string{"b", "a", "m"}, o.OwnPropertyNames())
		require.Equal(t, []string{"b", "a"}, o.EnumerableNames())
	})

	t.Run("Call", func(t *testing.T) {
		ctx := "moose"
		o := obj.New().PutFn("echo", func(args ...any) any {
			return ctx
		})

		v, err := o.Call("echo")
		require.NoError(t, err)
		require.Equal(t, "moose", v)

		_, err = o.Call("missing")
		require.ErrorContains(t, err, "no such property")

		o.Put("notfn", 1)
		_, err = o.Call("notfn")
		require.ErrorContains(t, err, "not callable")
	})
}

func TestBaseProto(t *testing.T) {
	t.Run("Intrinsics", func(t *testing.T) {
		o := obj.New().Put("a", 1)

		v, err := o.Call("hasOwnProperty", "a")
		require.NoError(t, err)
		require.Equal(t, true, v)

		v, err = o.Call("hasOwnProperty", "b")
		require.NoError(t, err)
		require.Equal(t, false, v)

		v, err = o.Call("toString")
		require.NoError(t, err)
		require.Equal(t, "[object Object]", v)

		v, err = o.Call("toLocaleString")
		require.NoError(t, err)
		require.Equal(t, "[object Object]", v)

		v, err = o.Call("valueOf")
		require.NoError(t, err)
		require.Same(t, o, v)

		v, err = o.Call("propertyIsEnumerable", "a")
		require.NoError(t, err)
		require.Equal(t, true, v)
	})

	t.Run("IsPrototypeOf", func(t *testing.T) {
		c := obj.NewClass("C")
		inst := c.New()

		v, err := c.Prototype().Call("isPrototypeOf", inst)
		require.NoError(t, err)
		require.Equal(t, true, v)

		v, err = c.Prototype().Call("isPrototypeOf", obj.Blank())
		require.NoError(t, err)
		require.Equal(t, false, v)
	})

	t.Run("NonEnumerable", func(t *testing.T) {
		require.Empty(t, obj.BaseProto.EnumerableNames())
		require.NotEmpty(t, obj.BaseProto.OwnPropertyNames())
	})
}
