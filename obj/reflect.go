package obj

import (
	"fmt"
	"reflect"
)

// ReflectClassOption configures NewReflectClass.
type ReflectClassOption func(*reflectClassConfig)

type reflectClassConfig struct {
	getters map[string]struct{}
}

// WithGetters marks the named zero-argument methods to be installed as
// getter accessors instead of plain methods.
func WithGetters(names ...string) ReflectClassOption {
	return func(cfg *reflectClassConfig) {
		for _, name := range names {
			cfg.getters[name] = struct{}{}
		}
	}
}

// NewReflectClass lifts the exported method set of a Go value into a class.
// Each method becomes a non-enumerable prototype member that invokes the Go
// method through reflection, bound to the given value. The value must be a
// struct or a pointer to one.
func NewReflectClass(v any, opts ...ReflectClassOption) *Class {
	rv := reflect.ValueOf(v)
	rt := rv.Type()
	base := baseType(rt)
	if base.Kind() != reflect.Struct {
		panic(fmt.Sprintf("reflect class only supports struct types but got %s", rt))
	}

	cfg := &reflectClassConfig{getters: make(map[string]struct{})}
	for _, opt := range opts {
		opt(cfg)
	}

	c := NewClass(base.Name())
	for i := 0; i < rt.NumMethod(); i++ {
		m := rt.Method(i)
		mv := rv.Method(i)

		if _, ok := cfg.getters[m.Name]; ok {
			c.Getter(m.Name, reflectGetter(m.Name, mv))
			continue
		}
		c.Method(m.Name, reflectMethod(mv))
	}

	return c
}

func baseType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

func reflectGetter(name string, mv reflect.Value) func() any {
	mt := mv.Type()
	if mt.NumIn() != 0 || mt.NumOut() == 0 {
		panic(fmt.Sprintf("getter method %s must take no arguments and return a value", name))
	}

	return func() any {
		return mv.Call(nil)[0].Interface()
	}
}

func reflectMethod(mv reflect.Value) Fn {
	mt := mv.Type()

	return func(args ...any) any {
		in := make([]reflect.Value, len(args))
		for i, arg := range args {
			if arg == nil {
				in[i] = reflect.Zero(paramType(mt, i))
				continue
			}
			in[i] = reflect.ValueOf(arg)
		}

		out := mv.Call(in)
		if len(out) == 0 {
			return nil
		}
		return out[0].Interface()
	}
}

func paramType(mt reflect.Type, i int) reflect.Type {
	if mt.IsVariadic() && i >= mt.NumIn()-1 {
		return mt.In(mt.NumIn() - 1).Elem()
	}
	return mt.In(i)
}
