// Package protoless converts class-like values into plain, prototype-less
// records whose enumerable properties mirror the class's methods and
// accessors. Authors get to write behavior with class syntax while consumers
// that enumerate record keys see every member as an own enumerable property.
package protoless

import (
	"fmt"

	"github.com/protoless/protoless/obj"
)

// NativePropertyNames lists the property names that belong to the object
// system itself rather than to user-authored code. Flatten always excludes
// them, regardless of where they were defined.
var NativePropertyNames = []string{
	"constructor",
	"toString",
	"toLocaleString",
	"valueOf",
	"hasOwnProperty",
	"isPrototypeOf",
	"propertyIsEnumerable",
}

var nativeNames = func() map[string]struct{} {
	m := make(map[string]struct{}, len(NativePropertyNames))
	for _, name := range NativePropertyNames {
		m[name] = struct{}{}
	}
	return m
}()

// Flatten copies the own properties of src onto a fresh object with no
// prototype. Non-enumerable properties (the usual shape of methods and
// accessors on a prototype) are included; names in NativePropertyNames are
// excluded. Each descriptor is copied verbatim except that it is forced to be
// enumerable, so value, getter/setter identity, writability and
// configurability are preserved. src is never mutated.
func Flatten(src *obj.Object) *obj.Object {
	rec := obj.Blank()
	for name, d := range src.Own() {
		if _, ok := nativeNames[name]; ok {
			continue
		}
		d.Enumerable = true
		rec.MustDefine(name, d)
	}

	return rec
}

// IsPlainRecord reports whether v is an object whose prototype link is either
// the base object prototype or absent. Such a value already has the flat
// record shape and needs no normalization. Any non-object value yields false.
func IsPlainRecord(v any) bool {
	o, ok := v.(*obj.Object)
	if !ok || o == nil {
		return false
	}

	return o.Proto() == nil || o.Proto() == obj.BaseProto
}

type prototyped interface {
	Prototype() *obj.Object
}

// Normalize turns a class-like value into a flat record. Plain records are
// returned unchanged (same object, no copy); anything exposing a prototype,
// such as a class, is flattened through Flatten. Any other input is a caller
// contract violation and panics.
func Normalize(v any) *obj.Object {
	if IsPlainRecord(v) {
		return v.(*obj.Object)
	}
	if c, ok := v.(prototyped); ok {
		return Flatten(c.Prototype())
	}

	panic(fmt.Sprintf("protoless: cannot normalize %T: not a plain record and no prototype", v))
}

// Provider produces a class-like value from a context value.
type Provider func(ctx any) any

// Bound is a Provider already passed through the deferred binder; invoking it
// resolves the provider with the given context and normalizes the result.
type Bound func(ctx any) *obj.Object

// Bind defers a provider: the returned Bound may be called any number of
// times with different contexts, each call invoking the provider once and
// normalizing its result.
func Bind(p Provider) Bound {
	return func(ctx any) *obj.Object {
		return Normalize(p(ctx))
	}
}

// BindWith resolves a provider immediately with the given context and
// normalizes the result. BindWith(p, ctx) is equivalent to Bind(p)(ctx).
func BindWith(p Provider, ctx any) *obj.Object {
	return Normalize(p(ctx))
}

// IsUndefined reports whether v is the absent-property sentinel, which is
// distinct from a Go nil.
func IsUndefined(v any) bool {
	return obj.IsUndefined(v)
}
