// Package obj provides a minimal dynamic object model with prototype chains
// and property descriptors. Objects hold an insertion-ordered table of named
// properties; each property carries the full descriptor (value or accessor
// pair plus writable/enumerable/configurable flags). Callable property values
// are plain closures that capture whatever state they need instead of relying
// on an implicit receiver.
package obj

import (
	"errors"
	"fmt"
	"iter"

	"github.com/protoless/protoless/internal/ordmap"
)

var (
	// ErrNotConfigurable is returned when redefining or deleting a non-configurable property.
	ErrNotConfigurable = errors.New("property is not configurable")
	// ErrNotWritable is returned when assigning to a non-writable or getter-only property.
	ErrNotWritable = errors.New("property is not writable")
)

// Fn is a callable property value. It carries no receiver; implementations
// capture their state through the enclosing closure.
type Fn func(args ...any) any

// Intrinsic is a callable installed on the base prototype. Unlike Fn it
// receives the object it was invoked on, since base prototype members are
// shared by every object.
type Intrinsic func(self *Object, args ...any) any

// Descriptor is the full metadata of a single named property.
// A property is either a value property (Value, Writable) or an accessor
// property (Get and/or Set); never both.
type Descriptor struct {
	Value        any
	Get          func() any
	Set          func(v any)
	Writable     bool
	Enumerable   bool
	Configurable bool
}

// IsAccessor reports whether the descriptor describes an accessor property.
func (d Descriptor) IsAccessor() bool {
	return d.Get != nil || d.Set != nil
}

// Object is a record of named properties with an optional prototype link.
type Object struct {
	props *ordmap.Map[string, Descriptor]
	proto *Object
}

// New creates a new object whose prototype is the base object prototype.
func New() *Object {
	return NewWithProto(BaseProto)
}

// NewWithProto creates a new object with the given prototype.
func NewWithProto(proto *Object) *Object {
	return &Object{
		props: ordmap.New[string, Descriptor](),
		proto: proto,
	}
}

// Blank creates a new object with no prototype at all.
func Blank() *Object {
	return NewWithProto(nil)
}

// Proto returns the object's prototype or nil.
func (o *Object) Proto() *Object {
	return o.proto
}

// Define defines or redefines an own property with the given descriptor.
// It fails if the property already exists and is not configurable.
func (o *Object) Define(name string, d Descriptor) error {
	if old, ok := o.props.Get(name); ok && !old.Configurable {
		return fmt.Errorf("cannot redefine property %q: %w", name, ErrNotConfigurable)
	}

	o.props.Set(name, d)
	return nil
}

// MustDefine is like Define but panics if an error occurs.
func (o *Object) MustDefine(name string, d Descriptor) {
	if err := o.Define(name, d); err != nil {
		panic(err)
	}
}

// GetOwn returns the descriptor of an own property.
func (o *Object) GetOwn(name string) (Descriptor, bool) {
	return o.props.Get(name)
}

// HasOwn reports whether the object has an own property with the given name.
func (o *Object) HasOwn(name string) bool {
	return o.props.Has(name)
}

// Has reports whether the property is reachable through the object or its
// prototype chain.
func (o *Object) Has(name string) bool {
	_, ok := o.lookup(name)
	return ok
}

func (o *Object) lookup(name string) (Descriptor, bool) {
	for cur := o; cur != nil; cur = cur.proto {
		if d, ok := cur.props.Get(name); ok {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Get reads a property through the prototype chain, invoking its getter if it
// is an accessor. It returns Undefined when no such property exists or the
// accessor has no getter.
func (o *Object) Get(name string) any {
	d, ok := o.lookup(name)
	if !ok {
		return Undefined
	}
	if d.IsAccessor() {
		if d.Get == nil {
			return Undefined
		}
		return d.Get()
	}
	return d.Value
}

// Set assigns a value to a property. An own value property must be writable;
// an accessor property (own or inherited) must have a setter. When the
// property does not exist at all, a new enumerable own value property is
// created.
func (o *Object) Set(name string, v any) error {
	d, ok := o.lookup(name)
	if !ok {
		o.props.Set(name, Descriptor{
			Value:        v,
			Writable:     true,
			Enumerable:   true,
			Configurable: true,
		})
		return nil
	}

	if d.IsAccessor() {
		if d.Set == nil {
			return fmt.Errorf("cannot assign property %q: %w", name, ErrNotWritable)
		}
		d.Set(v)
		return nil
	}

	own, isOwn := o.props.Get(name)
	if isOwn {
		if !own.Writable {
			return fmt.Errorf("cannot assign property %q: %w", name, ErrNotWritable)
		}
		own.Value = v
		o.props.Set(name, own)
		return nil
	}

	// Inherited value property; shadow it with an own one.
	o.props.Set(name, Descriptor{
		Value:        v,
		Writable:     true,
		Enumerable:   true,
		Configurable: true,
	})
	return nil
}

// Delete removes an own property. It fails if the property is not configurable
// and is a no-op if the property does not exist.
func (o *Object) Delete(name string) error {
	d, ok := o.props.Get(name)
	if !ok {
		return nil
	}
	if !d.Configurable {
		return fmt.Errorf("cannot delete property %q: %w", name, ErrNotConfigurable)
	}

	o.props.Delete(name)
	return nil
}

// Call invokes a callable property reached through the prototype chain.
func (o *Object) Call(name string, args ...any) (any, error) {
	v := o.Get(name)
	switch f := v.(type) {
	case Fn:
		return f(args...), nil
	case Intrinsic:
		return f(o, args...), nil
	case func(args ...any) any:
		return f(args...), nil
	default:
		if IsUndefined(v) {
			return nil, fmt.Errorf("no such property %q", name)
		}
		return nil, fmt.Errorf("property %q is not callable (%T)", name, v)
	}
}

// OwnPropertyNames returns the names of all own properties in definition
// order, including non-enumerable ones.
func (o *Object) OwnPropertyNames() []string {
	return o.props.Keys()
}

// EnumerableNames returns the names of the own enumerable properties in
// definition order.
func (o *Object) EnumerableNames() []string {
	var names []string
	for name, d := range o.props.Iter() {
		if d.Enumerable {
			names = append(names, name)
		}
	}
	return names
}

// Own iterates over all own properties and their descriptors in definition
// order.
func (o *Object) Own() iter.Seq2[string, Descriptor] {
	return o.props.Iter()
}

// Len returns the number of own properties.
func (o *Object) Len() int {
	return o.props.Len()
}

// Put defines an enumerable, writable, configurable value property and
// returns the object for chaining.
func (o *Object) Put(name string, v any) *Object {
	o.MustDefine(name, Descriptor{
		Value:        v,
		Writable:     true,
		Enumerable:   true,
		Configurable: true,
	})
	return o
}

// PutFn defines an enumerable callable property and returns the object for
// chaining.
func (o *Object) PutFn(name string, fn Fn) *Object {
	return o.Put(name, fn)
}

// PutGetter defines an enumerable getter-only accessor property and returns
// the object for chaining.
func (o *Object) PutGetter(name string, get func() any) *Object {
	o.MustDefine(name, Descriptor{
		Get:          get,
		Enumerable:   true,
		Configurable: true,
	})
	return o
}

// PutAccessor defines an enumerable accessor property with the given getter
// and setter and returns the object for chaining.
func (o *Object) PutAccessor(name string, get func() any, set func(v any)) *Object {
	o.MustDefine(name, Descriptor{
		Get:          get,
		Set:          set,
		Enumerable:   true,
		Configurable: true,
	})
	return o
}
