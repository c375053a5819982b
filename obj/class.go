package obj

// Ctor initializes a freshly constructed instance.
type Ctor func(self *Object, args ...any)

// Class is a named constructor paired with a prototype object. Methods and
// accessors installed on the class live on its prototype as non-enumerable
// properties, the way instances are expected to inherit them.
type Class struct {
	name  string
	ctor  Ctor
	proto *Object
}

// NewClass creates a new class whose prototype chains to the base object
// prototype.
func NewClass(name string, opts ...func(*Class)) *Class {
	c := &Class{
		name:  name,
		proto: New(),
	}
	c.proto.MustDefine("constructor", Descriptor{
		Value:        c,
		Writable:     true,
		Configurable: true,
	})
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithConstructor sets the function run on every new instance.
func WithConstructor(ctor Ctor) func(*Class) {
	return func(c *Class) {
		c.ctor = ctor
	}
}

// Name returns the class name.
func (c *Class) Name() string {
	return c.name
}

// Prototype returns the prototype object shared by the class's instances.
func (c *Class) Prototype() *Object {
	return c.proto
}

// Method installs a method on the prototype and returns the class for
// chaining.
func (c *Class) Method(name string, fn Fn) *Class {
	c.proto.MustDefine(name, Descriptor{
		Value:        fn,
		Writable:     true,
		Configurable: true,
	})
	return c
}

// Getter installs a getter-only accessor on the prototype and returns the
// class for chaining.
func (c *Class) Getter(name string, get func() any) *Class {
	c.proto.MustDefine(name, Descriptor{
		Get:          get,
		Configurable: true,
	})
	return c
}

// Accessor installs an accessor with the given getter and setter on the
// prototype and returns the class for chaining.
func (c *Class) Accessor(name string, get func() any, set func(v any)) *Class {
	c.proto.MustDefine(name, Descriptor{
		Get:          get,
		Set:          set,
		Configurable: true,
	})
	return c
}

// New constructs an instance whose prototype is the class prototype, running
// the constructor if one was set.
func (c *Class) New(args ...any) *Object {
	inst := NewWithProto(c.proto)
	if c.ctor != nil {
		c.ctor(inst, args...)
	}

	return inst
}
