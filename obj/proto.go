package obj

// BaseProto is the root of every default prototype chain. It carries the
// intrinsic members of the object system as non-enumerable properties and is
// initialized once at package load; it must never be mutated afterwards.
var BaseProto = newBaseProto()

func newBaseProto() *Object {
	p := Blank()

	// The base prototype is not produced by any class.
	p.props.Set("constructor", Descriptor{Value: Undefined, Writable: true})

	intrinsics := []struct {
		name string
		fn   Intrinsic
	}{
		{"toString", func(_ *Object, _ ...any) any {
			return "[object Object]"
		}},
		{"toLocaleString", func(self *Object, _ ...any) any {
			v, err := self.Call("toString")
			if err != nil {
				return "[object Object]"
			}
			return v
		}},
		{"valueOf", func(self *Object, _ ...any) any {
			return self
		}},
		{"hasOwnProperty", func(self *Object, args ...any) any {
			name, ok := stringArg(args)
			return ok && self.HasOwn(name)
		}},
		{"isPrototypeOf", func(self *Object, args ...any) any {
			if len(args) == 0 {
				return false
			}
			target, ok := args[0].(*Object)
			if !ok {
				return false
			}
			for cur := target.Proto(); cur != nil; cur = cur.Proto() {
				if cur == self {
					return true
				}
			}
			return false
		}},
		{"propertyIsEnumerable", func(self *Object, args ...any) any {
			name, ok := stringArg(args)
			if !ok {
				return false
			}
			d, ok := self.GetOwn(name)
			return ok && d.Enumerable
		}},
	}

	for _, in := range intrinsics {
		p.props.Set(in.name, Descriptor{
			Value:    in.fn,
			Writable: true,
		})
	}

	return p
}

func stringArg(args []any) (string, bool) {
	if len(args) == 0 {
		return "", false
	}
	s, ok := args[0].(string)
	return s, ok
}
