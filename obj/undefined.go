package obj

type undefined struct{}

func (undefined) String() string {
	return "undefined"
}

// Undefined is the sentinel returned when a property is absent. It is a
// distinct value from a Go nil so that callers can tell "no such property"
// apart from a property that holds nil.
var Undefined = undefined{}

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}
