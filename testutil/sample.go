package testutil

import "github.com/protoless/protoless/obj"

// Env is the context value captured by the sample providers.
type Env struct {
	Igloo string
}

// NewSampleClass builds the canonical sample class: a getter "aboot"
// returning 100 and a method "moose" returning the captured context's Igloo.
func NewSampleClass(ctx Env) *obj.Class {
	return obj.NewClass("Sample").
		Getter("aboot", func() any {
			return 100
		}).
		Method("moose", func(_ ...any) any {
			return ctx.Igloo
		})
}

// NewSampleRecord builds the same shape as a plain record literal.
func NewSampleRecord(ctx Env) *obj.Object {
	return obj.New().
		PutGetter("aboot", func() any {
			return 100
		}).
		PutFn("moose", func(_ ...any) any {
			return ctx.Igloo
		})
}
