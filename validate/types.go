package validate

import (
	"fmt"
	"strings"

	"github.com/on-the-ground/gecko/shared/helper"
)

// Type is a runtime type tag a value can be checked against.
type Type interface {
	Name() string
	Accepts(v any) bool
}

type typeOf[T any] struct {
	name string
}

func (t typeOf[T]) Name() string { return t.name }

func (t typeOf[T]) Accepts(v any) bool {
	_, ok := helper.GetTypedValueOf2[T](v)
	return ok
}

// TypeOf accepts values whose dynamic type is T, or implements T when T is an interface.
// A nil value is never accepted.
func TypeOf[T any]() Type {
	return typeOf[T]{
		name: strings.TrimPrefix(fmt.Sprintf("%T", (*T)(nil)), "*"),
	}
}

type anyType struct{}

func (anyType) Name() string     { return "any" }
func (anyType) Accepts(any) bool { return true }

type nilType struct{}

func (nilType) Name() string       { return "nil" }
func (nilType) Accepts(v any) bool { return v == nil }

type oneOf []Type

func (o oneOf) Name() string {
	names := make([]string, len(o))
	for i, t := range o {
		names[i] = t.Name()
	}
	return strings.Join(names, " | ")
}

func (o oneOf) Accepts(v any) bool {
	for _, t := range o {
		if t.Accepts(v) {
			return true
		}
	}
	return false
}

// OneOf accepts values accepted by any of types.
func OneOf(types ...Type) Type {
	return oneOf(append([]Type(nil), types...))
}

// Common types.
var (
	Any       Type = anyType{}
	Nil       Type = nilType{}
	Int            = TypeOf[int]()
	Float64        = TypeOf[float64]()
	String         = TypeOf[string]()
	Bool           = TypeOf[bool]()
	ErrorType      = TypeOf[error]()
)
