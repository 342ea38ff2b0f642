package dispatch

import "reflect"

// Param describes one declared handler parameter.
type Param interface {
	// Accepts reports whether arg can be passed for this parameter.
	Accepts(arg any) bool
	// Nullable reports whether a nil argument is accepted.
	Nullable() bool
	// String names the parameter type for logs.
	String() string
}

type typedParam[T any] struct {
	nullable bool
}

func (p typedParam[T]) Accepts(arg any) bool {
	if arg == nil {
		return p.nullable
	}
	_, ok := arg.(T)
	return ok
}

func (p typedParam[T]) Nullable() bool { return p.nullable }

func (p typedParam[T]) String() string {
	return reflect.TypeFor[T]().String()
}

// Ref declares a parameter of type T that also accepts nil.
func Ref[T any]() Param { return typedParam[T]{nullable: true} }

// Val declares a parameter of type T that rejects nil.
func Val[T any]() Param { return typedParam[T]{nullable: false} }

// ParamOf declares a parameter of type T, nullable when T is a reference-like kind.
func ParamOf[T any]() Param {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return Ref[T]()
	default:
		return Val[T]()
	}
}
