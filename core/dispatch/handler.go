package dispatch

// Func is the uniform calling convention of registered handlers.
type Func func(args ...any) error

// Handler is a named operation an extension exposes to broadcasts.
type Handler struct {
	Name   string
	Params []Param
	Fn     Func
}

// Matches reports whether the handler can receive event with args.
func (h Handler) Matches(event string, args []any) bool {
	if h.Name != event || len(h.Params) != len(args) {
		return false
	}
	for i, p := range h.Params {
		if !p.Accepts(args[i]) {
			return false
		}
	}
	return true
}

// On builds a handler that takes no arguments.
func On(name string, fn func() error) Handler {
	return Handler{
		Name: name,
		Fn: func(...any) error {
			return fn()
		},
	}
}

// On1 builds a handler that takes a single argument of type A.
// A nil argument reaches fn as the zero value of A.
func On1[A any](name string, fn func(A) error) Handler {
	return Handler{
		Name:   name,
		Params: []Param{ParamOf[A]()},
		Fn: func(args ...any) error {
			a, _ := args[0].(A)
			return fn(a)
		},
	}
}

// On2 builds a handler that takes two arguments.
func On2[A, B any](name string, fn func(A, B) error) Handler {
	return Handler{
		Name:   name,
		Params: []Param{ParamOf[A](), ParamOf[B]()},
		Fn: func(args ...any) error {
			a, _ := args[0].(A)
			b, _ := args[1].(B)
			return fn(a, b)
		},
	}
}
