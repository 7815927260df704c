package di

import (
	"errors"
	"fmt"
	"io"
	"reflect"
)

var (
	ErrNotCallable          = errors.New("target is not callable")
	ErrUnresolvedDependency = errors.New("unresolved dependency")
)

var errorType = reflect.TypeFor[error]()

// Call invokes fn with arguments resolved from the Context. The specs align
// positionally with fn's parameters; missing positions resolve by type.
// Panics raised by fn are recovered and returned as errors.
func (c *Context) Call(fn any, specs ...Arg) (results []reflect.Value, err error) {
	fv := reflect.ValueOf(fn)
	if !fv.IsValid() || fv.Kind() != reflect.Func || fv.IsNil() {
		return nil, ErrNotCallable
	}

	ft := fv.Type()
	fixed := ft.NumIn()
	if ft.IsVariadic() {
		// A variadic tail receives no injected arguments.
		fixed--
	}

	in := make([]reflect.Value, 0, fixed)
	for i := 0; i < fixed; i++ {
		var spec Arg
		if i < len(specs) {
			spec = specs[i]
		}
		arg, rerr := c.resolveParam(ft.In(i), spec, i)
		if rerr != nil {
			return nil, rerr
		}
		in = append(in, arg)
	}

	defer func() {
		if r := recover(); r != nil {
			results, err = nil, toError(r)
		}
	}()

	return fv.Call(in), nil
}

// Invoke calls fn and routes its results: string, []byte, and fmt.Stringer
// values are appended to the io.Writer registered in the Context (if any),
// and a non-nil error result is returned unmodified.
func (c *Context) Invoke(fn any, specs ...Arg) error {
	results, err := c.Call(fn, specs...)
	if err != nil {
		return err
	}
	return c.sink(results)
}

// resolveParam resolves one parameter following the fixed precedence:
// typed instance, named value, spec default, error.
func (c *Context) resolveParam(pt reflect.Type, spec Arg, pos int) (reflect.Value, error) {
	if v, ok := c.instance(pt); ok {
		return v, nil
	}

	if spec.name != "" {
		if s, ok := c.Value(spec.name); ok {
			if pt.Kind() != reflect.String {
				return reflect.Value{}, fmt.Errorf("%w: named value %q cannot fill parameter %d of type %s",
					ErrUnresolvedDependency, spec.name, pos, pt)
			}
			return reflect.ValueOf(s).Convert(pt), nil
		}
	}

	if spec.hasDef {
		if spec.def == nil {
			return reflect.Zero(pt), nil
		}
		dv := reflect.ValueOf(spec.def)
		if dv.Type().AssignableTo(pt) {
			return dv, nil
		}
		if dv.Type().ConvertibleTo(pt) {
			return dv.Convert(pt), nil
		}
		return reflect.Value{}, fmt.Errorf("%w: default value of type %s cannot fill parameter %d of type %s",
			ErrUnresolvedDependency, dv.Type(), pos, pt)
	}

	return reflect.Value{}, fmt.Errorf("%w: parameter %d of type %s", ErrUnresolvedDependency, pos, pt)
}

// sink appends printable results to the registered writer and surfaces a
// trailing error result.
func (c *Context) sink(results []reflect.Value) error {
	w, hasWriter := Resolve[io.Writer](c)
	for _, rv := range results {
		if rv.Type().Implements(errorType) {
			if !rv.IsNil() {
				return rv.Interface().(error)
			}
			continue
		}
		if !hasWriter {
			continue
		}
		switch v := rv.Interface().(type) {
		case string:
			_, _ = io.WriteString(w, v)
		case []byte:
			_, _ = w.Write(v)
		case fmt.Stringer:
			_, _ = io.WriteString(w, v.String())
		}
	}
	return nil
}

// toError converts a recovered panic value to an error.
func toError(v any) error {
	switch e := v.(type) {
	case error:
		return e
	case string:
		return errors.New(e)
	default:
		return fmt.Errorf("panic: %v", e)
	}
}
