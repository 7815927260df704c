package di

import "reflect"

// Context is the per-request instance and value registry. It is owned by a
// single Application lifecycle and is not safe for concurrent use.
type Context struct {
	instances map[reflect.Type]reflect.Value
	values    map[string]string
}

// NewContext creates an empty Context.
func NewContext() *Context {
	return &Context{
		instances: make(map[reflect.Type]reflect.Value),
		values:    make(map[string]string),
	}
}

// Register stores v keyed by the type parameter T, overwriting any prior
// instance of the same type. Registering under an explicit interface type
// makes the value resolvable by parameters of that interface:
//
//	di.Register[io.Writer](ctx, buf)
func Register[T any](c *Context, v T) {
	// Going through a pointer keeps the static type T as the key, so
	// interface registrations are not collapsed to the dynamic type.
	c.instances[reflect.TypeFor[T]()] = reflect.ValueOf(&v).Elem()
}

// Resolve returns the registered instance of type T, if any.
func Resolve[T any](c *Context) (T, bool) {
	v, ok := c.instances[reflect.TypeFor[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return v.Interface().(T), true
}

// SetValue stores a named scalar value, such as a route capture. Captures are
// always strings; no coercion is applied at resolution time.
func (c *Context) SetValue(name, value string) {
	c.values[name] = value
}

// Value returns the named scalar value, if set.
func (c *Context) Value(name string) (string, bool) {
	v, ok := c.values[name]
	return v, ok
}

// instance looks up a typed registration by exact type.
func (c *Context) instance(t reflect.Type) (reflect.Value, bool) {
	v, ok := c.instances[t]
	return v, ok
}
