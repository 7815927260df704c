package di

// Arg declares how one callable parameter position resolves when the exact
// parameter type is not registered in the Context. The zero value resolves by
// type only.
type Arg struct {
	name   string
	def    any
	hasDef bool
}

// ByType is the zero Arg spec: resolve by registered type only.
var ByType = Arg{}

// Named binds the parameter to the scalar value registered under name,
// typically a route capture. The parameter must be a string type.
func Named(name string) Arg {
	return Arg{name: name}
}

// Or adds a default used when the named value is absent.
func (a Arg) Or(def any) Arg {
	a.def = def
	a.hasDef = true
	return a
}

// Default declares a fallback value used when no typed instance is
// registered for the parameter.
func Default(def any) Arg {
	return Arg{def: def, hasDef: true}
}
