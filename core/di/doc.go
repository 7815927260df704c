// Package di implements the per-request dependency context used to invoke
// route targets and lifecycle filters.
//
// A Context holds two independent registries: typed instances (at most one
// per type, last registered wins) and named scalar values such as route
// captures. Callables are invoked through Call or Invoke, with each parameter
// resolved in a fixed precedence order: a typed instance of the exact
// parameter type, then a named value declared with an Arg spec, then the
// spec's default value, and finally an unresolved-dependency error.
//
// Because Go reflection exposes parameter types but not parameter names,
// name-based resolution is declared explicitly by the callable's author:
//
//	ctx.Invoke(showUser, di.Named("id"))
//
// binds the first parameter to the captured value "id". Positions without a
// spec resolve by type only.
package di
