// Package router implements pattern-based route registration, resolution,
// and dispatch.
//
// Routes are matched in registration order: the first route whose method
// constraint and compiled pattern both accept the request wins. Patterns mix
// literal segments with dynamic segments written as {name} or {name:regex};
// the default segment expression is [^/]+ and literal characters are escaped,
// so dots and other metacharacters match themselves. Matching is anchored to
// the whole path.
//
//	r := router.New(router.WithSubdirectory("/app"))
//	r.Get("/users/{id}", router.Func(showUser, di.Named("id")))
//	r.Post("/users", router.Action("Users@Create"))
//
// A matched route's target is invoked through the dependency Context, which
// resolves each parameter by registered type, named capture, or declared
// default. Action targets name a registered controller and an exported
// method; the controller constructor resolves through the same Context.
package router
