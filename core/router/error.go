package router

import "errors"

// Registration errors, raised as panics during route setup.
var (
	ErrInvalidMethod  = errors.New("invalid http method")
	ErrInvalidPattern = errors.New("routing pattern must begin with '/'")
	ErrInvalidRegexp  = errors.New("invalid regexp pattern in route param")
	ErrParamDelimiter = errors.New("route param closing delimiter '}' is missing")
	ErrInvalidParam   = errors.New("route param name is not a valid identifier")
	ErrDuplicateParam = errors.New("routing pattern contains duplicate param key")
	ErrNilTarget      = errors.New("route target callable cannot be nil")
)

// Dispatch errors.
var (
	ErrInvalidTarget     = errors.New("route target is not resolvable")
	ErrUnknownController = errors.New("controller is not registered")
	ErrUnknownMethod     = errors.New("controller method does not exist")
)
