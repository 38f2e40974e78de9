package repository

import "errors"

// ErrUpstreamUnavailable wraps transport failures of a remote entity
// source. Callers decide per lookup whether it is fatal or degrades to a
// default value.
var ErrUpstreamUnavailable = errors.New("upstream service unavailable")
