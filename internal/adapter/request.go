package adapter

import "net/url"

// Request describes one API call. It is kept across the 401 recovery so the
// same call can be resent with a fresh token.
type Request struct {
	Method string
	// Path is relative to the API base URL, e.g. "productos/productos/".
	Path  string
	Query url.Values
	Body  any

	retried bool
}

// Retried reports whether the request has already been resent after a 401.
func (r *Request) Retried() bool {
	return r.retried
}

func newRequest(method, path string) *Request {
	return &Request{Method: method, Path: path}
}
