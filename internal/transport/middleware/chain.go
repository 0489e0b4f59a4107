package middleware

import "net/http"

// Middleware decorates an http.Handler.
type Middleware func(http.Handler) http.Handler

// Stack is an ordered middleware pipeline. The first element runs
// outermost: Stack{a, b}.Handler(h) serves a, then b, then h.
type Stack []Middleware

// Handler wraps h in every middleware of the stack. An empty stack
// returns h unchanged.
func (s Stack) Handler(h http.Handler) http.Handler {
	for i := len(s) - 1; i >= 0; i-- {
		h = s[i](h)
	}
	return h
}
