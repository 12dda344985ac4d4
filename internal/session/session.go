// Package session carries the identity of whoever drives the catalog client.
// A Session is created once by the caller and handed explicitly to the API
// client and the detail controller; nothing reads it from package state.
package session

import "context"

// Session is the caller identity attached to outgoing catalog requests.
type Session struct {
	UserName string
	Token    string
}

// Anonymous reports whether no user is attached.
func (s *Session) Anonymous() bool {
	return s == nil || s.UserName == ""
}

type contextKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session stored in ctx, if any.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok && s != nil
}
