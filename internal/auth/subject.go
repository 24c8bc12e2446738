// Package auth derives a request-scoped subject from bearer tokens.
package auth

import "github.com/avolchek/gamevault/internal/model"

// Subject is the caller of an operation: either an authenticated identity or
// anonymous. The zero value is anonymous, so a Subject can never reach a
// handler in an unverified intermediate state.
type Subject struct {
	identity      model.Identity
	authenticated bool
}

// Anonymous returns the unauthenticated subject.
func Anonymous() Subject { return Subject{} }

// Authenticated wraps a verified identity.
func Authenticated(id model.Identity) Subject {
	return Subject{identity: id, authenticated: true}
}

// Identity returns the verified identity, or ok=false for anonymous subjects.
func (s Subject) Identity() (model.Identity, bool) {
	return s.identity, s.authenticated
}
