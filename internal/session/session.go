// Package session carries the caller's identity through a request.
//
// The screens keep three values between page loads: a bearer token, a
// serialized profile and a user type. The gateway receives them on every
// request and passes them explicitly as a Session rather than reading any
// global store.
package session

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"spicegate/internal/marketerrors"
)

// Request headers the screens send.
const (
	HeaderUserType = "X-User-Type"
	HeaderProfile  = "X-User-Profile"
)

// UserType is the marketplace role of the caller.
type UserType string

const (
	Admin  UserType = "admin"
	Farmer UserType = "farmer"
	Buyer  UserType = "buyer"
)

// Valid reports whether t is a known user type.
func (t UserType) Valid() bool {
	switch t {
	case Admin, Farmer, Buyer:
		return true
	}
	return false
}

// Session is the caller identity restored from request headers.
type Session struct {
	Token    string
	UserType UserType
	Profile  json.RawMessage
}

// Is reports whether the session belongs to one of the given user types.
func (s Session) Is(types ...UserType) bool {
	for _, t := range types {
		if s.UserType == t {
			return true
		}
	}
	return false
}

// FromRequest restores a session from the Authorization, X-User-Type and
// X-User-Profile headers. The profile is base64-encoded JSON and optional.
func FromRequest(r *http.Request) (Session, error) {
	auth := strings.TrimSpace(r.Header.Get("Authorization"))
	token, ok := strings.CutPrefix(auth, "Bearer ")
	token = strings.TrimSpace(token)
	if !ok || token == "" {
		return Session{}, fmt.Errorf("session: %w - bearer token required", marketerrors.ErrUnauthorized)
	}

	ut := UserType(strings.ToLower(strings.TrimSpace(r.Header.Get(HeaderUserType))))
	if !ut.Valid() {
		return Session{}, fmt.Errorf("session: %w - unknown user type %q", marketerrors.ErrUnauthorized, ut)
	}

	s := Session{Token: token, UserType: ut}

	if raw := r.Header.Get(HeaderProfile); raw != "" {
		profile, err := base64.StdEncoding.DecodeString(raw)
		if err != nil || !json.Valid(profile) {
			return Session{}, fmt.Errorf("session: %w - malformed profile", marketerrors.ErrUnauthorized)
		}
		s.Profile = profile
	}
	return s, nil
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored in ctx, if any.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}
