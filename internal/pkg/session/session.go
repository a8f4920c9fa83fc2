// Package session carries the authenticated user of a request. The API
// gateway authenticates callers and forwards the user id in the X-User-ID
// header; this service trusts that header and nothing else.
package session

import (
	"context"
	"errors"
	"strings"

	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/pkg/errs"
)

// Header is the request header the gateway fills with the user id.
const Header = "X-User-ID"

// ErrNoSession is returned when a request carries no user.
var ErrNoSession = errors.New("request has no authenticated user")

// Session identifies the user a request acts for.
type Session struct {
	UserID kernel.UUID
}

// FromHeader parses the gateway header value.
func FromHeader(value string) (Session, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Session{}, ErrNoSession
	}

	id, err := kernel.UUIDFromString(value)
	if err != nil {
		return Session{}, errs.NewValueIsInvalidErrorWithCause("userId", err)
	}
	return Session{UserID: id}, nil
}

type contextKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns ErrNoSession when no session was stored.
func FromContext(ctx context.Context) (Session, error) {
	s, ok := ctx.Value(contextKey{}).(Session)
	if !ok {
		return Session{}, ErrNoSession
	}
	return s, nil
}
