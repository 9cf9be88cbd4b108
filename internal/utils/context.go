// Package utils holds small helpers shared by the server and client:
// context keys for the authenticated user, JWT issuing and parsing, and
// JSON response writing.
package utils

import (
	"context"
)

// contextKey is a private key type so values stored by this package cannot
// collide with string keys placed in the context by other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey keys the authenticated user's id in a request context. The
// auth middleware stores it and handlers read it back with
// GetUserIDFromContext.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the user id placed in ctx by the auth
// middleware. ok is false when the value is absent or not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
