package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token bundles a JWT with its compact signed form. The embedded [jwt.Token]
// and [jwt.RegisteredClaims] cover signing, parsing and standard claim
// access; SignedString is what travels in the Authorization header.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form of the token.
	SignedString string `json:"-"`

	// UserID caches the owner id parsed from the "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID parses the "sub" claim as a decimal int64 user id.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("extracting user id from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("converting token subject to int64: %w", err)
	}

	return userID, nil
}

// String implements [fmt.Stringer], returning the compact JWS form.
func (t *Token) String() string {
	return t.SignedString
}
