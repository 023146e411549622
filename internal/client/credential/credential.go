// Package credential decides whether a persisted bearer token is usable.
//
// The token is opaque to the client. It is only inspected when it looks like
// a JWT, and then only for an exp claim in the past; the signature is never
// verified here.
package credential

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/net/http/httpguts"
)

// Present reports whether token can be sent as a bearer credential. Empty
// values, the literals "undefined" and "null", and values that are not legal
// HTTP header content are treated as absent.
func Present(token string) bool {
	t := strings.TrimSpace(token)
	if t == "" || t == "undefined" || t == "null" {
		return false
	}
	return httpguts.ValidHeaderFieldValue(t)
}

// Expired reports whether token is a JWT whose exp claim lies before now.
// Tokens that do not parse as a JWT never expire from the client's view.
func Expired(token string, now time.Time) bool {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !now.Before(claims.ExpiresAt.Time)
}

// Valid combines Present and Expired.
func Valid(token string, now time.Time) bool {
	return Present(token) && !Expired(token, now)
}
