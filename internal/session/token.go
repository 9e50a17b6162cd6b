package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry reads the exp claim without verifying the signature. The
// client never holds the signing key; this is only used to tell the user
// their session is about to lapse.
func TokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// BearerHeader formats the Authorization header value, empty when signed out.
func BearerHeader(token string) string {
	if token == "" {
		return ""
	}
	return "Bearer " + token
}
