package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenClaims is the subset of JWT claims the portal backend puts into its
// tokens. The token is parsed without signature verification: the client has
// no key material and trusts the server that issued it over TLS.
type tokenClaims struct {
	UserID    string
	Name      string
	Role      string
	ExpiresAt time.Time
}

func parseClaims(tokenString string) (tokenClaims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return tokenClaims{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return tokenClaims{}, ErrInvalidToken
	}

	out := tokenClaims{
		UserID: stringClaim(claims, "userId"),
		Name:   stringClaim(claims, "name"),
		Role:   stringClaim(claims, "role"),
	}
	if out.UserID == "" {
		// Some token revisions use the standard subject claim instead.
		sub, _ := claims.GetSubject()
		out.UserID = sub
	}
	if out.UserID == "" {
		return tokenClaims{}, ErrInvalidToken
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}

	return out, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	v, ok := claims[key].(string)
	if !ok {
		return ""
	}
	return v
}
