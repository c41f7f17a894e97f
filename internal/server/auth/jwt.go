// Package auth implements the two credential primitives of the backend:
// the signed session token codec and the password hasher.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/homelab-dashboard/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried inside a session token: the registered
// claims (expiry) plus the authenticated user's id.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// signingMethod resolves a configured algorithm identifier. Only the
// symmetric HMAC family is supported.
func signingMethod(alg string) (jwt.SigningMethod, error) {
	switch alg {
	case "HS256":
		return jwt.SigningMethodHS256, nil
	case "HS384":
		return jwt.SigningMethodHS384, nil
	case "HS512":
		return jwt.SigningMethodHS512, nil
	default:
		return nil, fmt.Errorf("unsupported signing algorithm: %s", alg)
	}
}

// GenerateToken issues a signed session token for userID with an absolute
// expiry validityDuration from now.
func GenerateToken(userID int64, secretKey []byte, alg string, validityDuration time.Duration) (string, error) {
	method, err := signingMethod(alg)
	if err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(method, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken verifies the signature and expiry of a session token
// and returns the embedded user id. The parser accepts only the configured
// algorithm, so a token signed with any other method (including "none") is
// rejected. Expired tokens yield common.ErrTokenExpired; every other
// verification failure yields common.ErrInvalidToken.
func GetUserIDFromToken(tokenString string, secretKey []byte, alg string) (int64, error) {
	method, err := signingMethod(alg)
	if err != nil {
		return 0, err
	}

	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{method.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, common.ErrTokenExpired
		}
		return 0, common.ErrInvalidToken
	}

	if !token.Valid {
		return 0, common.ErrInvalidToken
	}

	return claims.UserID, nil
}
