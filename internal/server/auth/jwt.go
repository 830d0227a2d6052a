// Package auth issues and verifies the HS256 bearer tokens that identify
// the actor of a request.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/jobwizard/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

const issuer = "jobwizard"

// Claims carries the actor id in the standard subject claim.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken signs a token for actorID valid for validityDuration.
func GenerateToken(actorID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	if actorID == "" {
		return "", fmt.Errorf("%w: actor is required", common.ErrInvalidRequest)
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   actorID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// GetActorFromToken verifies tokenString and returns its actor. Expired
// tokens yield common.ErrTokenExpired, everything else that fails
// verification common.ErrInvalidToken.
func GetActorFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}
	return claims.Subject, nil
}
