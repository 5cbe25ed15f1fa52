package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// IdentityTokenTTL matches the max-age of the identity cookie.
const IdentityTokenTTL = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid identity token")

// GenerateIdentityToken signs a token carrying the user id. The token is the
// value stored in the identity cookie; clients treat it as opaque.
func GenerateIdentityToken(userID uuid.UUID, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(IdentityTokenTTL).Unix(),
	})
	return token.SignedString(secret)
}

// ParseIdentityToken verifies the signature and expiry and returns the user id.
func ParseIdentityToken(tokenString string, secret []byte) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return id, nil
}
