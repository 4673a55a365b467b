// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	userModel "ttracker_backend/internals/features/users/user/model"
)

// Access tokens expire after one hour.
const TokenTTL = time.Hour

// GenerateToken signs an HS256 access token for an authenticated
// principal.
func GenerateToken(u *userModel.UserModel, secret string, now time.Time) (string, error) {
	if secret == "" {
		return "", errors.New("missing signing secret")
	}
	claims := jwt.MapClaims{
		"sub":      u.ID.String(),
		"username": u.Username,
		"role":     u.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(TokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// TokenExpiry reads the exp claim without verifying the signature; used
// by logout to blacklist a token until its natural expiry.
func TokenExpiry(tokenString string) (time.Time, error) {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, err
	}
	expFloat, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}, errors.New("missing exp claim")
	}
	return time.Unix(int64(expFloat), 0), nil
}

// ParseToken verifies signature and expiry and returns the claims.
func ParseToken(tokenString, secret string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
