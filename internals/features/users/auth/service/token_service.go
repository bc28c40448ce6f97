// internals/features/users/auth/service/token_service.go
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	userModel "schoolku_backend/internals/features/users/user/model"
)

// Tokens are valid for a fixed 7 days; re-login is the only renewal path.
const AccessTokenTTL = 7 * 24 * time.Hour

// CreateToken issues an HS256 access token embedding id, name, role and email.
func CreateToken(user userModel.UserModel, secret string, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"email":     user.Email,
		"iat":       now.Unix(),
		"exp":       now.Add(AccessTokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken verifies signature and expiry and returns the raw claims.
func ParseToken(tokenString, secret string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, jwt.ErrSignatureInvalid
	}
	return claims, nil
}
