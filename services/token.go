package services

import (
	"os"
	"time"

	"desdeaca/errors"
	"desdeaca/models"

	"github.com/dgrijalva/jwt-go"
)

// TokenExpiry es la vigencia del token de acceso.
const TokenExpiry = 7 * 24 * time.Hour

// UserInfo es lo que viaja dentro del token.
type UserInfo struct {
	UserID   uint   `json:"id"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func secretKey() []byte {
	if key := os.Getenv("JWT_SECRET"); key != "" {
		return []byte(key)
	}
	return []byte("dev-secret-key")
}

// GenerateToken firma un token HS256 con vigencia de 7 días.
func GenerateToken(user *models.User) (string, error) {
	claims := &Claims{
		UserInfo: UserInfo{
			UserID:   user.ID,
			Email:    user.Email,
			UserType: user.UserType,
		},
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(TokenExpiry).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ParseToken verifica firma y expiración y devuelve los datos del
// usuario. Un token con método de firma distinto de HMAC se rechaza.
func ParseToken(tokenString string) (*UserInfo, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Método de firma inesperado", nil)
		}
		return secretKey(), nil
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Token inválido o expirado", err)
	}
	if !token.Valid {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Token inválido", nil)
	}
	return &claims.UserInfo, nil
}
