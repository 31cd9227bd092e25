package helper

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"chirpnest/apperror"
)

// TokenManager signs and verifies the session tokens carried in the auth
// cookie. Expiry is the only bound on a token's lifetime; there is no
// server-side revocation list.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

func (m *TokenManager) Generate(userID primitive.ObjectID) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.Hex(),
		"exp": time.Now().Add(m.ttl).Unix(),
	})
	return token.SignedString(m.secret)
}

// Parse validates the token and returns the user id it was issued for.
func (m *TokenManager) Parse(tokenString string) (primitive.ObjectID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return primitive.NilObjectID, apperror.Auth("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return primitive.NilObjectID, apperror.Auth("Invalid or expired token")
	}
	subject, err := claims.GetSubject()
	if err != nil {
		return primitive.NilObjectID, apperror.Auth("Invalid or expired token")
	}
	userID, err := primitive.ObjectIDFromHex(subject)
	if err != nil {
		return primitive.NilObjectID, apperror.Auth("Invalid or expired token")
	}
	return userID, nil
}
