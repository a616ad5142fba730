package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// StationClaims represents the claims in a print-station token. There are no
// user accounts in this service; a token simply identifies the till that
// authenticated.
type StationClaims struct {
	StationID string `json:"station_id"`
	jwt.RegisteredClaims
}

// JWTManager handles JWT token generation and validation
type JWTManager struct {
	secretKey []byte
	expiry    time.Duration
}

// NewJWTManager creates a new JWT manager
func NewJWTManager(secret string, expiry time.Duration) *JWTManager {
	return &JWTManager{
		secretKey: []byte(secret),
		expiry:    expiry,
	}
}

// GenerateToken generates a token for an authenticated station.
func (m *JWTManager) GenerateToken(stationID string) (string, error) {
	claims := &StationClaims{
		StationID: stationID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "tillprint-api",
			Subject:   stationID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

// ValidateToken validates a station token and returns the claims
func (m *JWTManager) ValidateToken(tokenString string) (*StationClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &StationClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secretKey, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*StationClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
