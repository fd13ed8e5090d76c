package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
	ErrEmptySecret  = errors.New("jwt secret must not be empty")
)

const (
	Issuer    = "trustassess"
	AdminRole = "admin"
)

type (
	Manager interface {
		CreateToken(subject string, ttl time.Duration) (string, error)
		ValidateToken(tokenString string) (*Claims, error)
	}
	manager struct {
		secret []byte
		now    func() time.Time
	}
)

// NewJwtManager signs and verifies HS256 admin tokens.
func NewJwtManager(secret string) (Manager, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &manager{secret: []byte(secret), now: time.Now}, nil
}

type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func (m *manager) CreateToken(subject string, ttl time.Duration) (string, error) {
	now := m.now()
	claims := &Claims{
		Role: AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   Issuer,
			Subject:  subject,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *manager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
