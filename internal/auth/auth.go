package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// Manager issues and verifies the bearer tokens the API hands out at login.
type Manager struct {
	secret   []byte
	tokenTTL time.Duration

	now func() time.Time
}

func NewManager(secret string, tokenTTL time.Duration) *Manager {
	return &Manager{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		now:      time.Now,
	}
}

// Claims carried in a token: the user and their role.
type Claims struct {
	UserID uuid.UUID
	RoleID uuid.UUID
}

type tokenClaims struct {
	jwt.RegisteredClaims
	RoleID string `json:"role_id"`
}

func (m *Manager) Issue(claims Claims) (string, error) {
	now := m.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenTTL)),
		},
		RoleID: claims.RoleID.String(),
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

func (m *Manager) Verify(tokenStr string) (*Claims, error) {
	var claims tokenClaims

	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return m.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return m.now() }))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}

	roleID, err := uuid.Parse(claims.RoleID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &Claims{UserID: userID, RoleID: roleID}, nil
}
