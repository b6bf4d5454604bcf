package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Manager handles JWT operations
type Manager struct {
	secret string
	expiry time.Duration
	issuer string
}

// NewManager creates a new JWT manager
func NewManager(secret string, expiry time.Duration) *Manager {
	return &Manager{
		secret: secret,
		expiry: expiry,
		issuer: "mom-tracker",
	}
}

// GenerateToken issues a signed token carrying the user's identity,
// role and department. Expiry is the only bound on token lifetime;
// there is no refresh mechanism and no revocation list.
func (m *Manager) GenerateToken(userID uuid.UUID, role string, departmentID *uuid.UUID) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:       userID,
		Role:         role,
		DepartmentID: departmentID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    m.issuer,
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

// ValidateToken validates and parses a token
func (m *Manager) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// GetExpiry returns the configured token lifetime
func (m *Manager) GetExpiry() time.Duration {
	return m.expiry
}
