package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

var ErrInvalidToken = errors.New("invalid or expired session token")

// SessionClaims is the payload carried by both session slots. Username
// is set for admin tokens, Name/StudentID for user tokens.
type SessionClaims struct {
	Role      Role   `json:"role"`
	Username  string `json:"username,omitempty"`
	Name      string `json:"name,omitempty"`
	StudentID string `json:"idStudent,omitempty"`
	jwt.RegisteredClaims
}

// Tokens signs and validates session tokens for both slots.
type Tokens struct {
	Secret   []byte
	AdminTTL time.Duration
	UserTTL  time.Duration
}

func (t *Tokens) ttl(role Role) time.Duration {
	if role == RoleAdmin {
		return t.AdminTTL
	}
	return t.UserTTL
}

func (t *Tokens) Issue(claims SessionClaims) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl(claims.Role))),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.Secret)
}

// Validate checks signature and expiry and that the token was issued
// for the expected role. Any failure means the protected route must
// stop with 401 before reaching its handler.
func (t *Tokens) Validate(tokenString string, role Role) (*SessionClaims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.Secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Role != role {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
