// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"schooladmin_backend/internals/features/users/auth/model"
	helperAuth "schooladmin_backend/internals/helpers/auth"
)

const refreshTokenType = "refresh"

// TokenIssuer signs access and refresh tokens. Access tokens carry the claims the
// AuthJWT middleware reads; refresh tokens only carry the subject.
type TokenIssuer struct {
	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

type refreshClaims struct {
	Typ string `json:"typ"`
	jwt.RegisteredClaims
}

func (t TokenIssuer) IssueAccess(u model.UserModel, now time.Time) (string, time.Time, error) {
	exp := now.Add(t.AccessTTL)
	claims := helperAuth.Claims{
		Name: u.UserName,
		Role: u.UserRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.AccessSecret)
	return s, exp, err
}

// IssueRefresh adds a random jti so two tokens issued in the same second differ.
func (t TokenIssuer) IssueRefresh(userID uuid.UUID, now time.Time) (string, time.Time, error) {
	exp := now.Add(t.RefreshTTL)
	claims := refreshClaims{
		Typ: refreshTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.RefreshSecret)
	return s, exp, err
}

// ParseRefresh verifies signature, expiry and token type and returns the user id.
func (t TokenIssuer) ParseRefresh(token string) (uuid.UUID, error) {
	claims := &refreshClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	tok, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return t.RefreshSecret, nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, errors.New("refresh token invalid")
	}
	if claims.Typ != refreshTokenType {
		return uuid.Nil, errors.New("not a refresh token")
	}
	return uuid.Parse(claims.Subject)
}

func (t TokenIssuer) RefreshHash(token string) []byte {
	m := hmac.New(sha256.New, t.RefreshSecret)
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}
