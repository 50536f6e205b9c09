// internals/middlewares/auth/claim_utils.go
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	helperAuth "schooladmin_backend/internals/helpers/auth"
)

/* ======== Extractors ======== */

func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" {
		if cookieTok := c.Cookies("access_token"); cookieTok != "" {
			auth = "Bearer " + cookieTok
		}
	}
	if auth == "" {
		return "", errors.New("no token provided")
	}

	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", errors.New("invalid token format")
	}
	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", errors.New("empty token")
	}
	return tok, nil
}

// parseToken verifies signature and expiry (exp is mandatory).
func parseToken(tokenString string, secret []byte) (*helperAuth.Claims, error) {
	claims := &helperAuth.Claims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.ExpiresAt == nil {
		return nil, errors.New("token has no exp")
	}
	return claims, nil
}

func actorFromClaims(claims *helperAuth.Claims) (helperAuth.Actor, error) {
	uid, err := uuid.Parse(strings.TrimSpace(claims.Subject))
	if err != nil {
		return helperAuth.Actor{}, errors.New("invalid or missing subject")
	}
	role := strings.ToLower(strings.TrimSpace(claims.Role))
	if role == "" {
		return helperAuth.Actor{}, errors.New("missing role")
	}
	return helperAuth.Actor{UserID: uid, Name: claims.Name, Role: role}, nil
}
