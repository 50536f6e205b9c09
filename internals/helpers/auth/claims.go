package helperAuth

import "github.com/golang-jwt/jwt/v4"

// Claims carried by access tokens. Subject is the user id.
type Claims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}
