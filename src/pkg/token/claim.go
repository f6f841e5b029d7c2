package token

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

type Claim struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type bearerClaims struct {
	Metadata struct {
		UserID   string `json:"user_id"`
		FullName string `json:"full_name"`
	} `json:"metadata"`
	jwt.RegisteredClaims
}

// Parse validates an HS256 bearer token and extracts the identity claim.
// Role is not part of the token; it comes from the stored profile.
func Parse(secret, tokenString string) (*Claim, error) {
	claims := &bearerClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.Metadata.UserID == "" {
		return nil, fmt.Errorf("token has no user id")
	}
	return &Claim{
		UserID:   claims.Metadata.UserID,
		FullName: claims.Metadata.FullName,
	}, nil
}
