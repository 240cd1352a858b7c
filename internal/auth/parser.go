package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/omranyar/portfolio-engine/internal/model"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	jwt.RegisteredClaims
	Username  string   `json:"username"`
	Role      string   `json:"role"`
	Provinces []string `json:"provinces"`
}

// Parser validates HS256 access tokens and extracts the principal.
type Parser struct {
	secret []byte
}

func NewParser(secret string) *Parser {
	return &Parser{secret: []byte(secret)}
}

func (p *Parser) Parse(raw string) (model.Principal, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return model.Principal{}, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return model.Principal{}, ErrInvalidToken
	}

	provinces := make([]model.Province, 0, len(claims.Provinces))
	for _, raw := range claims.Provinces {
		provinces = append(provinces, model.Province(raw))
	}

	return model.Principal{
		UserID:    userID,
		Username:  claims.Username,
		Role:      model.Role(claims.Role),
		Provinces: provinces,
	}, nil
}
