package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/models"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"

	issuer = "spendtrack-api"
)

// Claims represents the claims embedded in issued JWTs. Tokens are
// self-contained: validation needs no store lookup.
type Claims struct {
	UserID    uint            `json:"user_id"`
	Email     string          `json:"email"`
	Roles     models.RoleList `json:"roles"`
	TokenType string          `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256-signed access and refresh
// tokens. The signing key is process-wide configuration; rotating it
// invalidates every previously issued token.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenService creates a token service with the given signing secret
// and token lifetimes.
func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// AccessTokenTTL returns the configured access token lifetime.
func (s *TokenService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}

// GenerateAccessToken issues a short-lived access token for the principal.
func (s *TokenService) GenerateAccessToken(p *Principal) (string, error) {
	return s.generate(p, tokenTypeAccess, s.accessTTL)
}

// GenerateRefreshToken issues a long-lived refresh token for the principal.
func (s *TokenService) GenerateRefreshToken(p *Principal) (string, error) {
	return s.generate(p, tokenTypeRefresh, s.refreshTTL)
}

func (s *TokenService) generate(p *Principal, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    p.UserID,
		Email:     p.Email,
		Roles:     p.Roles,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   fmt.Sprintf("%d", p.UserID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateAccessToken parses and validates an access token, returning the
// principal it encodes. Refresh tokens presented as access tokens are
// rejected as malformed.
func (s *TokenService) ValidateAccessToken(tokenString string) (*Principal, error) {
	return s.validate(tokenString, tokenTypeAccess)
}

// ValidateRefreshToken parses and validates a refresh token.
func (s *TokenService) ValidateRefreshToken(tokenString string) (*Principal, error) {
	return s.validate(tokenString, tokenTypeRefresh)
}

func (s *TokenService) validate(tokenString, wantType string) (*Principal, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.Wrap(apperrors.ErrMalformedToken, err)
	}
	if !token.Valid || claims.TokenType != wantType {
		return nil, apperrors.ErrMalformedToken
	}

	return &Principal{
		UserID: claims.UserID,
		Email:  claims.Email,
		Roles:  claims.Roles,
	}, nil
}
