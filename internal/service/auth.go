package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/templui/healthjournal/internal/apperr"
	"github.com/templui/healthjournal/internal/model"
)

// tokenLeeway absorbs clock skew between the issuer and this service.
const tokenLeeway = 30 * time.Second

var (
	ErrInvalidToken = apperr.Unauthorized("Invalid or expired token.")
)

// Claims is the bearer token payload. UserID identifies the owner of every
// record written or read with the token.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

type AuthService struct {
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthService(jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

// IssueToken signs a token for userID. It exists for the developer CLI and
// tests; the journal has no login flow of its own.
func (s *AuthService) IssueToken(userID string) (string, time.Time, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", time.Time{}, errors.New("user id is required")
	}

	issuedAt := time.Now()
	expiresAt := issuedAt.Add(s.jwtExpiry)
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// VerifyToken resolves a bearer token to the caller's identity. Every
// failure is Unauthenticated; the cause is only logged.
func (s *AuthService) VerifyToken(tokenString string) (model.Identity, error) {
	if strings.TrimSpace(tokenString) == "" {
		return model.Identity{}, apperr.Unauthorized("Authentication required.")
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(s.jwtSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(tokenLeeway),
	)
	if err != nil {
		slog.Debug("token rejected", "error", err)
		return model.Identity{}, ErrInvalidToken
	}

	if strings.TrimSpace(claims.UserID) == "" {
		slog.Debug("token rejected", "error", "missing user_id claim")
		return model.Identity{}, ErrInvalidToken
	}

	identity := model.Identity{UserID: claims.UserID}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}

	return identity, nil
}
