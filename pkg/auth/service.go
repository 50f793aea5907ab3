package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/W4153WASMCoder/ApplicationService/pkg/errcodes"
	"github.com/W4153WASMCoder/ApplicationService/pkg/models"
	"github.com/W4153WASMCoder/ApplicationService/pkg/stores"
)

// TokenExpiry is how long session tokens are valid.
const TokenExpiry = 7 * 24 * time.Hour // 7 days

// CredentialVerifier is the slice of the user store the auth service needs.
// The store owns all credential material; this service never sees a hash.
type CredentialVerifier interface {
	VerifyCredentials(ctx context.Context, username, password string) (*models.User, error)
}

// Claims represents the claims in a session token.
type Claims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Service handles login and session token operations.
type Service struct {
	users     CredentialVerifier
	jwtSecret []byte
}

// NewService creates a new auth service.
func NewService(users CredentialVerifier, jwtSecret string) *Service {
	return &Service{
		users:     users,
		jwtSecret: []byte(jwtSecret),
	}
}

// Login forwards the credentials to the user store and, when they check
// out, mints a session token for the returned user.
func (s *Service) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.users.VerifyCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, stores.ErrInvalidCredentials) || errors.Is(err, stores.ErrNotFound) {
			return nil, "", errcodes.Unauthorized("Invalid username or password")
		}
		return nil, "", errcodes.UpstreamUnavailable("user")
	}
	if !user.IsActive {
		return nil, "", errcodes.Unauthorized("Invalid username or password")
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GenerateToken creates a new session token for the user.
func (s *Service) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.UserName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return signedToken, nil
}

// ValidateToken validates a session token and returns its claims.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
