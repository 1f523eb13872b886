package services

import (
	"context"
	"errors"
	"time"

	"MoveCleanWeb/config"
	"MoveCleanWeb/models"

	"github.com/golang-jwt/jwt/v5"
)

const SessionCookieName = "admin_session"
const SessionDuration = 7 * 24 * time.Hour

var ErrNotAdmin = errors.New("not an admin account")

type SessionClaims struct {
	Email string `json:"email"`
	UID   string `json:"uid"`
	jwt.RegisteredClaims
}

type AuthService struct {
	Identity IdentityClient
}

func NewAuthService(identity IdentityClient) *AuthService {
	return &AuthService{Identity: identity}
}

// LoginAdmin verifies the credentials at the identity provider, checks the
// configured admin allow-list, and mints the session cookie token. A valid
// account outside the allow-list fails with ErrNotAdmin.
func (s *AuthService) LoginAdmin(ctx context.Context, email, password string) (models.AdminUser, string, error) {
	user, err := s.Identity.VerifyPassword(ctx, email, password)
	if err != nil {
		return models.AdminUser{}, "", err
	}

	if !config.IsAdminEmail(user.Email) {
		return models.AdminUser{}, "", ErrNotAdmin
	}

	claims := &SessionClaims{
		Email: user.Email,
		UID:   user.UID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(config.SessionSecret)
	if err != nil {
		return models.AdminUser{}, "", err
	}

	return user, signed, nil
}
