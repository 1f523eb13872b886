package services

import (
	"context"
	"errors"
	"strings"

	"MoveCleanWeb/config"
	"MoveCleanWeb/models"

	"google.golang.org/api/googleapi"
	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// Admin SDK credentials cannot check passwords, so login goes through the
// Identity Toolkit REST endpoint keyed by the web API key.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrWrongPassword   = errors.New("wrong password")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrTooManyRequests = errors.New("too many requests")
)

type IdentityClient interface {
	VerifyPassword(ctx context.Context, email, password string) (models.AdminUser, error)
}

type FirebaseIdentityClient struct {
	svc *identitytoolkit.Service
}

func NewFirebaseIdentityClient(ctx context.Context, apiKey string) (*FirebaseIdentityClient, error) {
	svc, err := identitytoolkit.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &FirebaseIdentityClient{svc: svc}, nil
}

func (c *FirebaseIdentityClient) VerifyPassword(ctx context.Context, email, password string) (models.AdminUser, error) {
	req := &identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}

	resp, err := c.svc.Relyingparty.VerifyPassword(req).Context(ctx).Do()
	if err != nil {
		return models.AdminUser{}, mapIdentityError(err)
	}

	displayName := resp.DisplayName
	// The toolkit response omits the display name for some providers; the
	// admin SDK record carries it.
	if displayName == "" && config.FirebaseAuth != nil {
		if record, err := config.FirebaseAuth.GetUser(ctx, resp.LocalId); err == nil {
			displayName = record.DisplayName
		}
	}

	return models.AdminUser{
		UID:         resp.LocalId,
		Email:       resp.Email,
		DisplayName: displayName,
	}, nil
}

// mapIdentityError translates the provider's error codes into sentinel
// errors. Codes can carry a suffix ("TOO_MANY_ATTEMPTS_TRY_LATER : ..."),
// hence the prefix match. Newer projects report INVALID_LOGIN_CREDENTIALS
// instead of INVALID_PASSWORD.
func mapIdentityError(err error) error {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return err
	}

	switch {
	case strings.HasPrefix(gerr.Message, "EMAIL_NOT_FOUND"):
		return ErrUserNotFound
	case strings.HasPrefix(gerr.Message, "INVALID_PASSWORD"),
		strings.HasPrefix(gerr.Message, "INVALID_LOGIN_CREDENTIALS"):
		return ErrWrongPassword
	case strings.HasPrefix(gerr.Message, "INVALID_EMAIL"):
		return ErrInvalidEmail
	case strings.HasPrefix(gerr.Message, "TOO_MANY_ATTEMPTS_TRY_LATER"):
		return ErrTooManyRequests
	}
	return err
}
