// Package services contains the application services behind the SkillHub CLI:
// authentication and password reset, own and public profiles, and resource
// search and management. Services translate transport errors into the
// messages the user sees; session state is left to the session package.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Nigam11/skillhub-front/internal/client/client"
	"github.com/Nigam11/skillhub-front/internal/client/credential"
	"github.com/Nigam11/skillhub-front/internal/client/models"
	"github.com/Nigam11/skillhub-front/internal/common"
)

// AuthService defines the unauthenticated account operations.
//
// Contract:
//   - Login: exchange email and password for a bearer token and user.
//   - Signup: validate the form locally, then create the account.
//   - RequestPasswordReset / ConfirmPasswordReset: the two reset steps.
//   - Close: release the underlying client.
//
// Password slices are wiped before returning.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) (*models.LoginResponse, error)
	Signup(ctx context.Context, form models.SignupForm) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, token string, newPassword []byte) error
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
}

func NewAuthService(c client.Client) AuthService {
	return &authService{client: c}
}

// Login authenticates against the server. Rejected credentials surface as
// ErrInvalidCredentials; transport failures keep their client sentinel.
func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.LoginResponse, error) {
	defer common.WipeByteArray(password)

	email = strings.TrimSpace(email)
	if email == "" || len(password) == 0 {
		return nil, fmt.Errorf("%w: email and password", ErrMissingField)
	}

	resp, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) || errors.Is(err, client.ErrValidation) || errors.Is(err, client.ErrNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
		}
		return nil, fmt.Errorf("login error: %w", err)
	}
	if !credential.Present(resp.Token) {
		return nil, fmt.Errorf("%w: server returned no token", ErrInvalidCredentials)
	}
	return resp, nil
}

// Signup checks the form before anything is sent: required fields and
// matching passwords.
func (a *authService) Signup(ctx context.Context, form models.SignupForm) error {
	defer common.WipeByteArray(form.Password)
	defer common.WipeByteArray(form.ConfirmPassword)

	for _, f := range []struct{ name, value string }{
		{"name", form.Name},
		{"email", form.Email},
		{"password", string(form.Password)},
	} {
		if common.IsBlank(f.value) {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	if string(form.Password) != string(form.ConfirmPassword) {
		return ErrPasswordMismatch
	}

	req := models.SignupRequest{
		Name:     strings.TrimSpace(form.Name),
		Email:    strings.TrimSpace(form.Email),
		Password: string(form.Password),
		Gender:   form.Gender,
		Whatsapp: strings.TrimSpace(form.Whatsapp),
	}
	if err := a.client.Signup(ctx, req); err != nil {
		if errors.Is(err, client.ErrValidation) {
			return fmt.Errorf("%w: %v", ErrSignupRejected, err)
		}
		return fmt.Errorf("signup error: %w", err)
	}
	return nil
}

func (a *authService) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: email", ErrMissingField)
	}
	if err := a.client.RequestPasswordReset(ctx, email); err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("reset request error: %w", err)
	}
	return nil
}

func (a *authService) ConfirmPasswordReset(ctx context.Context, token string, newPassword []byte) error {
	defer common.WipeByteArray(newPassword)

	token = strings.TrimSpace(token)
	if token == "" || len(newPassword) == 0 {
		return fmt.Errorf("%w: token and new password", ErrMissingField)
	}
	if err := a.client.ConfirmPasswordReset(ctx, token, string(newPassword)); err != nil {
		if errors.Is(err, client.ErrValidation) || errors.Is(err, client.ErrNotFound) || errors.Is(err, client.ErrUnauthorized) {
			return fmt.Errorf("%w: %v", ErrInvalidResetToken, err)
		}
		return fmt.Errorf("reset confirm error: %w", err)
	}
	return nil
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
