package api

import (
	"context"
	"errors"
	"net/http"

	apperrors "rtoctl/internal/errors"
)

// Login exchanges credentials for a token and profile. Rejections come
// back as *apperrors.AuthenticationError carrying the server's message.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	payload := map[string]string{
		"email":    email,
		"password": password,
	}

	var result AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, payload, &result); err != nil {
		return nil, asAuthError(err, "Login failed")
	}
	return &result, nil
}

// Register creates an account and returns the fresh token and profile.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	var result AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &result); err != nil {
		return nil, asAuthError(err, "Registration failed")
	}
	return &result, nil
}

// GetProfile fetches the profile behind the current token.
func (c *Client) GetProfile(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile submits profile edits and returns the updated record.
func (c *Client) UpdateProfile(ctx context.Context, user User) (*User, error) {
	var updated User
	if err := c.do(ctx, http.MethodPut, "/auth/profile", nil, user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// ChangePassword rotates the account password.
func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	payload := map[string]string{
		"currentPassword": current,
		"newPassword":     next,
	}
	return c.do(ctx, http.MethodPut, "/auth/change-password", nil, payload, nil)
}

// asAuthError converts a 4xx rejection into an AuthenticationError while
// leaving transport failures typed as they are.
func asAuthError(err error, fallback string) error {
	var apiErr *apperrors.APIError
	if errors.As(err, &apiErr) {
		return apperrors.NewAuthenticationError(apiErr.Message, fallback)
	}
	var unauth *apperrors.UnauthorizedError
	if errors.As(err, &unauth) {
		return apperrors.NewAuthenticationError(unauth.Message, fallback)
	}
	return err
}
