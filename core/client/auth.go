package client

import (
	"context"
	"net/http"
)

// AuthService covers the /auth endpoints.
type AuthService struct {
	client *Client
}

// AuthResult is the credential set issued on successful login or register.
type AuthResult struct {
	User         User   `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RegisterParams are the profile fields accepted at registration.
type RegisterParams struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// UpdateProfileParams carries the mutable profile fields. Password change
// requires both CurrentPassword and NewPassword.
type UpdateProfileParams struct {
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	Phone           string `json:"phone,omitempty"`
	AvatarURL       string `json:"avatar_url,omitempty"`
	CurrentPassword string `json:"current_password,omitempty"`
	NewPassword     string `json:"new_password,omitempty"`
}

// Login authenticates with a username or email plus password.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (AuthResult, error) {
	body := map[string]string{"username": identifier, "password": password}
	var out AuthResult
	if err := s.client.do(ctx, http.MethodPost, "/auth/login", nil, body, &out); err != nil {
		return AuthResult{}, err
	}
	return out, nil
}

// Register creates an account and returns a credential set, so new users are
// signed in immediately.
func (s *AuthService) Register(ctx context.Context, params RegisterParams) (AuthResult, error) {
	var out AuthResult
	if err := s.client.do(ctx, http.MethodPost, "/auth/register", nil, params, &out); err != nil {
		return AuthResult{}, err
	}
	return out, nil
}

// Logout invalidates the current access token server-side.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.client.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

// Refresh exchanges refreshToken for a new access token. The refresh token
// rides the Authorization header in place of the access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := s.client.doWithBearer(ctx, http.MethodPost, "/auth/refresh", nil, refreshToken, nil, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

// Me fetches the authenticated user's profile.
func (s *AuthService) Me(ctx context.Context) (User, error) {
	var out struct {
		User User `json:"user"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/auth/me", nil, nil, &out); err != nil {
		return User{}, err
	}
	return out.User, nil
}

// UpdateProfile mutates the authenticated user's profile and returns the
// updated record.
func (s *AuthService) UpdateProfile(ctx context.Context, params UpdateProfileParams) (User, error) {
	var out struct {
		User User `json:"user"`
	}
	if err := s.client.do(ctx, http.MethodPut, "/auth/me", nil, params, &out); err != nil {
		return User{}, err
	}
	return out.User, nil
}
