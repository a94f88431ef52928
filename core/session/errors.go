package session

import "errors"

var (
	// ErrLoginFailed is returned when the credentials are rejected.
	ErrLoginFailed = errors.New("login failed")
	// ErrRegistrationFailed is returned when the registration is rejected.
	ErrRegistrationFailed = errors.New("registration failed")
	// ErrNoRefreshToken is returned when a refresh is attempted without a
	// stored refresh token.
	ErrNoRefreshToken = errors.New("no refresh token held")
	// ErrRefreshFailed is returned when the token exchange is rejected; the
	// session has been cleared as a side effect.
	ErrRefreshFailed = errors.New("token refresh failed")
	// ErrProfileUpdateFailed is returned when a profile mutation is rejected.
	ErrProfileUpdateFailed = errors.New("profile update failed")
)
