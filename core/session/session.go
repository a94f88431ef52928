package session

import "github.com/dmitrymomot/storefront/core/client"

// StorageKey names the durable record holding the session state.
const StorageKey = "auth-storage"

// Session is the persisted session state. The zero value is the anonymous
// session.
type Session struct {
	User         *client.User `json:"user,omitempty"`
	AccessToken  string       `json:"access_token,omitempty"`
	RefreshToken string       `json:"refresh_token,omitempty"`
}

// IsAuthenticated reports whether the session holds a complete identity:
// a user profile plus both credentials.
func (s Session) IsAuthenticated() bool {
	return s.User != nil && s.AccessToken != "" && s.RefreshToken != ""
}
