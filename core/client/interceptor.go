package client

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/storefront/pkg/logger"
)

// TokenSource supplies the current access token. An empty string means no
// credential is held and no Authorization header is attached.
type TokenSource interface {
	AccessToken() string
}

// Refresher exchanges the stored refresh token for a new access token.
// Implementations must update their TokenSource so a subsequent
// AccessToken() call returns the fresh credential.
type Refresher interface {
	RefreshAccessToken(ctx context.Context) error
}

// AuthTransport is a RoundTripper that attaches the session's bearer token to
// outgoing requests and transparently recovers from access token expiry: a
// 401 response triggers exactly one refresh followed by one replay of the
// original request. The replay cap is structural, so a replayed request that
// is rejected again is returned to the caller without another attempt.
//
// Auth endpoints are exempt from interception: a rejected login carries no
// token worth refreshing, and intercepting the refresh call itself would
// recurse.
//
// Fields may be populated after construction but before first use, which
// breaks the construction cycle between client and session manager.
type AuthTransport struct {
	// Base is the underlying transport; http.DefaultTransport when nil.
	Base http.RoundTripper

	// Tokens supplies the access token; requests go out bare when nil.
	Tokens TokenSource

	// Refresher performs the token exchange; 401s pass through when nil.
	Refresher Refresher

	// OnAuthFailure runs after an unrecoverable authorization failure
	// (refresh rejected). The application hooks navigation to its login
	// entry point here; session state is already cleared by the Refresher.
	OnAuthFailure func()

	// Log defaults to slog.Default().
	Log *slog.Logger
}

func (t *AuthTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

func (t *AuthTransport) logger() *slog.Logger {
	if t.Log != nil {
		return t.Log
	}
	return slog.Default()
}

// RoundTrip implements http.RoundTripper.
func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base().RoundTrip(t.withToken(req))
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		return resp, err
	}
	if t.Refresher == nil || isAuthEndpoint(req.URL.Path) {
		return resp, nil
	}

	ctx := req.Context()
	if err := t.Refresher.RefreshAccessToken(ctx); err != nil {
		t.logger().WarnContext(ctx, "token refresh failed, session terminated",
			logger.Component("auth_transport"), logger.Error(err))
		if t.OnAuthFailure != nil {
			t.OnAuthFailure()
		}
		return resp, nil
	}

	retry, rerr := rewindRequest(req)
	if rerr != nil {
		return resp, nil
	}

	// Drain before replay so the connection is reusable.
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	t.logger().DebugContext(ctx, "replaying request with refreshed token",
		logger.Component("auth_transport"), slog.String("path", req.URL.Path))

	return t.base().RoundTrip(t.withToken(retry))
}

// withToken returns a clone of req with the current access token attached.
// An Authorization header already present on the request wins, so explicit
// bearer overrides (the refresh exchange) pass through untouched.
func (t *AuthTransport) withToken(req *http.Request) *http.Request {
	if t.Tokens == nil || req.Header.Get("Authorization") != "" {
		return req
	}
	token := t.Tokens.AccessToken()
	if token == "" {
		return req
	}
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+token)
	return clone
}

// rewindRequest clones req with a replayable body and no stale credential.
func rewindRequest(req *http.Request) (*http.Request, error) {
	clone := req.Clone(req.Context())
	clone.Header.Del("Authorization")
	if req.Body != nil {
		if req.GetBody == nil {
			return nil, ErrRequestFailed
		}
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		clone.Body = body
	}
	return clone, nil
}

func isAuthEndpoint(path string) bool {
	return strings.Contains(path, "/auth/")
}
