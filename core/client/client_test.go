package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/core/client"
)

func newTestClient(t *testing.T, handler http.Handler) *client.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := client.New(client.Config{BaseURL: srv.URL + "/api/v1"})
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestNew(t *testing.T) {
	t.Run("rejects unparsable base URL", func(t *testing.T) {
		_, err := client.New(client.Config{BaseURL: "://nope"})
		assert.ErrorIs(t, err, client.ErrInvalidBaseURL)
	})

	t.Run("rejects base URL without host", func(t *testing.T) {
		_, err := client.New(client.Config{BaseURL: "/api/v1"})
		assert.ErrorIs(t, err, client.ErrInvalidBaseURL)
	})
}

func TestEnvelopeDecoding(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes data field", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/products/featured", r.URL.Path)
			writeJSON(w, http.StatusOK, map[string]any{
				"success": true,
				"data": map[string]any{
					"products": []map[string]any{
						{"id": 1, "name": "Desk Lamp", "price": 29.99},
					},
				},
			})
		}))

		products, err := c.Products.Featured(ctx)
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, int64(1), products[0].ID)
		assert.Equal(t, "Desk Lamp", products[0].Name)
		assert.InDelta(t, 29.99, products[0].Price, 1e-9)
	})

	t.Run("surfaces server message as APIError", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"success": false,
				"message": "Invalid username or password",
			})
		}))

		_, err := c.Auth.Login(ctx, "alice", "wrong")
		require.Error(t, err)

		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
		assert.True(t, apiErr.Unauthorized())
		assert.Equal(t, "Invalid username or password", client.APIMessage(err))
	})

	t.Run("success=false with 200 status is still an error", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{
				"success": false,
				"message": "Coupon expired",
			})
		}))

		_, err := c.Orders.ValidateCoupon(ctx, "OLD10")
		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Coupon expired", apiErr.Message)
	})

	t.Run("tolerates non-JSON error body", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "Bad Gateway", http.StatusBadGateway)
		}))

		_, err := c.Cart.Get(ctx)
		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	})
}

func TestRequestHeaders(t *testing.T) {
	ctx := context.Background()

	t.Run("attaches request id and content type", func(t *testing.T) {
		var gotRequestID, gotContentType string
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotRequestID = r.Header.Get("X-Request-ID")
			gotContentType = r.Header.Get("Content-Type")
			writeJSON(w, http.StatusOK, map[string]any{"success": true})
		}))

		require.NoError(t, c.Cart.AddItem(ctx, 7, 2))
		assert.NotEmpty(t, gotRequestID)
		assert.Equal(t, "application/json", gotContentType)
	})

	t.Run("refresh sends refresh token as bearer", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer refresh-token-1", r.Header.Get("Authorization"))
			writeJSON(w, http.StatusOK, map[string]any{
				"success": true,
				"data":    map[string]any{"access_token": "access-token-2"},
			})
		}))

		token, err := c.Auth.Refresh(ctx, "refresh-token-1")
		require.NoError(t, err)
		assert.Equal(t, "access-token-2", token)
	})
}

func TestQueryParams(t *testing.T) {
	ctx := context.Background()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "24", q.Get("per_page"))
		assert.Equal(t, "price_asc", q.Get("sort"))
		assert.Empty(t, q.Get("min_price"))
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"data": map[string]any{
				"products":   []any{},
				"pagination": map[string]any{"page": 2, "per_page": 24, "total_pages": 3, "total_items": 60, "has_next": true, "has_prev": true},
			},
		})
	}))

	list, err := c.Products.List(ctx, client.ListProductsParams{Page: 2, PerPage: 24, Sort: "price_asc"})
	require.NoError(t, err)
	assert.Equal(t, 2, list.Pagination.Page)
	assert.True(t, list.Pagination.HasNext)
}

func TestLoginDecodesCredentials(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice@example.com", body["username"])

		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Login successful",
			"data": map[string]any{
				"user":          map[string]any{"id": 42, "username": "alice", "email": "alice@example.com"},
				"access_token":  "access-1",
				"refresh_token": "refresh-1",
			},
		})
	}))

	res, err := c.Auth.Login(context.Background(), "alice@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(42), res.User.ID)
	assert.Equal(t, "access-1", res.AccessToken)
	assert.Equal(t, "refresh-1", res.RefreshToken)
}
