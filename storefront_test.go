package storefront_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront"
	"github.com/dmitrymomot/storefront/core/client"
	"github.com/dmitrymomot/storefront/core/state"
	"github.com/dmitrymomot/storefront/pkg/notify"
)

// apiStub is a minimal storefront API covering auth and cart endpoints.
type apiStub struct {
	mu           sync.Mutex
	cartRequests []string // "METHOD path authorization"
}

func (s *apiStub) handler() http.Handler {
	mux := http.NewServeMux()

	writeJSON := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(v)
	}

	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "secret" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"success": false, "message": "Invalid username or password",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"data": map[string]any{
				"user":          map[string]any{"id": 1, "username": body["username"]},
				"access_token":  "access-1",
				"refresh_token": "refresh-1",
			},
		})
	})

	mux.HandleFunc("/api/v1/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	})

	mux.HandleFunc("/api/v1/cart/", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.cartRequests = append(s.cartRequests, r.Method+" "+r.URL.Path+" "+r.Header.Get("Authorization"))
		s.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	})

	return mux
}

func (s *apiStub) recorded() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.cartRequests...)
}

func newStorefront(t *testing.T, stub *apiStub) (*storefront.Storefront, *notify.Recorder) {
	t.Helper()

	srv := httptest.NewServer(stub.handler())
	t.Cleanup(srv.Close)

	rec := &notify.Recorder{}
	sf, err := storefront.New(
		storefront.Config{Client: client.Config{BaseURL: srv.URL + "/api/v1"}},
		storefront.WithStore(state.NewMemoryStore()),
		storefront.WithNotifier(rec),
	)
	require.NoError(t, err)
	return sf, rec
}

func TestComposition(t *testing.T) {
	ctx := context.Background()

	t.Run("anonymous mutations stay local", func(t *testing.T) {
		stub := &apiStub{}
		sf, rec := newStorefront(t, stub)
		sf.Load(ctx)

		p := client.Product{ID: 5, Name: "Desk Lamp", Price: 30}
		require.NoError(t, sf.Cart.AddItem(ctx, p, 2).Await())

		assert.Equal(t, 2, sf.Cart.ItemCount())
		assert.Empty(t, stub.recorded())
		assert.Equal(t, []string{"Desk Lamp added to cart"}, rec.Messages())
	})

	t.Run("authenticated mutations mirror with bearer token", func(t *testing.T) {
		stub := &apiStub{}
		sf, _ := newStorefront(t, stub)
		sf.Load(ctx)

		require.NoError(t, sf.Session.Login(ctx, "alice", "secret"))
		require.True(t, sf.Session.IsAuthenticated())

		p := client.Product{ID: 5, Name: "Desk Lamp", Price: 30}
		require.NoError(t, sf.Cart.AddItem(ctx, p, 1).Await())

		recorded := stub.recorded()
		require.Len(t, recorded, 1)
		assert.Equal(t, "POST /api/v1/cart/items Bearer access-1", recorded[0])
	})

	t.Run("failed login surfaces message, cart stays local", func(t *testing.T) {
		stub := &apiStub{}
		sf, _ := newStorefront(t, stub)

		err := sf.Session.Login(ctx, "alice", "wrong")
		require.Error(t, err)
		assert.Equal(t, "Invalid username or password", sf.Session.LastError())

		p := client.Product{ID: 5, Name: "Desk Lamp", Price: 30}
		require.NoError(t, sf.Cart.AddItem(ctx, p, 1).Await())
		assert.Empty(t, stub.recorded())
	})

	t.Run("cart survives logout", func(t *testing.T) {
		stub := &apiStub{}
		sf, _ := newStorefront(t, stub)

		require.NoError(t, sf.Session.Login(ctx, "alice", "secret"))
		p := client.Product{ID: 5, Name: "Desk Lamp", Price: 30}
		require.NoError(t, sf.Cart.AddItem(ctx, p, 2).Await())

		sf.Session.Logout(ctx)
		assert.False(t, sf.Session.IsAuthenticated())
		assert.Equal(t, 2, sf.Cart.ItemCount())
	})
}

func TestSessionPersistsAcrossRestart(t *testing.T) {
	ctx := context.Background()

	stub := &apiStub{}
	srv := httptest.NewServer(stub.handler())
	t.Cleanup(srv.Close)

	store := state.NewMemoryStore()
	cfg := storefront.Config{Client: client.Config{BaseURL: srv.URL + "/api/v1"}}

	first, err := storefront.New(cfg, storefront.WithStore(store))
	require.NoError(t, err)
	require.NoError(t, first.Session.Login(ctx, "alice", "secret"))

	// Same store, fresh composition: simulates a process restart.
	second, err := storefront.New(cfg, storefront.WithStore(store))
	require.NoError(t, err)
	second.Load(ctx)

	assert.True(t, second.Session.IsAuthenticated())
	assert.Equal(t, "access-1", second.Session.AccessToken())
}
