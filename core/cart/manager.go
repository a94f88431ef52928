package cart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/storefront/core/client"
	"github.com/dmitrymomot/storefront/core/state"
	"github.com/dmitrymomot/storefront/pkg/async"
	"github.com/dmitrymomot/storefront/pkg/logger"
	"github.com/dmitrymomot/storefront/pkg/notify"
)

// ErrSyncFailed is returned when the server cart cannot be fetched.
var ErrSyncFailed = errors.New("cart sync failed")

// CartAPI is the remote cart surface used for mirror calls.
// *client.CartService satisfies it.
type CartAPI interface {
	Get(ctx context.Context) (client.ServerCart, error)
	AddItem(ctx context.Context, productID int64, quantity int) error
	UpdateItem(ctx context.Context, productID int64, quantity int) error
	RemoveItem(ctx context.Context, productID int64) error
	Clear(ctx context.Context) error
}

// AuthState reports whether a session is authenticated. *session.Manager
// satisfies it; injected explicitly so the cart never reaches into sibling
// state.
type AuthState interface {
	IsAuthenticated() bool
}

// Manager owns the local cart. Mutations are synchronous and local-first;
// mirroring to the server is asynchronous and best-effort.
type Manager struct {
	api    CartAPI
	auth   AuthState
	store  state.Store
	notify notify.Notifier
	log    *slog.Logger
	cfg    Config

	mu    sync.Mutex
	items []Item
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the manager's logger.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// WithNotifier sets the sink for user-facing confirmations.
func WithNotifier(n notify.Notifier) Option {
	return func(m *Manager) {
		if n != nil {
			m.notify = n
		}
	}
}

// WithConfig replaces the whole pricing policy.
func WithConfig(cfg Config) Option {
	return func(m *Manager) { m.cfg = cfg }
}

// WithShippingFee sets the flat shipping charge.
func WithShippingFee(fee float64) Option {
	return func(m *Manager) { m.cfg.ShippingFee = fee }
}

// WithFreeShippingThreshold sets the subtotal at which shipping is waived.
func WithFreeShippingThreshold(threshold float64) Option {
	return func(m *Manager) { m.cfg.FreeShippingThreshold = threshold }
}

// WithTaxRate sets the flat tax fraction.
func WithTaxRate(rate float64) Option {
	return func(m *Manager) { m.cfg.TaxRate = rate }
}

// NewManager creates a cart manager. auth may be nil, in which case no mirror
// calls are ever issued.
func NewManager(api CartAPI, auth AuthState, store state.Store, opts ...Option) *Manager {
	m := &Manager{
		api:    api,
		auth:   auth,
		store:  store,
		notify: notify.Discard,
		log:    slog.Default(),
		cfg:    defaultConfig(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Load rehydrates the persisted cart. A missing or unreadable record leaves
// the cart empty.
func (m *Manager) Load(ctx context.Context) {
	var items []Item
	if err := m.store.Load(ctx, StorageKey, &items); err != nil {
		if !errors.Is(err, state.ErrNotFound) {
			m.log.WarnContext(ctx, "discarding unreadable cart record",
				logger.Component("cart"), logger.Key(StorageKey), logger.Error(err))
		}
		return
	}

	m.mu.Lock()
	m.items = items
	m.mu.Unlock()
}

// AddItem adds quantity units of product to the cart. An existing entry for
// the product has its quantity incremented and keeps its original add-time
// price; a new entry snapshots the product and its current price. Quantities
// below 1 are treated as 1. The local mutation always succeeds synchronously;
// the returned future tracks the mirror call and may be ignored.
func (m *Manager) AddItem(ctx context.Context, product client.Product, quantity int) *async.Future {
	if quantity < 1 {
		quantity = 1
	}

	m.mu.Lock()
	found := false
	for i := range m.items {
		if m.items[i].ProductID == product.ID {
			m.items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		m.items = append(m.items, Item{
			ProductID: product.ID,
			Product:   product,
			Quantity:  quantity,
			Price:     product.Price,
		})
	}
	m.persistLocked(ctx)
	m.mu.Unlock()

	m.notify.Notify(fmt.Sprintf("%s added to cart", product.Name))

	return m.mirror(ctx, "add_item", product.ID, func(ctx context.Context) error {
		return m.api.AddItem(ctx, product.ID, quantity)
	})
}

// UpdateQuantity overwrites the entry's quantity. A quantity of zero or less
// removes the entry instead.
func (m *Manager) UpdateQuantity(ctx context.Context, productID int64, quantity int) *async.Future {
	if quantity <= 0 {
		return m.RemoveItem(ctx, productID)
	}

	m.mu.Lock()
	for i := range m.items {
		if m.items[i].ProductID == productID {
			m.items[i].Quantity = quantity
			break
		}
	}
	m.persistLocked(ctx)
	m.mu.Unlock()

	return m.mirror(ctx, "update_quantity", productID, func(ctx context.Context) error {
		return m.api.UpdateItem(ctx, productID, quantity)
	})
}

// RemoveItem deletes the matching entry. Removing an absent product leaves
// the sequence unchanged and emits no confirmation; the deletion is still
// mirrored so the server converges.
func (m *Manager) RemoveItem(ctx context.Context, productID int64) *async.Future {
	var removed *Item

	m.mu.Lock()
	for i := range m.items {
		if m.items[i].ProductID == productID {
			item := m.items[i]
			removed = &item
			m.items = append(m.items[:i], m.items[i+1:]...)
			break
		}
	}
	if removed != nil {
		m.persistLocked(ctx)
	}
	m.mu.Unlock()

	if removed != nil {
		m.notify.Notify(fmt.Sprintf("%s removed from cart", removed.Product.Name))
	}

	return m.mirror(ctx, "remove_item", productID, func(ctx context.Context) error {
		return m.api.RemoveItem(ctx, productID)
	})
}

// ClearCart empties the cart unconditionally.
func (m *Manager) ClearCart(ctx context.Context) *async.Future {
	m.mu.Lock()
	m.items = nil
	m.persistLocked(ctx)
	m.mu.Unlock()

	return m.mirror(ctx, "clear", 0, func(ctx context.Context) error {
		return m.api.Clear(ctx)
	})
}

// Sync replaces the local cart wholesale with the server's contents — the one
// operation where server state overrides local state. Unit prices are taken
// from the server's product records.
func (m *Manager) Sync(ctx context.Context) error {
	serverCart, err := m.api.Get(ctx)
	if err != nil {
		m.log.ErrorContext(ctx, "failed to fetch server cart",
			logger.Component("cart"), logger.Error(err))
		return errors.Join(ErrSyncFailed, err)
	}

	items := make([]Item, 0, len(serverCart.Items))
	for _, it := range serverCart.Items {
		items = append(items, Item{
			ProductID: it.ProductID,
			Product:   it.Product,
			Quantity:  it.Quantity,
			Price:     it.Product.Price,
		})
	}

	m.mu.Lock()
	m.items = items
	m.persistLocked(ctx)
	m.mu.Unlock()
	return nil
}

// Items returns a copy of the current line entries in insertion order.
func (m *Manager) Items() []Item {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Item(nil), m.items...)
}

// Totals derives the order totals from the current entries. Pure derivation,
// no side effects.
func (m *Manager) Totals() Totals {
	m.mu.Lock()
	defer m.mu.Unlock()

	var subtotal float64
	var count int
	for _, it := range m.items {
		subtotal += it.Price * float64(it.Quantity)
		count += it.Quantity
	}
	subtotal = roundCents(subtotal)

	shipping := m.cfg.ShippingFee
	if subtotal >= m.cfg.FreeShippingThreshold {
		shipping = 0
	}
	tax := roundCents(subtotal * m.cfg.TaxRate)

	return Totals{
		Subtotal:  subtotal,
		Shipping:  shipping,
		Tax:       tax,
		Total:     roundCents(subtotal + shipping + tax),
		ItemCount: count,
	}
}

// ItemCount is the sum of quantities across all entries.
func (m *Manager) ItemCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int
	for _, it := range m.items {
		count += it.Quantity
	}
	return count
}

// mirror issues a fire-and-forget remote call when the session is
// authenticated. The mirror is never retried, queued, or rolled back;
// failures are logged and reported only through the returned future.
// The call is detached from the caller's cancellation so an abandoned UI
// action still completes its push.
func (m *Manager) mirror(ctx context.Context, op string, productID int64, fn func(context.Context) error) *async.Future {
	if m.auth == nil || !m.auth.IsAuthenticated() {
		return async.Resolved(nil)
	}

	ctx = context.WithoutCancel(ctx)
	return async.Exec(ctx, func(ctx context.Context) error {
		if err := fn(ctx); err != nil {
			m.log.ErrorContext(ctx, "cart mirror call failed",
				logger.Component("cart"),
				logger.Operation(op),
				logger.ProductID(productID),
				logger.Error(err),
			)
			return err
		}
		return nil
	})
}

// persistLocked rewrites the cart record wholesale. Callers hold m.mu.
// Persistence failures are logged, never surfaced.
func (m *Manager) persistLocked(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	if err := m.store.Save(ctx, StorageKey, m.items); err != nil {
		m.log.ErrorContext(ctx, "failed to persist cart state",
			logger.Component("cart"), logger.Key(StorageKey), logger.Error(err))
	}
}
