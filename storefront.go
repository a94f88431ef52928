// Package storefront composes the client SDK for the storefront API: a typed
// HTTP client with transparent token refresh, a persisted auth session, and a
// local-first shopping cart that mirrors mutations to the server on a
// best-effort basis.
//
//	cfg, err := storefront.LoadConfig()
//	if err != nil {
//		log.Fatal(err)
//	}
//	sf, err := storefront.New(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	sf.Load(ctx) // rehydrate persisted session and cart
//
//	if err := sf.Session.Login(ctx, "alice", "secret"); err != nil {
//		fmt.Println(sf.Session.LastError())
//	}
//	sf.Cart.AddItem(ctx, product, 1)
package storefront

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/storefront/core/cart"
	"github.com/dmitrymomot/storefront/core/client"
	"github.com/dmitrymomot/storefront/core/config"
	"github.com/dmitrymomot/storefront/core/session"
	"github.com/dmitrymomot/storefront/core/state"
	"github.com/dmitrymomot/storefront/pkg/notify"
)

// Config aggregates the SDK's configuration, loadable from the environment
// via LoadConfig.
type Config struct {
	Client client.Config
	Cart   cart.Config

	// StateDir is where the file-backed state store keeps its records.
	// Ignored when WithStore supplies a store.
	StateDir string `env:"STOREFRONT_STATE_DIR" envDefault:".storefront"`
}

// LoadConfig loads Config from environment variables and an optional .env file.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Storefront wires the SDK together. All fields are ready to use after New.
type Storefront struct {
	Client  *client.Client
	Session *session.Manager
	Cart    *cart.Manager
}

type options struct {
	store         state.Store
	log           *slog.Logger
	notifier      notify.Notifier
	onAuthFailure func()
}

// Option configures the composition.
type Option func(*options)

// WithStore replaces the default file-backed state store.
func WithStore(s state.Store) Option {
	return func(o *options) { o.store = s }
}

// WithLogger sets the logger shared by all components.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithNotifier sets the sink for user-facing confirmations.
func WithNotifier(n notify.Notifier) Option {
	return func(o *options) { o.notifier = n }
}

// WithAuthFailureHandler hooks the unrecoverable-authorization path, where the
// application routes the user to its login entry point. Session state is
// already cleared when the hook runs.
func WithAuthFailureHandler(fn func()) Option {
	return func(o *options) { o.onAuthFailure = fn }
}

// New builds the composed SDK: state store, session manager, API client with
// auth transport, and cart manager.
func New(cfg Config, opts ...Option) (*Storefront, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = slog.Default()
	}
	if o.notifier == nil {
		o.notifier = notify.Slog(o.log)
	}

	store := o.store
	if store == nil {
		fs, err := state.NewFileStore(cfg.StateDir)
		if err != nil {
			return nil, err
		}
		store = fs
	}

	// The transport is created empty and wired after the session manager
	// exists; it tolerates nil fields until then.
	transport := &client.AuthTransport{Log: o.log}

	c, err := client.New(cfg.Client,
		client.WithLogger(o.log),
		client.WithTransport(transport),
	)
	if err != nil {
		return nil, err
	}

	sess := session.NewManager(c.Auth, store, session.WithLogger(o.log))
	transport.Tokens = sess
	transport.Refresher = sess
	transport.OnAuthFailure = o.onAuthFailure

	cartOpts := []cart.Option{
		cart.WithLogger(o.log),
		cart.WithNotifier(o.notifier),
	}
	if cfg.Cart != (cart.Config{}) {
		cartOpts = append(cartOpts, cart.WithConfig(cfg.Cart))
	}
	cartMgr := cart.NewManager(c.Cart, sess, store, cartOpts...)

	return &Storefront{
		Client:  c,
		Session: sess,
		Cart:    cartMgr,
	}, nil
}

// Load rehydrates the persisted session and cart records. Call once at
// process start; no network calls are made.
func (s *Storefront) Load(ctx context.Context) {
	s.Session.InitAuth(ctx)
	s.Cart.Load(ctx)
}
