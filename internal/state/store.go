// Package state holds the session store: cart, user profile, catalog data
// and UI status, plus the totals derived from the cart.
//
// A Store is created once at startup, made reachable through Provide, and
// torn down with Close. Every read and mutation is serialized; derived
// totals are recomputed on each read and never cached.
package state

import (
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"

	cart "github.com/dwikikusuma/freshcart/internal/cart/domain"
	catalog "github.com/dwikikusuma/freshcart/internal/catalog/domain"
	"github.com/dwikikusuma/freshcart/internal/i18n"
	profile "github.com/dwikikusuma/freshcart/internal/profile/domain"
	"github.com/dwikikusuma/freshcart/pkg/logger"
	"github.com/shopspring/decimal"
)

var (
	// ErrNoProvider is the panic value when Use finds no store in scope.
	ErrNoProvider = errors.New("state: store used outside its provider scope")
	// ErrClosed is the panic value for any call after Close.
	ErrClosed = errors.New("state: store used after close")
)

// Status is the UI flag pair. An empty Error means no error.
type Status struct {
	Loading bool
	Error   string
}

func (s Status) HasError() bool { return s.Error != "" }

// Snapshot is a consistent copy of the mutable state.
type Snapshot struct {
	Cart   []cart.Line
	User   profile.User
	Status Status
	Totals cart.Totals
}

type Options struct {
	Catalog    []catalog.Product
	Categories []catalog.Category
	User       profile.User
	// Pricing defaults to cart.DefaultPricing when zero.
	Pricing cart.Pricing
	// Translator may be nil, in which case T returns keys unchanged.
	Translator *i18n.Translator
	Logger     *slog.Logger
}

type listener struct {
	id int
	fn func(Snapshot)
}

type Store struct {
	mu     sync.Mutex
	closed bool

	lines  []cart.Line
	user   profile.User
	status Status

	catalog    []catalog.Product
	categories []catalog.Category
	byID       map[string]int

	pricing cart.Pricing
	tr      *i18n.Translator
	log     *slog.Logger

	listeners []listener
	nextID    int
}

func New(opts Options) *Store {
	pricing := opts.Pricing
	if pricing.FreeDeliveryThreshold.IsZero() && pricing.DeliveryFee.IsZero() {
		pricing = cart.DefaultPricing()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	s := &Store{
		user:       opts.User,
		catalog:    slices.Clone(opts.Catalog),
		categories: slices.Clone(opts.Categories),
		byID:       make(map[string]int, len(opts.Catalog)),
		pricing:    pricing,
		tr:         opts.Translator,
		log:        log.With("component", "state"),
	}
	for i, p := range s.catalog {
		s.byID[p.ID] = i
	}
	return s
}

// Close tears the store down. Any later call other than Close panics with
// ErrClosed.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.listeners = nil
	s.log.Info("store closed")
}

// Subscribe registers fn to receive a snapshot after every mutation. fn runs
// outside the store lock, so it may read from the store. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()

	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listener{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.listeners = slices.DeleteFunc(s.listeners, func(l listener) bool { return l.id == id })
	}
}

// Cart mutations.

// AddToCart increments the line for p or appends it with quantity 1. Stock
// is not checked here.
func (s *Store) AddToCart(p catalog.Product) {
	s.mutate("add_to_cart", func() {
		s.lines = cart.Add(s.lines, p)
	}, "product_id", p.ID)
}

func (s *Store) RemoveFromCart(productID string) {
	s.mutate("remove_from_cart", func() {
		s.lines = cart.Remove(s.lines, productID)
	}, "product_id", productID)
}

// UpdateQuantity sets the quantity of an existing line. Quantities at or
// below zero remove the line; unknown ids are ignored.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	s.mutate("update_quantity", func() {
		s.lines = cart.SetQuantity(s.lines, productID, quantity)
	}, "product_id", productID, "quantity", quantity)
}

func (s *Store) ClearCart() {
	s.mutate("clear_cart", func() {
		s.lines = nil
	})
}

// UI status mutations.

func (s *Store) SetLoading(loading bool) {
	s.mutate("set_loading", func() {
		s.status.Loading = loading
	})
}

// SetError records msg and stops loading. An empty msg clears the error.
func (s *Store) SetError(msg string) {
	s.mutate("set_error", func() {
		s.status = Status{Error: msg}
	})
}

func (s *Store) ClearError() {
	s.SetError("")
}

// Profile mutations.

func (s *Store) UpdateUser(patch profile.UserPatch) {
	s.mutate("update_user", func() {
		s.user = s.user.Apply(patch)
	})
}

func (s *Store) SetLanguage(tag string) {
	tag = strings.TrimSpace(tag)
	s.mutate("set_language", func() {
		s.user.Language = tag
	}, "language", tag)
}

// T translates key using the current user's language.
func (s *Store) T(key string) string {
	lang := s.User().Language
	if s.tr == nil {
		return key
	}
	return s.tr.T(lang, key)
}

// Reads.

func (s *Store) Cart() []cart.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()
	return slices.Clone(s.lines)
}

func (s *Store) User() profile.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()
	return s.user
}

func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()
	return s.status
}

func (s *Store) Catalog() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()
	return slices.Clone(s.catalog)
}

func (s *Store) Categories() []catalog.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()
	return slices.Clone(s.categories)
}

func (s *Store) Product(id string) (catalog.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()
	i, ok := s.byID[id]
	if !ok {
		return catalog.Product{}, false
	}
	return s.catalog[i], true
}

func (s *Store) Pricing() cart.Pricing {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()
	return s.pricing
}

// Derived totals.

func (s *Store) Totals() cart.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()
	return s.pricing.Totals(s.lines)
}

func (s *Store) Subtotal() decimal.Decimal { return s.Totals().Subtotal }

func (s *Store) ItemCount() int { return s.Totals().ItemCount }

func (s *Store) DeliveryFee() decimal.Decimal { return s.Totals().DeliveryFee }

func (s *Store) FinalTotal() decimal.Decimal { return s.Totals().FinalTotal }

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()
	return s.snapshotLocked()
}

// Update runs fn against the store's mutable state as one serialized
// operation. It is used for compound changes that must not interleave with
// other calls, such as completing a checkout.
func (s *Store) Update(op string, fn func(tx *Tx)) {
	s.mutate(op, func() {
		fn(&Tx{s: s})
	})
}

// Tx exposes the mutations inside Update. It must not escape fn.
type Tx struct{ s *Store }

func (tx *Tx) Cart() []cart.Line   { return slices.Clone(tx.s.lines) }
func (tx *Tx) User() profile.User  { return tx.s.user }
func (tx *Tx) ClearCart()          { tx.s.lines = nil }
func (tx *Tx) Totals() cart.Totals { return tx.s.pricing.Totals(tx.s.lines) }

func (tx *Tx) UpdateQuantity(productID string, quantity int) {
	tx.s.lines = cart.SetQuantity(tx.s.lines, productID, quantity)
}

func (tx *Tx) UpdateUser(patch profile.UserPatch) {
	tx.s.user = tx.s.user.Apply(patch)
}

func (s *Store) mutate(op string, fn func(), attrs ...any) {
	snap, fns := s.apply(fn)
	s.log.Debug("state changed", append([]any{"op", op, "items", snap.Totals.ItemCount}, attrs...)...)
	for _, f := range fns {
		f(snap)
	}
}

func (s *Store) apply(fn func()) (Snapshot, []func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()

	fn()

	fns := make([]func(Snapshot), len(s.listeners))
	for i, l := range s.listeners {
		fns[i] = l.fn
	}
	return s.snapshotLocked(), fns
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Cart:   slices.Clone(s.lines),
		User:   s.user,
		Status: s.status,
		Totals: s.pricing.Totals(s.lines),
	}
}

// mustBeOpen is called with s.mu held.
func (s *Store) mustBeOpen() {
	if s.closed {
		panic(ErrClosed)
	}
}
