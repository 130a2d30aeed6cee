// Package board runs the order ledger for page-view sessions. Every mutation
// loads the session's ledger, applies the change, stores the new ledger and
// recomputes the derived views before returning them.
package board

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"orderboard/pkg/aggregate"
	"orderboard/pkg/logger"
	"orderboard/pkg/order"
	"orderboard/pkg/otel"
)

// View is everything the presentation layer renders for one session.
type View struct {
	Customers     order.Ledger      `json:"customers"`
	Totals        []aggregate.Total `json:"totals"`
	CustomerNames []string          `json:"customerNames"`
	ItemNames     []string          `json:"itemNames"`
}

// NewView derives all views from the ledger.
func NewView(l order.Ledger) View {
	if l == nil {
		l = order.Ledger{}
	}
	return View{
		Customers:     l,
		Totals:        aggregate.Recompute(l),
		CustomerNames: aggregate.UniqueNames(l),
		ItemNames:     aggregate.UniqueItemNames(l),
	}
}

// Option configures a Service.
type Option func(*Service)

// WithIDFunc overrides the line item id supplier.
func WithIDFunc(fn order.IDFunc) Option {
	return func(s *Service) { s.newID = fn }
}

// WithSessionIDFunc overrides the session id supplier.
func WithSessionIDFunc(fn func() string) Option {
	return func(s *Service) { s.newSession = fn }
}

// WithDemoSeed starts new sessions with the demo ledger.
func WithDemoSeed(seed bool) Option {
	return func(s *Service) { s.seed = seed }
}

// Service serialises ledger mutations and keeps derived views in step.
type Service struct {
	repo       order.Repository
	log        *logger.Logger
	newID      order.IDFunc
	newSession func() string
	seed       bool

	mu sync.Mutex
}

// New creates a Service backed by repo.
func New(repo order.Repository, log *logger.Logger, opts ...Option) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	s := &Service{
		repo:       repo,
		log:        log,
		newID:      uuid.NewString,
		newSession: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	return s
}

// Open starts a new session and returns its id and initial view.
func (s *Service) Open(ctx context.Context) (string, View, error) {
	ctx, span := otel.AddSpan(ctx, "board.open")
	defer span.End()

	var l order.Ledger
	if s.seed {
		l = DemoLedger(s.newID)
	}
	id := s.newSession()
	if err := s.repo.Put(ctx, id, l); err != nil {
		return "", View{}, fmt.Errorf("store ledger: %w", err)
	}
	s.log.Info(ctx, "session opened", "session", id, "seeded", s.seed)
	return id, NewView(l), nil
}

// Close discards the session.
func (s *Service) Close(ctx context.Context, session string) error {
	ctx, span := otel.AddSpan(ctx, "board.close")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Delete(ctx, session); err != nil {
		return fmt.Errorf("delete ledger: %w", err)
	}
	s.log.Info(ctx, "session closed", "session", session)
	return nil
}

// View returns the current view of the session.
func (s *Service) View(ctx context.Context, session string) (View, error) {
	ctx, span := otel.AddSpan(ctx, "board.view")
	defer span.End()

	l, err := s.repo.Get(ctx, session)
	if err != nil {
		return View{}, fmt.Errorf("load ledger: %w", err)
	}
	return NewView(l), nil
}

// Submit adds one unit of item to customer's order.
func (s *Service) Submit(ctx context.Context, session, customer, item string) (View, error) {
	return s.mutate(ctx, session, "submit", func(l order.Ledger) (order.Ledger, error) {
		return l.Submit(s.newID, customer, item), nil
	}, attribute.String("customer", customer), attribute.String("item", item))
}

// IncreaseQuantity adds one unit to the line item.
func (s *Service) IncreaseQuantity(ctx context.Context, session, itemID string) (View, error) {
	return s.mutate(ctx, session, "increase", func(l order.Ledger) (order.Ledger, error) {
		return l.IncreaseQuantity(itemID)
	}, attribute.String("item.id", itemID))
}

// DecreaseQuantity removes one unit from the line item, stopping at one.
func (s *Service) DecreaseQuantity(ctx context.Context, session, itemID string) (View, error) {
	return s.mutate(ctx, session, "decrease", func(l order.Ledger) (order.Ledger, error) {
		return l.DecreaseQuantity(itemID)
	}, attribute.String("item.id", itemID))
}

// RemoveItem deletes the line item.
func (s *Service) RemoveItem(ctx context.Context, session, itemID string) (View, error) {
	return s.mutate(ctx, session, "remove", func(l order.Ledger) (order.Ledger, error) {
		return l.RemoveItem(itemID)
	}, attribute.String("item.id", itemID))
}

// RemoveAllByName deletes every line item with the given name.
func (s *Service) RemoveAllByName(ctx context.Context, session, name string) (View, error) {
	return s.mutate(ctx, session, "remove_all", func(l order.Ledger) (order.Ledger, error) {
		return l.RemoveAllByName(name)
	}, attribute.String("item", name))
}

// SuggestCustomers filters the session's customer names by query.
func (s *Service) SuggestCustomers(ctx context.Context, session, query string) ([]string, error) {
	v, err := s.View(ctx, session)
	if err != nil {
		return nil, err
	}
	return aggregate.FilterByPrefix(v.CustomerNames, query), nil
}

// SuggestItems filters the session's item names by query.
func (s *Service) SuggestItems(ctx context.Context, session, query string) ([]string, error) {
	v, err := s.View(ctx, session)
	if err != nil {
		return nil, err
	}
	return aggregate.FilterByPrefix(v.ItemNames, query), nil
}

// mutate applies fn to the stored ledger. An unknown item is a no-op that
// returns the unchanged view.
func (s *Service) mutate(ctx context.Context, session, op string, fn func(order.Ledger) (order.Ledger, error), attrs ...attribute.KeyValue) (View, error) {
	ctx, span := otel.AddSpan(ctx, "board."+op, attrs...)
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.repo.Get(ctx, session)
	if err != nil {
		return View{}, fmt.Errorf("load ledger: %w", err)
	}

	next, err := fn(l)
	if errors.Is(err, order.ErrNotFound) {
		s.log.Debug(ctx, "ledger unchanged", "op", op, "session", session, "error", err)
		return NewView(l), nil
	}
	if err != nil {
		return View{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.Put(ctx, session, next); err != nil {
		return View{}, fmt.Errorf("store ledger: %w", err)
	}
	return NewView(next), nil
}
