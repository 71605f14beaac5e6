// Package workspace applies validated mutations to a workspace store and
// answers the queries the presentation layer needs.
package workspace

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/demogorgan123/Club/internal/apperr"
	"github.com/demogorgan123/Club/internal/realtime"
	"github.com/demogorgan123/Club/internal/store"
	"github.com/demogorgan123/Club/pkg/idgen"
)

// DefaultToolCount is how many catalog tools a newly created team starts with.
const DefaultToolCount = 4

// DefaultTimeLayout formats message timestamps.
const DefaultTimeLayout = "03:04 PM"

// Service owns mutations over one store. Every mutation validates fully
// before writing and commits atomically through store.Update.
type Service struct {
	store        *store.Store
	hub          *realtime.Hub
	logger       *zap.Logger
	ids          idgen.Generator
	now          func() time.Time
	timeLayout   string
	defaultTools int
}

// Option configures a Service.
type Option func(*Service)

// WithHub publishes a store-changed event after each successful mutation.
func WithHub(hub *realtime.Hub) Option {
	return func(s *Service) { s.hub = hub }
}

// WithIDs sets the id generator for invited users, tasks, messages and
// direct channels.
func WithIDs(ids idgen.Generator) Option {
	return func(s *Service) { s.ids = ids }
}

// WithClock sets the time source for message timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithTimeLayout sets the display layout of message timestamps.
func WithTimeLayout(layout string) Option {
	return func(s *Service) { s.timeLayout = layout }
}

// WithDefaultTools sets how many catalog tools new teams receive.
func WithDefaultTools(n int) Option {
	return func(s *Service) { s.defaultTools = n }
}

// NewService creates a service over st.
func NewService(st *store.Store, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		store:        st,
		logger:       logger,
		ids:          idgen.UUID{},
		now:          time.Now,
		timeLayout:   DefaultTimeLayout,
		defaultTools: DefaultToolCount,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Store returns the underlying store.
func (s *Service) Store() *store.Store {
	return s.store
}

// update runs fn in a store transaction and publishes the events it returns
// once the transaction commits.
func (s *Service) update(op string, fn func(tx *store.Tx) ([]realtime.Event, error)) error {
	var events []realtime.Event
	err := s.store.Update(func(tx *store.Tx) error {
		evs, err := fn(tx)
		if err != nil {
			return err
		}
		events = evs
		return nil
	})
	if err != nil {
		err = classify(op, err)
		s.logger.Debug("operation rejected", zap.String("op", op), zap.Error(err))
		return err
	}
	if s.hub != nil {
		for _, ev := range events {
			s.hub.Publish(ev)
		}
	}
	return nil
}

// classify maps store errors onto the workspace error kinds.
func classify(op string, err error) error {
	var aerr *apperr.Error
	switch {
	case errors.As(err, &aerr):
		return err
	case errors.Is(err, store.ErrNotFound):
		return apperr.NotFound(op, "%v", err)
	case errors.Is(err, store.ErrConflict):
		return apperr.Validation(op, "%v", err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// freshID draws ids until taken reports false. Sequence ids can collide with
// ids that were seeded by hand or issued by another generator.
func (s *Service) freshID(prefix string, taken func(id string) bool) string {
	id := s.ids.NewID(prefix)
	for taken(id) {
		id = s.ids.NewID(prefix)
	}
	return id
}

func created(kind realtime.EntityKind, id, scope string) realtime.Event {
	return realtime.Event{Kind: kind, ID: id, Op: realtime.OpCreated, Scope: scope}
}

func updated(kind realtime.EntityKind, id, scope string) realtime.Event {
	return realtime.Event{Kind: kind, ID: id, Op: realtime.OpUpdated, Scope: scope}
}
