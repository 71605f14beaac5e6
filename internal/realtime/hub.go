package realtime

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBuffer is the per-subscriber event queue length.
const DefaultBuffer = 64

// EntityKind names the kind of entity an event refers to.
type EntityKind string

const (
	KindUser    EntityKind = "user"
	KindTeam    EntityKind = "team"
	KindChannel EntityKind = "channel"
	KindMessage EntityKind = "message"
	KindTask    EntityKind = "task"
	KindTools   EntityKind = "tools"
)

// Op is what happened to the entity.
type Op string

const (
	OpCreated Op = "created"
	OpUpdated Op = "updated"
)

// Event tells subscribers that the store changed so they can re-query.
// Scope carries the owning channel or team id when there is one.
type Event struct {
	Kind  EntityKind `json:"kind"`
	ID    string     `json:"id"`
	Op    Op         `json:"op"`
	Scope string     `json:"scope,omitempty"`
}

// Subscription receives events on C until Close is called.
type Subscription struct {
	ID    string
	C     <-chan Event
	send  chan Event
	kinds map[EntityKind]struct{}
	hub   *Hub
	once  sync.Once
}

// Close detaches the subscription and closes C.
func (s *Subscription) Close() {
	s.once.Do(func() { s.hub.unsubscribe(s) })
}

func (s *Subscription) wants(kind EntityKind) bool {
	if len(s.kinds) == 0 {
		return true
	}
	_, ok := s.kinds[kind]
	return ok
}

// Hub fans store-changed events out to in-process subscribers.
// Delivery never blocks the publisher: a subscriber whose buffer is full
// misses the event.
type Hub struct {
	subs   map[string]*Subscription
	mu     sync.RWMutex
	logger *zap.Logger
}

// NewHub creates an event hub.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		subs:   make(map[string]*Subscription),
		logger: logger,
	}
}

// Subscribe registers a subscriber for the given kinds, or all kinds if none
// are given. buffer <= 0 selects DefaultBuffer.
func (h *Hub) Subscribe(buffer int, kinds ...EntityKind) *Subscription {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	ch := make(chan Event, buffer)
	s := &Subscription{
		ID:    uuid.New().String(),
		C:     ch,
		send:  ch,
		kinds: make(map[EntityKind]struct{}, len(kinds)),
		hub:   h,
	}
	for _, k := range kinds {
		s.kinds[k] = struct{}{}
	}

	h.mu.Lock()
	h.subs[s.ID] = s
	count := len(h.subs)
	h.mu.Unlock()
	h.logger.Debug("subscriber joined", zap.String("subscriber_id", s.ID), zap.Int("subscribers", count))
	return s
}

func (h *Hub) unsubscribe(s *Subscription) {
	h.mu.Lock()
	delete(h.subs, s.ID)
	close(s.send)
	count := len(h.subs)
	h.mu.Unlock()
	h.logger.Debug("subscriber left", zap.String("subscriber_id", s.ID), zap.Int("subscribers", count))
}

// Publish delivers ev to every interested subscriber.
func (h *Hub) Publish(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, s := range h.subs {
		if !s.wants(ev.Kind) {
			continue
		}
		select {
		case s.send <- ev:
		default:
			h.logger.Debug("subscriber buffer full, event dropped",
				zap.String("subscriber_id", s.ID),
				zap.String("kind", string(ev.Kind)),
				zap.String("id", ev.ID),
			)
		}
	}
}

// SubscriberCount returns the number of attached subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
