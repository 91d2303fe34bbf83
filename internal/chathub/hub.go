package chathub

import (
	"log"
	"sync"

	"matchmeet/backend/internal/models"
)

// Broker is the inter-process transport behind the hub: Redis pub/sub in
// production (storage.Service), a loopback in tests.
type Broker interface {
	PublishEvent(groupKey string, event models.ChatEvent) error
	SubscribeEvents() (<-chan models.GroupEvent, func())
}

// Hub is the group broadcast layer. It tracks which sessions are joined to
// which group and fans every event arriving from the broker out to all
// sessions of that group, the sender's own session included. Events always
// take the broker round-trip, so fan-out behaves identically with one
// server process or many.
type Hub struct {
	mu     sync.RWMutex
	groups map[string]map[Session]bool

	broker Broker
	done   chan struct{}
}

func NewHub(broker Broker) *Hub {
	return &Hub{
		groups: make(map[string]map[Session]bool),
		broker: broker,
		done:   make(chan struct{}),
	}
}

// Run consumes the broker subscription until Stop is called. It is the only
// goroutine that dispatches events, which keeps delivery order per group
// consistent with broker order.
func (h *Hub) Run() {
	feed, cancel := h.broker.SubscribeEvents()
	defer cancel()

	log.Println("chat hub started")
	for {
		select {
		case groupEvent, ok := <-feed:
			if !ok {
				log.Println("ERROR: broker subscription closed, hub stopping")
				return
			}
			h.dispatch(groupEvent)
		case <-h.done:
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

// Join registers the session under its group key. Synchronous: once Join
// returns, the session receives every subsequent broadcast to the group.
func (h *Hub) Join(s Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	key := s.GetGroupKey()
	if h.groups[key] == nil {
		h.groups[key] = make(map[Session]bool)
	}
	h.groups[key][s] = true
}

// Leave removes the session from its group, dropping empty groups. It
// blocks until any in-flight dispatch has finished, so after Leave returns
// the hub never touches the session's send channel again.
func (h *Hub) Leave(s Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	key := s.GetGroupKey()
	if members, ok := h.groups[key]; ok {
		delete(members, s)
		if len(members) == 0 {
			delete(h.groups, key)
		}
	}
}

// Broadcast publishes the event to the group through the broker. Delivery
// to the local sessions happens when the event comes back on the
// subscription feed.
func (h *Hub) Broadcast(groupKey string, event models.ChatEvent) error {
	return h.broker.PublishEvent(groupKey, event)
}

func (h *Hub) dispatch(groupEvent models.GroupEvent) {
	if !groupEvent.Event.Valid() {
		log.Printf("WARNING: dropping broadcast with missing fields on %s", groupEvent.GroupKey)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for session := range h.groups[groupEvent.GroupKey] {
		select {
		case session.GetSendChannel() <- groupEvent.Event:
		default:
			// Slow consumer: drop this event for this session only.
			log.Printf("WARNING: dropping event for slow session %s on %s",
				session.GetSessionID(), groupEvent.GroupKey)
		}
	}
}
