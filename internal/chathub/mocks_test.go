package chathub_test

import (
	"sync"

	"matchmeet/backend/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockStore is a testify mock of the chathub.MessageStore interface.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreateMessage(senderID, roomID uint, content string) (*models.Message, error) {
	args := m.Called(senderID, roomID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

func (m *MockStore) ListRoomMessages(roomID uint) ([]models.Message, error) {
	args := m.Called(roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MockStore) EvictRoomIfEmpty(roomID uint) error {
	args := m.Called(roomID)
	return args.Error(0)
}

// loopbackBroker is an in-process Broker: published events come straight
// back on the subscription feed, like a single-node Redis would deliver.
type loopbackBroker struct {
	mu        sync.Mutex
	feed      chan models.GroupEvent
	published []models.GroupEvent
}

func newLoopbackBroker() *loopbackBroker {
	return &loopbackBroker{feed: make(chan models.GroupEvent, 64)}
}

func (b *loopbackBroker) PublishEvent(groupKey string, event models.ChatEvent) error {
	b.mu.Lock()
	b.published = append(b.published, models.GroupEvent{GroupKey: groupKey, Event: event})
	b.mu.Unlock()
	b.feed <- models.GroupEvent{GroupKey: groupKey, Event: event}
	return nil
}

func (b *loopbackBroker) SubscribeEvents() (<-chan models.GroupEvent, func()) {
	return b.feed, func() {}
}

func (b *loopbackBroker) publishedEvents() []models.GroupEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.GroupEvent, len(b.published))
	copy(out, b.published)
	return out
}

// mockSession implements chathub.Session with a buffered receive channel.
type mockSession struct {
	id       string
	groupKey string
	Recv     chan models.ChatEvent
}

func newMockSession(id, groupKey string, buffer int) *mockSession {
	return &mockSession{id: id, groupKey: groupKey, Recv: make(chan models.ChatEvent, buffer)}
}

func (s *mockSession) GetSessionID() string                    { return s.id }
func (s *mockSession) GetGroupKey() string                     { return s.groupKey }
func (s *mockSession) GetSendChannel() chan<- models.ChatEvent { return s.Recv }
