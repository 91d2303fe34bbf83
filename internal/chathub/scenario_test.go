package chathub_test

import (
	"testing"
	"time"

	"matchmeet/backend/internal/chathub"
	"matchmeet/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestChatScenario walks the whole session flow: U1 opens a session on the
// shared room, gets an empty history, sends one message and receives its
// own broadcast, as does a second session joined to the same room.
func TestChatScenario(t *testing.T) {
	store := new(MockStore)
	broker := newLoopbackBroker()
	hub := chathub.NewHub(broker)
	go hub.Run()
	defer hub.Stop()

	sessionU1 := chathub.NewWebSocketSession(nil, hub, store, 1, 10)
	sessionU2 := chathub.NewWebSocketSession(nil, hub, store, 2, 10)
	hub.Join(sessionU1)
	hub.Join(sessionU2)

	// Empty history for a fresh room.
	store.On("ListRoomMessages", uint(10)).Return([]models.Message{}, nil).Once()
	sessionU1.ReplayHistory()
	assert.Empty(t, sessionU1.Send)

	created := persistedMessage(1, 10, 1, "hi", "U1", time.Now())
	store.On("CreateMessage", uint(1), uint(10), "hi").Return(&created, nil).Once()

	sessionU1.HandleFrame([]byte(`{"sender_id":1,"room_id":10,"message":"hi"}`))

	for _, session := range []*chathub.WebSocketSession{sessionU1, sessionU2} {
		event := receiveEvent(t, session.Send)
		assert.Equal(t, "hi", event.Message)
		assert.Equal(t, "U1", event.Sender)
		require.NotEmpty(t, event.CreatedAt)
		_, err := time.Parse(time.RFC3339Nano, event.CreatedAt)
		assert.NoError(t, err)
	}

	store.AssertExpectations(t)
}
