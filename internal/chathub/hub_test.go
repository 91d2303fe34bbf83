package chathub_test

import (
	"testing"
	"time"

	"matchmeet/backend/internal/chathub"
	"matchmeet/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEvent(message, sender string) models.ChatEvent {
	return models.ChatEvent{
		Message:   message,
		Sender:    sender,
		CreatedAt: time.Now().Format(time.RFC3339Nano),
	}
}

func receiveEvent(t *testing.T, ch chan models.ChatEvent) models.ChatEvent {
	t.Helper()
	select {
	case event := <-ch:
		return event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return models.ChatEvent{}
	}
}

// TestHubFanOut verifies that a broadcast reaches every session joined to
// the group, including the sender's own session.
func TestHubFanOut(t *testing.T) {
	broker := newLoopbackBroker()
	hub := chathub.NewHub(broker)
	go hub.Run()
	defer hub.Stop()

	groupKey := models.GroupKey(10)
	sessionA := newMockSession("a", groupKey, 8)
	sessionB := newMockSession("b", groupKey, 8)
	hub.Join(sessionA)
	hub.Join(sessionB)

	event := validEvent("hi", "U1")
	require.NoError(t, hub.Broadcast(groupKey, event))

	assert.Equal(t, event, receiveEvent(t, sessionA.Recv))
	assert.Equal(t, event, receiveEvent(t, sessionB.Recv))
}

// TestHubGroupIsolation verifies that sessions in other rooms see nothing.
func TestHubGroupIsolation(t *testing.T) {
	broker := newLoopbackBroker()
	hub := chathub.NewHub(broker)
	go hub.Run()
	defer hub.Stop()

	sessionA := newMockSession("a", models.GroupKey(10), 8)
	other := newMockSession("c", models.GroupKey(11), 8)
	hub.Join(sessionA)
	hub.Join(other)

	require.NoError(t, hub.Broadcast(models.GroupKey(10), validEvent("hi", "U1")))

	receiveEvent(t, sessionA.Recv)
	select {
	case event := <-other.Recv:
		t.Fatalf("session in another room received %+v", event)
	case <-time.After(50 * time.Millisecond):
	}
}

// TestHubDropsInvalidEvents verifies that an event missing required fields
// is never forwarded.
func TestHubDropsInvalidEvents(t *testing.T) {
	broker := newLoopbackBroker()
	hub := chathub.NewHub(broker)
	go hub.Run()
	defer hub.Stop()

	groupKey := models.GroupKey(10)
	session := newMockSession("a", groupKey, 8)
	hub.Join(session)

	require.NoError(t, hub.Broadcast(groupKey, models.ChatEvent{Message: "hi"}))

	select {
	case event := <-session.Recv:
		t.Fatalf("invalid event was forwarded: %+v", event)
	case <-time.After(50 * time.Millisecond):
	}
}

// TestHubLeaveStopsDelivery verifies that a departed session receives no
// further broadcasts.
func TestHubLeaveStopsDelivery(t *testing.T) {
	broker := newLoopbackBroker()
	hub := chathub.NewHub(broker)
	go hub.Run()
	defer hub.Stop()

	groupKey := models.GroupKey(10)
	session := newMockSession("a", groupKey, 8)
	hub.Join(session)
	hub.Leave(session)

	require.NoError(t, hub.Broadcast(groupKey, validEvent("hi", "U1")))

	select {
	case event := <-session.Recv:
		t.Fatalf("departed session received %+v", event)
	case <-time.After(50 * time.Millisecond):
	}
}

// TestHubSlowSessionDropsEventOnly verifies that a full outbound buffer
// drops the event for that session without affecting the others.
func TestHubSlowSessionDropsEventOnly(t *testing.T) {
	broker := newLoopbackBroker()
	hub := chathub.NewHub(broker)
	go hub.Run()
	defer hub.Stop()

	groupKey := models.GroupKey(10)
	slow := newMockSession("slow", groupKey, 1)
	fast := newMockSession("fast", groupKey, 8)
	hub.Join(slow)
	hub.Join(fast)

	require.NoError(t, hub.Broadcast(groupKey, validEvent("one", "U1")))
	require.NoError(t, hub.Broadcast(groupKey, validEvent("two", "U1")))
	require.NoError(t, hub.Broadcast(groupKey, validEvent("three", "U1")))

	received := []models.ChatEvent{
		receiveEvent(t, fast.Recv),
		receiveEvent(t, fast.Recv),
		receiveEvent(t, fast.Recv),
	}
	assert.Len(t, received, 3)

	// The slow session keeps whatever fit in its buffer, nothing blocked.
	assert.LessOrEqual(t, len(slow.Recv), 1)
}
