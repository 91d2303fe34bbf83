package storage

import (
	"encoding/json"
	"log"

	"matchmeet/backend/internal/models"
)

// groupPattern matches every room's broadcast channel (see models.GroupKey).
const groupPattern = "chat:*"

// PublishEvent fans a chat event out to every server process subscribed to
// the group's Redis channel, this one included.
func (s *Service) PublishEvent(groupKey string, event models.ChatEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return s.Redis.Publish(s.Ctx, groupKey, payload).Err()
}

// SubscribeEvents opens a pattern subscription over all room channels and
// returns a feed of decoded group events plus a cancel func. Payloads that
// fail to decode are logged and skipped.
func (s *Service) SubscribeEvents() (<-chan models.GroupEvent, func()) {
	pubsub := s.Redis.PSubscribe(s.Ctx, groupPattern)
	out := make(chan models.GroupEvent)

	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			var event models.ChatEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("ERROR: undecodable pub/sub payload on %s: %v", msg.Channel, err)
				continue
			}
			out <- models.GroupEvent{GroupKey: msg.Channel, Event: event}
		}
	}()

	return out, func() { pubsub.Close() }
}
