package chathub

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"matchmeet/backend/internal/models"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096

	// sendBuffer bounds the per-session outbound queue; the hub drops
	// events for a session whose buffer is full.
	sendBuffer = 256
)

// WebSocketSession implements Session over a gorilla websocket connection.
// Its lifecycle is Connecting (handler resolves room, authorizes, upgrades)
// → Joined (pumps running, history replayed, frames relayed) → Closed (left
// the hub, room evicted if empty). Closing the connection is the only
// cancellation signal; teardown runs exactly once, from the read pump.
type WebSocketSession struct {
	ID       string
	UserID   uint
	RoomID   uint
	groupKey string

	Conn  *websocket.Conn
	Hub   *Hub
	Store MessageStore
	Send  chan models.ChatEvent

	// sendMu serializes enqueue against close: history replay may still be
	// running on the handler goroutine when the read pump tears down.
	sendMu     sync.Mutex
	sendClosed bool
	closeOnce  sync.Once
}

func NewWebSocketSession(conn *websocket.Conn, hub *Hub, store MessageStore, userID, roomID uint) *WebSocketSession {
	return &WebSocketSession{
		ID:       uuid.NewString(),
		UserID:   userID,
		RoomID:   roomID,
		groupKey: models.GroupKey(roomID),
		Conn:     conn,
		Hub:      hub,
		Store:    store,
		Send:     make(chan models.ChatEvent, sendBuffer),
	}
}

func (s *WebSocketSession) GetSessionID() string                    { return s.ID }
func (s *WebSocketSession) GetGroupKey() string                     { return s.groupKey }
func (s *WebSocketSession) GetSendChannel() chan<- models.ChatEvent { return s.Send }

// Run joins the broadcast group, starts both pumps, and then replays the
// room history. Joining before the history query means a message persisted
// at the boundary is delivered live rather than lost; it may then also
// appear in the replay (see ReplayHistory).
func (s *WebSocketSession) Run() {
	s.Hub.Join(s)
	go s.writePump()
	go s.readPump()
	s.ReplayHistory()
}

// ReplayHistory enqueues the room's full history, oldest first, onto the
// session's outbound queue. Best-effort per message: a frame that cannot be
// queued is logged and skipped without aborting the connection. A session
// closed mid-replay stops the replay.
func (s *WebSocketSession) ReplayHistory() {
	history, err := s.Store.ListRoomMessages(s.RoomID)
	if err != nil {
		log.Printf("ERROR: session %s failed to load history for room %d: %v", s.ID, s.RoomID, err)
		return
	}
	for i := range history {
		if !s.enqueue(models.NewChatEvent(&history[i])) {
			return
		}
	}
}

// enqueue puts one event on the outbound queue. Safe to call concurrently
// with close: once the session is closed it reports false and the caller
// stops. A full queue drops the event but keeps the session alive.
func (s *WebSocketSession) enqueue(event models.ChatEvent) bool {
	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	if s.sendClosed {
		return false
	}
	select {
	case s.Send <- event:
	default:
		log.Printf("WARNING: session %s outbound queue full, dropping frame for room %d", s.ID, s.RoomID)
	}
	return true
}

// close tears the session down: leave the group, evict the room if it holds
// no messages, stop the write pump. Safe to reach from either pump.
func (s *WebSocketSession) close() {
	s.closeOnce.Do(func() {
		s.Hub.Leave(s)
		if err := s.Store.EvictRoomIfEmpty(s.RoomID); err != nil {
			log.Printf("ERROR: session %s failed to evict room %d: %v", s.ID, s.RoomID, err)
		}
		s.sendMu.Lock()
		s.sendClosed = true
		close(s.Send)
		s.sendMu.Unlock()
	})
}

func (s *WebSocketSession) readPump() {
	defer func() {
		s.close()
		s.Conn.Close()
	}()

	s.Conn.SetReadLimit(maxMessageSize)
	s.Conn.SetReadDeadline(time.Now().Add(pongWait))
	s.Conn.SetPongHandler(func(string) error {
		s.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := s.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("session %s read error: %v", s.ID, err)
			}
			break
		}
		s.HandleFrame(raw)
	}
}

// HandleFrame processes one inbound frame: validate, persist, broadcast.
// Every failure path drops the frame and keeps the connection open; the
// peer is never sent an error frame.
func (s *WebSocketSession) HandleFrame(raw []byte) {
	var frame models.InboundFrame
	if err := json.Unmarshal(raw, &frame); err != nil {
		log.Printf("WARNING: session %s sent undecodable frame: %v", s.ID, err)
		return
	}

	if field := frame.MissingField(); field != "" {
		log.Printf("WARNING: session %s frame missing required field %q", s.ID, field)
		return
	}

	content := frame.TrimmedMessage()
	if content == "" {
		log.Printf("WARNING: session %s sent empty message", s.ID)
		return
	}

	msg, err := s.Store.CreateMessage(*frame.SenderID, *frame.RoomID, content)
	if err != nil {
		log.Printf("ERROR: session %s failed to persist message: %v", s.ID, err)
		return
	}

	if err := s.Hub.Broadcast(models.GroupKey(msg.RoomID), models.NewChatEvent(msg)); err != nil {
		log.Printf("ERROR: session %s failed to broadcast message %d: %v", s.ID, msg.ID, err)
	}
}

func (s *WebSocketSession) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.Conn.Close()
	}()

	for {
		select {
		case event, ok := <-s.Send:
			s.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				s.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			// One event per websocket frame.
			payload, err := json.Marshal(event)
			if err != nil {
				log.Printf("ERROR: session %s failed to encode event: %v", s.ID, err)
				continue
			}
			if err := s.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				log.Printf("session %s write error: %v", s.ID, err)
				return
			}

		case <-ticker.C:
			s.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
