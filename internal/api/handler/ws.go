package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"matchmeet/backend/internal/chathub"
	"matchmeet/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Any origin is accepted; tighten per deployment.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeChatRoom opens a chat session on a room. The room must exist and the
// caller must be one of its two members; both checks happen before the
// upgrade, so an unauthorized connection never reaches the Joined state.
func (h *Handler) ServeChatRoom(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("room_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}
	userID := currentUserID(c)

	if _, err := h.Storage.GetRoomByID(uint(roomID)); err != nil {
		if errors.Is(err, storage.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve room"})
		return
	}

	member, err := h.Storage.IsRoomMember(uint(roomID), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check membership"})
		return
	}
	if !member {
		log.Printf("WARNING: user %d denied access to room %d", userID, roomID)
		c.JSON(http.StatusForbidden, gin.H{"error": "not a member of this room"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade writes its own error response.
		log.Printf("ERROR: failed to upgrade connection for room %d: %v", roomID, err)
		return
	}

	session := chathub.NewWebSocketSession(conn, h.Hub, h.Storage, userID, uint(roomID))
	session.Run()
}
