package handler

import (
	"errors"
	"net/http"
	"strconv"

	"matchmeet/backend/internal/models"
	"matchmeet/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// CreateRoom returns the shared two-party room between the caller and the
// target user, creating it on first contact. Idempotent: repeated calls for
// the same pair, in either order, return the same room.
func (h *Handler) CreateRoom(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	me, err := h.Storage.GetUserByID(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
		return
	}
	opposite, err := h.Storage.GetUserByID(uint(targetID))
	if errors.Is(err, storage.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve user"})
		return
	}

	room, err := h.Storage.GetOrCreateRoomWithMembers([]models.User{*me, *opposite})
	if errors.Is(err, storage.ErrInvalidMembership) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "room must have exactly two distinct members"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create chat room"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"room_id": room.ID})
}

// ListRooms returns the caller's rooms with the opposite member and last
// message resolved. A room that lost its second member is a data-integrity
// error and surfaces as a server failure, never as a placeholder user.
func (h *Handler) ListRooms(c *gin.Context) {
	overviews, err := h.Storage.ListRoomsForUser(currentUserID(c))
	if errors.Is(err, storage.ErrNoOppositeUser) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "room membership is corrupted"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list rooms"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": overviews})
}
