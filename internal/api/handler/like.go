package handler

import (
	"errors"
	"net/http"
	"strconv"

	"matchmeet/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// ToggleLike likes the receiver, or withdraws an existing like. Two likes
// in opposite directions make the pair show up as matched.
func (h *Handler) ToggleLike(c *gin.Context) {
	receiverID, err := strconv.ParseUint(c.Param("receiver_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid receiver id"})
		return
	}

	senderID := currentUserID(c)
	if senderID == uint(receiverID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot like yourself"})
		return
	}

	liked, err := h.Storage.ToggleLike(senderID, uint(receiverID))
	if errors.Is(err, storage.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle like"})
		return
	}

	status := "unliked"
	if liked {
		status = "liked"
	}
	c.JSON(http.StatusOK, gin.H{"like_status": status})
}

// LikeOverview returns the caller's matches plus pending likes either way.
func (h *Handler) LikeOverview(c *gin.Context) {
	overview, err := h.Storage.LikeOverview(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load likes"})
		return
	}
	c.JSON(http.StatusOK, overview)
}
