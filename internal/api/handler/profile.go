package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

const defaultPageSize = 20

// ListProfiles pages through browsable profiles.
func (h *Handler) ListProfiles(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if err != nil || limit <= 0 || limit > 100 {
		limit = defaultPageSize
	}

	profiles, err := h.Storage.ListProfiles(offset, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list profiles"})
		return
	}

	type profileView struct {
		UserID    uint     `json:"user_id"`
		Username  string   `json:"username"`
		Age       int      `json:"age"`
		Bio       string   `json:"bio"`
		Interests []string `json:"interests"`
	}
	views := make([]profileView, 0, len(profiles))
	for _, p := range profiles {
		views = append(views, profileView{
			UserID:    p.UserID,
			Username:  p.User.Username,
			Age:       p.Age,
			Bio:       p.Bio,
			Interests: p.Interests,
		})
	}
	c.JSON(http.StatusOK, gin.H{"profiles": views, "offset": offset, "limit": limit})
}

func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.Storage.GetProfileByUserID(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

type updateProfileRequest struct {
	Bio       *string  `json:"bio"`
	Interests []string `json:"interests"`
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.Storage.GetProfileByUserID(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}

	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Interests != nil {
		profile.Interests = pq.StringArray(req.Interests)
	}
	if err := h.Storage.UpdateProfile(profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}
