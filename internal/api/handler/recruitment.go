package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"matchmeet/backend/internal/models"
	"matchmeet/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

const (
	recruitmentPageSize = 10
	minRecruitmentAge   = 18
)

type recruitmentRequest struct {
	Title   string `json:"title" binding:"required,max=100"`
	Content string `json:"content" binding:"required"`
}

type recruitmentView struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

func toRecruitmentView(rec *models.Recruitment) recruitmentView {
	return recruitmentView{
		ID:        rec.ID,
		UserID:    rec.UserID,
		Username:  rec.User.Username,
		Title:     rec.Title,
		Content:   rec.Content,
		CreatedAt: rec.CreatedAt.Format(time.RFC3339),
	}
}

// ListRecruitments pages through the board newest first. min_age and max_age
// narrow the timeline to authors inside the age bracket; both are optional.
func (h *Handler) ListRecruitments(c *gin.Context) {
	minAge, err := parseAgeBound(c.Query("min_age"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	maxAge, err := parseAgeBound(c.Query("max_age"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if minAge > 0 && maxAge > 0 && minAge > maxAge {
		c.JSON(http.StatusBadRequest, gin.H{"error": "min_age must not exceed max_age"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	recruitments, err := h.Storage.ListRecruitments(minAge, maxAge, (page-1)*recruitmentPageSize, recruitmentPageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list recruitments"})
		return
	}

	views := make([]recruitmentView, 0, len(recruitments))
	for i := range recruitments {
		views = append(views, toRecruitmentView(&recruitments[i]))
	}
	c.JSON(http.StatusOK, gin.H{"recruitments": views, "page": page})
}

func parseAgeBound(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	age, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("age bound must be a number")
	}
	if age < minRecruitmentAge {
		return 0, errors.New("age bound must be 18 or over")
	}
	return age, nil
}

func (h *Handler) CreateRecruitment(c *gin.Context) {
	var req recruitmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec := &models.Recruitment{UserID: currentUserID(c), Title: req.Title, Content: req.Content}
	if err := h.Storage.CreateRecruitment(rec); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create recruitment"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"recruitment_id": rec.ID})
}

func (h *Handler) GetRecruitment(c *gin.Context) {
	rec, ok := h.recruitmentByParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toRecruitmentView(rec))
}

// UpdateRecruitment rewrites a post. Only the author may edit it.
func (h *Handler) UpdateRecruitment(c *gin.Context) {
	rec, ok := h.recruitmentByParam(c)
	if !ok {
		return
	}
	if rec.UserID != currentUserID(c) {
		log.Printf("WARNING: user %d is not the owner of recruitment %d", currentUserID(c), rec.ID)
		c.JSON(http.StatusForbidden, gin.H{"error": "not the owner of this recruitment"})
		return
	}

	var req recruitmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec.Title = req.Title
	rec.Content = req.Content
	if err := h.Storage.UpdateRecruitment(rec); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update recruitment"})
		return
	}
	c.JSON(http.StatusOK, toRecruitmentView(rec))
}

// DeleteRecruitment removes a post. Only the author may delete it.
func (h *Handler) DeleteRecruitment(c *gin.Context) {
	rec, ok := h.recruitmentByParam(c)
	if !ok {
		return
	}
	if rec.UserID != currentUserID(c) {
		log.Printf("WARNING: user %d is not the owner of recruitment %d", currentUserID(c), rec.ID)
		c.JSON(http.StatusForbidden, gin.H{"error": "not the owner of this recruitment"})
		return
	}

	if err := h.Storage.DeleteRecruitment(rec.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete recruitment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recruitment deleted"})
}

func (h *Handler) recruitmentByParam(c *gin.Context) (*models.Recruitment, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recruitment id"})
		return nil, false
	}

	rec, err := h.Storage.GetRecruitmentByID(uint(id))
	if errors.Is(err, storage.ErrRecruitmentNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "recruitment not found"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load recruitment"})
		return nil, false
	}
	return rec, true
}
