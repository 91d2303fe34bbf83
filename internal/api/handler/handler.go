package handler

import (
	"matchmeet/backend/internal/chathub"
	"matchmeet/backend/internal/config"
	"matchmeet/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// Mailer is the outbound-email collaborator the signup flow depends on.
type Mailer interface {
	SendVerificationEmail(to, username, code string) error
}

// Handler wires the HTTP surface to storage, the chat hub, and the mailer.
type Handler struct {
	Storage storage.Storage
	Hub     *chathub.Hub
	Mailer  Mailer
	Config  *config.Config
}

func NewHandler(s storage.Storage, hub *chathub.Hub, mailer Mailer, cfg *config.Config) *Handler {
	return &Handler{Storage: s, Hub: hub, Mailer: mailer, Config: cfg}
}

// Register mounts all routes on the gin engine.
func (h *Handler) Register(r *gin.Engine) {
	r.POST("/signup", h.Signup)
	r.POST("/verify", h.Verify)
	r.POST("/verify/resend", h.ResendVerification)
	r.POST("/login", h.Login)

	authed := r.Group("/", h.AuthRequired())
	authed.GET("/profiles", h.ListProfiles)
	authed.GET("/profile", h.GetProfile)
	authed.PUT("/profile", h.UpdateProfile)
	authed.POST("/likes/:receiver_id", h.ToggleLike)
	authed.GET("/likes", h.LikeOverview)
	authed.GET("/recruitments", h.ListRecruitments)
	authed.POST("/recruitments", h.CreateRecruitment)
	authed.GET("/recruitments/:id", h.GetRecruitment)
	authed.PUT("/recruitments/:id", h.UpdateRecruitment)
	authed.DELETE("/recruitments/:id", h.DeleteRecruitment)
	authed.POST("/rooms/:user_id", h.CreateRoom)
	authed.GET("/rooms", h.ListRooms)
	authed.GET("/ws/chat/:room_id", h.ServeChatRoom)
}
