package storage

import (
	"context"
	"time"

	"matchmeet/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Storage is everything the handlers and the chat hub need from the
// persistence layer. Service implements it over PostgreSQL and Redis.
type Storage interface {
	// Users & verification
	CreateUserWithProfile(user *models.User, bio string, interests []string) (*models.UserVerification, error)
	GetUserByID(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	VerifyUser(email, code string, now time.Time) error
	RefreshVerification(userID uint, now time.Time) (*models.UserVerification, error)

	// Profiles
	GetProfileByUserID(userID uint) (*models.UserProfile, error)
	UpdateProfile(profile *models.UserProfile) error
	ListProfiles(offset, limit int) ([]models.UserProfile, error)

	// Likes
	ToggleLike(senderID, receiverID uint) (liked bool, err error)
	LikeOverview(userID uint) (*LikeOverview, error)

	// Recruitment board
	CreateRecruitment(rec *models.Recruitment) error
	GetRecruitmentByID(id uint) (*models.Recruitment, error)
	UpdateRecruitment(rec *models.Recruitment) error
	DeleteRecruitment(id uint) error
	ListRecruitments(minAge, maxAge, offset, limit int) ([]models.Recruitment, error)

	// Room directory
	GetOrCreateRoomWithMembers(users []models.User) (*models.Room, error)
	GetRoomByID(roomID uint) (*models.Room, error)
	IsRoomMember(roomID, userID uint) (bool, error)
	GetOppositeMember(roomID, currentUserID uint) (*models.User, error)
	EvictRoomIfEmpty(roomID uint) error
	ListRoomsForUser(userID uint) ([]RoomOverview, error)

	// Message store
	CreateMessage(senderID, roomID uint, content string) (*models.Message, error)
	ListRoomMessages(roomID uint) ([]models.Message, error)
	RoomHasMessages(roomID uint) (bool, error)

	// Group broadcast transport
	PublishEvent(groupKey string, event models.ChatEvent) error
	SubscribeEvents() (<-chan models.GroupEvent, func())
}

// Service is the production Storage implementation.
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

func NewService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}
