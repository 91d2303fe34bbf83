package handler_test

import (
	"time"

	"matchmeet/backend/internal/models"
	"matchmeet/backend/internal/storage"

	"github.com/stretchr/testify/mock"
)

// MockStorage is a testify mock of the storage.Storage interface.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) CreateUserWithProfile(user *models.User, bio string, interests []string) (*models.UserVerification, error) {
	args := m.Called(user, bio, interests)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserVerification), args.Error(1)
}

func (m *MockStorage) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) VerifyUser(email, code string, now time.Time) error {
	args := m.Called(email, code, now)
	return args.Error(0)
}

func (m *MockStorage) RefreshVerification(userID uint, now time.Time) (*models.UserVerification, error) {
	args := m.Called(userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserVerification), args.Error(1)
}

func (m *MockStorage) GetProfileByUserID(userID uint) (*models.UserProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockStorage) UpdateProfile(profile *models.UserProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockStorage) ListProfiles(offset, limit int) ([]models.UserProfile, error) {
	args := m.Called(offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserProfile), args.Error(1)
}

func (m *MockStorage) ToggleLike(senderID, receiverID uint) (bool, error) {
	args := m.Called(senderID, receiverID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) LikeOverview(userID uint) (*storage.LikeOverview, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.LikeOverview), args.Error(1)
}

func (m *MockStorage) CreateRecruitment(rec *models.Recruitment) error {
	args := m.Called(rec)
	return args.Error(0)
}

func (m *MockStorage) GetRecruitmentByID(id uint) (*models.Recruitment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recruitment), args.Error(1)
}

func (m *MockStorage) UpdateRecruitment(rec *models.Recruitment) error {
	args := m.Called(rec)
	return args.Error(0)
}

func (m *MockStorage) DeleteRecruitment(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStorage) ListRecruitments(minAge, maxAge, offset, limit int) ([]models.Recruitment, error) {
	args := m.Called(minAge, maxAge, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recruitment), args.Error(1)
}

func (m *MockStorage) GetOrCreateRoomWithMembers(users []models.User) (*models.Room, error) {
	args := m.Called(users)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

func (m *MockStorage) GetRoomByID(roomID uint) (*models.Room, error) {
	args := m.Called(roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

func (m *MockStorage) IsRoomMember(roomID, userID uint) (bool, error) {
	args := m.Called(roomID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) GetOppositeMember(roomID, currentUserID uint) (*models.User, error) {
	args := m.Called(roomID, currentUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) EvictRoomIfEmpty(roomID uint) error {
	args := m.Called(roomID)
	return args.Error(0)
}

func (m *MockStorage) ListRoomsForUser(userID uint) ([]storage.RoomOverview, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.RoomOverview), args.Error(1)
}

func (m *MockStorage) CreateMessage(senderID, roomID uint, content string) (*models.Message, error) {
	args := m.Called(senderID, roomID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

func (m *MockStorage) ListRoomMessages(roomID uint) ([]models.Message, error) {
	args := m.Called(roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MockStorage) RoomHasMessages(roomID uint) (bool, error) {
	args := m.Called(roomID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) PublishEvent(groupKey string, event models.ChatEvent) error {
	args := m.Called(groupKey, event)
	return args.Error(0)
}

func (m *MockStorage) SubscribeEvents() (<-chan models.GroupEvent, func()) {
	args := m.Called()
	return args.Get(0).(<-chan models.GroupEvent), args.Get(1).(func())
}

// MockMailer records verification mails instead of sending them.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendVerificationEmail(to, username, code string) error {
	args := m.Called(to, username, code)
	return args.Error(0)
}
