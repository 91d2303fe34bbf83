package storage

import (
	"errors"
	"log"
	"time"

	"matchmeet/backend/internal/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// CreateUserWithProfile creates the user together with their profile and a
// freshly coded verification row in one transaction. The caller is
// responsible for mailing the returned verification code.
func (s *Service) CreateUserWithProfile(user *models.User, bio string, interests []string) (*models.UserVerification, error) {
	var verification models.UserVerification

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		profile := models.UserProfile{
			UserID:    user.ID,
			Age:       user.Age(time.Now()),
			Bio:       bio,
			Interests: pq.StringArray(interests),
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}

		verification = models.UserVerification{UserID: user.ID}
		verification.Refresh(time.Now())
		return tx.Create(&verification).Error
	})
	if err != nil {
		log.Printf("ERROR: failed to create user %s: %v", user.Email, err)
		return nil, err
	}
	return &verification, nil
}

func (s *Service) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// VerifyUser checks the mailed code for the account and, on success, marks
// the user verified and clears the pending code.
func (s *Service) VerifyUser(email, code string, now time.Time) error {
	user, err := s.GetUserByEmail(email)
	if err != nil {
		return err
	}

	var verification models.UserVerification
	if err := s.DB.Where("user_id = ?", user.ID).First(&verification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVerificationMismatch
		}
		return err
	}

	if verification.IsExpired(now) {
		return ErrVerificationExpired
	}
	if verification.Code == "" || verification.Code != code {
		return ErrVerificationMismatch
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(user).Update("verified", true).Error; err != nil {
			return err
		}
		return tx.Model(&verification).Update("code", "").Error
	})
}

// RefreshVerification issues a new code for an unverified user, replacing
// any previous one.
func (s *Service) RefreshVerification(userID uint, now time.Time) (*models.UserVerification, error) {
	var verification models.UserVerification
	err := s.DB.Where("user_id = ?", userID).First(&verification).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	verification.Refresh(now)
	if err := s.DB.Save(&verification).Error; err != nil {
		return nil, err
	}
	return &verification, nil
}

func (s *Service) GetProfileByUserID(userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.DB.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *Service) UpdateProfile(profile *models.UserProfile) error {
	return s.DB.Save(profile).Error
}

// ListProfiles pages through browsable profiles, newest first.
func (s *Service) ListProfiles(offset, limit int) ([]models.UserProfile, error) {
	var profiles []models.UserProfile
	err := s.DB.Preload("User").
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&profiles).Error
	return profiles, err
}
