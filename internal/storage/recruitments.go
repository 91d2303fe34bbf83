package storage

import (
	"errors"

	"matchmeet/backend/internal/models"

	"gorm.io/gorm"
)

func (s *Service) CreateRecruitment(rec *models.Recruitment) error {
	return s.DB.Create(rec).Error
}

func (s *Service) GetRecruitmentByID(id uint) (*models.Recruitment, error) {
	var rec models.Recruitment
	err := s.DB.Preload("User").First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecruitmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Service) UpdateRecruitment(rec *models.Recruitment) error {
	return s.DB.Save(rec).Error
}

func (s *Service) DeleteRecruitment(id uint) error {
	return s.DB.Unscoped().Delete(&models.Recruitment{}, id).Error
}

// ListRecruitments returns board posts newest first, optionally narrowed to
// authors whose profile age falls inside the bracket. A zero bound means
// unbounded on that side.
func (s *Service) ListRecruitments(minAge, maxAge, offset, limit int) ([]models.Recruitment, error) {
	q := s.DB.Preload("User").Order("recruitments.created_at desc")
	if minAge > 0 || maxAge > 0 {
		q = q.Joins("JOIN user_profiles ON user_profiles.user_id = recruitments.user_id")
		if minAge > 0 {
			q = q.Where("user_profiles.age >= ?", minAge)
		}
		if maxAge > 0 {
			q = q.Where("user_profiles.age <= ?", maxAge)
		}
	}

	var recruitments []models.Recruitment
	err := q.Offset(offset).Limit(limit).Find(&recruitments).Error
	return recruitments, err
}
