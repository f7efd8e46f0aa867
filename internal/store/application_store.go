// internal/store/application_store.go
package store

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/advisorbridge/advisorbridge-backend/internal/models"
)

type gormApplicationStore struct {
	db *gorm.DB
}

func NewApplicationStore(db *gorm.DB) ApplicationStore {
	return &gormApplicationStore{db: db}
}

func (s *gormApplicationStore) Create(app *models.Application) error {
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	return s.db.Create(app).Error
}

func (s *gormApplicationStore) GetByID(id uuid.UUID) (*models.Application, error) {
	var app models.Application
	if err := s.db.First(&app, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (s *gormApplicationStore) Save(app *models.Application) error {
	return s.db.Save(app).Error
}

func (s *gormApplicationStore) ListByOpportunity(opportunityID uuid.UUID) ([]models.Application, error) {
	var apps []models.Application
	if err := s.db.Where("opportunity_id = ?", opportunityID).
		Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (s *gormApplicationStore) ListByLP(lpID uuid.UUID) ([]models.Application, error) {
	var apps []models.Application
	if err := s.db.Where("lp_id = ?", lpID).
		Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// ListPage backs the admin oversight listing.
func (s *gormApplicationStore) ListPage(offset, limit int) ([]models.Application, int64, error) {
	var total int64
	if err := s.db.Model(&models.Application{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []models.Application
	if err := s.db.Order("created_at DESC").
		Offset(offset).Limit(limit).Find(&apps).Error; err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

func (s *gormApplicationStore) CountByOpportunity(opportunityID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.Model(&models.Application{}).
		Where("opportunity_id = ?", opportunityID).Count(&count).Error
	return count, err
}

func (s *gormApplicationStore) CountByCompany(companyID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.Model(&models.Application{}).
		Where("company_id = ?", companyID).Count(&count).Error
	return count, err
}

func (s *gormApplicationStore) CountByLPPerStatus(lpID uuid.UUID) (map[models.ApplicationStatus]int64, error) {
	type row struct {
		Status models.ApplicationStatus
		Total  int64
	}
	var rows []row
	if err := s.db.Model(&models.Application{}).
		Select("status, COUNT(*) AS total").
		Where("lp_id = ?", lpID).
		Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[models.ApplicationStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Total
	}
	return counts, nil
}

func (s *gormApplicationStore) Count() (int64, error) {
	var count int64
	err := s.db.Model(&models.Application{}).Count(&count).Error
	return count, err
}

func (s *gormApplicationStore) Exists(lpID, opportunityID uuid.UUID) (bool, error) {
	var app models.Application
	err := s.db.Select("id").
		Where("lp_id = ? AND opportunity_id = ?", lpID, opportunityID).
		First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
