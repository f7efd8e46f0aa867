// internal/store/connection_store.go
package store

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/advisorbridge/advisorbridge-backend/internal/models"
)

type gormConnectionStore struct {
	db *gorm.DB
}

func NewConnectionStore(db *gorm.DB) ConnectionStore {
	return &gormConnectionStore{db: db}
}

func (s *gormConnectionStore) ListByLP(lpID uuid.UUID) ([]models.Connection, error) {
	var conns []models.Connection
	if err := s.db.Where("lp_id = ?", lpID).
		Order("created_at DESC").Find(&conns).Error; err != nil {
		return nil, err
	}
	return conns, nil
}

func (s *gormConnectionStore) ListByCompany(companyID uuid.UUID) ([]models.Connection, error) {
	var conns []models.Connection
	if err := s.db.Where("company_id = ?", companyID).
		Order("created_at DESC").Find(&conns).Error; err != nil {
		return nil, err
	}
	return conns, nil
}

func (s *gormConnectionStore) CountActiveByLP(lpID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.Model(&models.Connection{}).
		Where("lp_id = ? AND status = ?", lpID, models.ConnectionStatusActive).
		Count(&count).Error
	return count, err
}

func (s *gormConnectionStore) CountActiveByCompany(companyID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.Model(&models.Connection{}).
		Where("company_id = ? AND status = ?", companyID, models.ConnectionStatusActive).
		Count(&count).Error
	return count, err
}

func (s *gormConnectionStore) Count() (int64, error) {
	var count int64
	err := s.db.Model(&models.Connection{}).Count(&count).Error
	return count, err
}
