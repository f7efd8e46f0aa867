// internal/store/opportunity_store.go
package store

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/advisorbridge/advisorbridge-backend/internal/models"
)

type gormOpportunityStore struct {
	db *gorm.DB
}

func NewOpportunityStore(db *gorm.DB) OpportunityStore {
	return &gormOpportunityStore{db: db}
}

func (s *gormOpportunityStore) Create(opp *models.Opportunity) error {
	if opp.ID == uuid.Nil {
		opp.ID = uuid.New()
	}
	return s.db.Create(opp).Error
}

func (s *gormOpportunityStore) GetByID(id uuid.UUID) (*models.Opportunity, error) {
	var opp models.Opportunity
	if err := s.db.First(&opp, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &opp, nil
}

func (s *gormOpportunityStore) Save(opp *models.Opportunity) error {
	return s.db.Save(opp).Error
}

// Delete removes the row permanently. Opportunities are hard-deleted;
// applications referencing them are left in place.
func (s *gormOpportunityStore) Delete(id uuid.UUID) error {
	return s.db.Unscoped().Delete(&models.Opportunity{}, "id = ?", id).Error
}

func (s *gormOpportunityStore) ListAll() ([]models.Opportunity, error) {
	var opps []models.Opportunity
	if err := s.db.Order("created_at DESC").Find(&opps).Error; err != nil {
		return nil, err
	}
	return opps, nil
}

// ListPage backs the admin oversight listing.
func (s *gormOpportunityStore) ListPage(offset, limit int) ([]models.Opportunity, int64, error) {
	var total int64
	if err := s.db.Model(&models.Opportunity{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var opps []models.Opportunity
	if err := s.db.Order("created_at DESC").
		Offset(offset).Limit(limit).Find(&opps).Error; err != nil {
		return nil, 0, err
	}
	return opps, total, nil
}

func (s *gormOpportunityStore) ListByCompany(companyID uuid.UUID) ([]models.Opportunity, error) {
	var opps []models.Opportunity
	if err := s.db.Where("company_id = ?", companyID).
		Order("created_at DESC").Find(&opps).Error; err != nil {
		return nil, err
	}
	return opps, nil
}

func (s *gormOpportunityStore) CountByCompany(companyID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.Model(&models.Opportunity{}).
		Where("company_id = ?", companyID).Count(&count).Error
	return count, err
}

func (s *gormOpportunityStore) Count() (int64, error) {
	var count int64
	err := s.db.Model(&models.Opportunity{}).Count(&count).Error
	return count, err
}

func (s *gormOpportunityStore) IncrementViewCount(id uuid.UUID) (int64, error) {
	result := s.db.Model(&models.Opportunity{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	var opp models.Opportunity
	if err := s.db.Select("view_count").First(&opp, "id = ?", id).Error; err != nil {
		return 0, err
	}
	return opp.ViewCount, nil
}

func (s *gormOpportunityStore) SetApplicantCount(id uuid.UUID, count int64) error {
	return s.db.Model(&models.Opportunity{}).Where("id = ?", id).
		UpdateColumn("applicant_count", count).Error
}
