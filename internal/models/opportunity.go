// internal/models/opportunity.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Opportunity struct {
	BaseModel
	CompanyID         uuid.UUID         `json:"company_id" gorm:"type:uuid;not null;index"`
	CompanyName       string            `json:"company_name" gorm:"size:255"`
	Title             string            `json:"title" gorm:"size:255;not null"`
	Description       string            `json:"description" gorm:"type:text;not null"`
	RequiredExpertise pq.StringArray    `json:"required_expertise" gorm:"type:text[];not null"`
	TimeCommitment    string            `json:"time_commitment" gorm:"size:100;not null"`
	Compensation      string            `json:"compensation" gorm:"size:255;not null"`
	Status            OpportunityStatus `json:"status" gorm:"type:varchar(20);default:'open';index"`
	ViewCount         int64             `json:"view_count" gorm:"default:0"`

	// ApplicantCount caches count(applications where opportunity_id = id). It is
	// reconciled after application mutations and before listing reads; the
	// application rows stay the source of truth.
	ApplicantCount int64 `json:"applicant_count" gorm:"default:0"`

	// Relationships
	Company      User          `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	Applications []Application `json:"applications,omitempty" gorm:"foreignKey:OpportunityID"`
}
