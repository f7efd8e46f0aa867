// internal/models/application.go
package models

import (
	"github.com/google/uuid"
)

// Application is an LP's request to be considered for an opportunity. The name,
// email, title and company fields are snapshots taken at submission time and
// are never refreshed afterwards, so the record preserves what the applicant
// actually saw.
type Application struct {
	BaseModel
	LPID             uuid.UUID         `json:"lp_id" gorm:"type:uuid;not null;index:idx_applications_lp_opportunity,unique"`
	LPName           string            `json:"lp_name" gorm:"size:255"`
	LPEmail          string            `json:"lp_email" gorm:"size:255"`
	OpportunityID    uuid.UUID         `json:"opportunity_id" gorm:"type:uuid;not null;index:idx_applications_lp_opportunity,unique"`
	OpportunityTitle string            `json:"opportunity_title" gorm:"size:255"`
	CompanyID        uuid.UUID         `json:"company_id" gorm:"type:uuid;not null;index"`
	CompanyName      string            `json:"company_name" gorm:"size:255"`
	Status           ApplicationStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`

	// Relationships
	LP          User        `json:"lp,omitempty" gorm:"foreignKey:LPID"`
	Opportunity Opportunity `json:"opportunity,omitempty" gorm:"foreignKey:OpportunityID"`
}
