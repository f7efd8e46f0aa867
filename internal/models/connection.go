// internal/models/connection.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Connection is an established advisory relationship between an LP and a
// company. This service only reads connections (dashboard aggregation); they
// are created and mutated elsewhere.
type Connection struct {
	BaseModel
	LPID           uuid.UUID        `json:"lp_id" gorm:"type:uuid;not null;index"`
	CompanyID      uuid.UUID        `json:"company_id" gorm:"type:uuid;not null;index"`
	OpportunityID  *uuid.UUID       `json:"opportunity_id,omitempty" gorm:"type:uuid"`
	Status         ConnectionStatus `json:"status" gorm:"type:varchar(20);default:'active';index"`
	MeetingCadence string           `json:"meeting_cadence,omitempty" gorm:"size:100"`
	StartedAt      *time.Time       `json:"started_at"`
	Notes          JSONB            `json:"notes,omitempty" gorm:"type:jsonb"`

	// Relationships
	LP      User `json:"lp,omitempty" gorm:"foreignKey:LPID"`
	Company User `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
}
