// internal/store/store.go
//
// Narrow, per-entity storage contracts. Lifecycle services depend on these
// interfaces rather than on the database handle, so the persistence strategy
// (and, later, optimistic concurrency) can change without touching call sites.
package store

import (
	"github.com/google/uuid"

	"github.com/advisorbridge/advisorbridge-backend/internal/models"
)

type UserStore interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Save(user *models.User) error
	List(params UserListParams) ([]models.User, int64, error)
	CountByRole(role models.UserRole) (int64, error)
}

// UserListParams narrows admin user listings; zero values mean "no filter".
type UserListParams struct {
	Role   models.UserRole
	Status models.UserStatus
	Search string
	Offset int
	Limit  int
}

type OpportunityStore interface {
	Create(opp *models.Opportunity) error
	GetByID(id uuid.UUID) (*models.Opportunity, error)
	Save(opp *models.Opportunity) error
	Delete(id uuid.UUID) error
	ListAll() ([]models.Opportunity, error)
	ListPage(offset, limit int) ([]models.Opportunity, int64, error)
	ListByCompany(companyID uuid.UUID) ([]models.Opportunity, error)
	CountByCompany(companyID uuid.UUID) (int64, error)
	Count() (int64, error)

	// IncrementViewCount bumps the counter atomically and returns the new value.
	IncrementViewCount(id uuid.UUID) (int64, error)

	// SetApplicantCount persists a reconciled applicant count without touching
	// any other column.
	SetApplicantCount(id uuid.UUID, count int64) error
}

type ApplicationStore interface {
	Create(app *models.Application) error
	GetByID(id uuid.UUID) (*models.Application, error)
	Save(app *models.Application) error
	ListByOpportunity(opportunityID uuid.UUID) ([]models.Application, error)
	ListByLP(lpID uuid.UUID) ([]models.Application, error)
	ListPage(offset, limit int) ([]models.Application, int64, error)
	CountByOpportunity(opportunityID uuid.UUID) (int64, error)
	CountByCompany(companyID uuid.UUID) (int64, error)
	CountByLPPerStatus(lpID uuid.UUID) (map[models.ApplicationStatus]int64, error)
	Count() (int64, error)
	Exists(lpID, opportunityID uuid.UUID) (bool, error)
}

// ConnectionStore is read-only: connections are established outside this
// service and only consumed here for dashboards.
type ConnectionStore interface {
	ListByLP(lpID uuid.UUID) ([]models.Connection, error)
	ListByCompany(companyID uuid.UUID) ([]models.Connection, error)
	CountActiveByLP(lpID uuid.UUID) (int64, error)
	CountActiveByCompany(companyID uuid.UUID) (int64, error)
	Count() (int64, error)
}
