// internal/services/dashboard_service.go
package services

import (
	"github.com/google/uuid"

	"github.com/advisorbridge/advisorbridge-backend/internal/models"
	"github.com/advisorbridge/advisorbridge-backend/internal/store"
)

// DashboardService assembles the role-shaped counts behind GET /dashboard.
type DashboardService struct {
	users         store.UserStore
	opportunities store.OpportunityStore
	applications  store.ApplicationStore
	connections   store.ConnectionStore
	admin         *AdminService
}

type CompanyDashboard struct {
	Opportunities     int64 `json:"opportunities"`
	Applications      int64 `json:"applications"`
	ActiveConnections int64 `json:"active_connections"`
}

type LPDashboard struct {
	ApplicationsByStatus map[models.ApplicationStatus]int64 `json:"applications_by_status"`
	TotalApplications    int64                              `json:"total_applications"`
	ActiveConnections    int64                              `json:"active_connections"`
}

func NewDashboardService(
	users store.UserStore,
	opportunities store.OpportunityStore,
	applications store.ApplicationStore,
	connections store.ConnectionStore,
	admin *AdminService,
) *DashboardService {
	return &DashboardService{
		users:         users,
		opportunities: opportunities,
		applications:  applications,
		connections:   connections,
		admin:         admin,
	}
}

// GetDashboard returns a payload shaped by the caller's role: companies see
// their posting and applicant totals, LPs see their submissions broken down by
// status, admins get the platform totals.
func (s *DashboardService) GetDashboard(actorID uuid.UUID) (interface{}, error) {
	actor, err := s.users.GetByID(actorID)
	if err != nil {
		return nil, storeErr(err, "user not found")
	}

	switch actor.Role {
	case models.UserRoleCompany:
		return s.companyDashboard(actor.ID)
	case models.UserRoleLP:
		return s.lpDashboard(actor.ID)
	case models.UserRoleAdmin:
		return s.admin.GetDashboardStats()
	}
	return nil, NewAuthorizationError("unknown role")
}

func (s *DashboardService) companyDashboard(companyID uuid.UUID) (*CompanyDashboard, error) {
	dash := &CompanyDashboard{}
	var err error

	if dash.Opportunities, err = s.opportunities.CountByCompany(companyID); err != nil {
		return nil, NewStorageError(err)
	}
	if dash.Applications, err = s.applications.CountByCompany(companyID); err != nil {
		return nil, NewStorageError(err)
	}
	if dash.ActiveConnections, err = s.connections.CountActiveByCompany(companyID); err != nil {
		return nil, NewStorageError(err)
	}

	return dash, nil
}

func (s *DashboardService) lpDashboard(lpID uuid.UUID) (*LPDashboard, error) {
	byStatus, err := s.applications.CountByLPPerStatus(lpID)
	if err != nil {
		return nil, NewStorageError(err)
	}

	dash := &LPDashboard{ApplicationsByStatus: byStatus}
	for _, n := range byStatus {
		dash.TotalApplications += n
	}

	if dash.ActiveConnections, err = s.connections.CountActiveByLP(lpID); err != nil {
		return nil, NewStorageError(err)
	}

	return dash, nil
}
