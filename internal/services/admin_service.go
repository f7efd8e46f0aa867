// internal/services/admin_service.go
package services

import (
	"github.com/google/uuid"

	"github.com/advisorbridge/advisorbridge-backend/internal/models"
	"github.com/advisorbridge/advisorbridge-backend/internal/store"
	"github.com/advisorbridge/advisorbridge-backend/internal/utils"
)

// AdminService is the oversight surface: listing across all owners and user
// account administration. Route-level middleware guarantees the actor is an
// admin before any of these run.
type AdminService struct {
	users         store.UserStore
	opportunities store.OpportunityStore
	applications  store.ApplicationStore
	connections   store.ConnectionStore
}

type AdminDashboardStats struct {
	TotalUsers         int64 `json:"total_users"`
	TotalLPs           int64 `json:"total_lps"`
	TotalCompanies     int64 `json:"total_companies"`
	TotalOpportunities int64 `json:"total_opportunities"`
	TotalApplications  int64 `json:"total_applications"`
	TotalConnections   int64 `json:"total_connections"`
}

type AdminUserFilter struct {
	utils.PaginationParams
	Role   string `json:"role,omitempty"`
	Status string `json:"status,omitempty"`
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func NewAdminService(
	users store.UserStore,
	opportunities store.OpportunityStore,
	applications store.ApplicationStore,
	connections store.ConnectionStore,
) *AdminService {
	return &AdminService{
		users:         users,
		opportunities: opportunities,
		applications:  applications,
		connections:   connections,
	}
}

func (s *AdminService) GetDashboardStats() (*AdminDashboardStats, error) {
	stats := &AdminDashboardStats{}

	lps, err := s.users.CountByRole(models.UserRoleLP)
	if err != nil {
		return nil, NewStorageError(err)
	}
	companies, err := s.users.CountByRole(models.UserRoleCompany)
	if err != nil {
		return nil, NewStorageError(err)
	}
	admins, err := s.users.CountByRole(models.UserRoleAdmin)
	if err != nil {
		return nil, NewStorageError(err)
	}

	stats.TotalLPs = lps
	stats.TotalCompanies = companies
	stats.TotalUsers = lps + companies + admins

	if stats.TotalOpportunities, err = s.opportunities.Count(); err != nil {
		return nil, NewStorageError(err)
	}
	if stats.TotalApplications, err = s.applications.Count(); err != nil {
		return nil, NewStorageError(err)
	}
	if stats.TotalConnections, err = s.connections.Count(); err != nil {
		return nil, NewStorageError(err)
	}

	return stats, nil
}

func (s *AdminService) GetUsers(filter AdminUserFilter) ([]models.User, int64, error) {
	params := store.UserListParams{
		Role:   models.UserRole(filter.Role),
		Status: models.UserStatus(filter.Status),
		Search: filter.Search,
		Offset: filter.Offset(),
		Limit:  filter.Limit,
	}

	users, total, err := s.users.List(params)
	if err != nil {
		return nil, 0, NewStorageError(err)
	}
	return users, total, nil
}

// UpdateUserStatus activates or deactivates an account. Admin accounts cannot
// be deactivated through this path.
func (s *AdminService) UpdateUserStatus(userID uuid.UUID, req *UpdateUserStatusRequest) (*models.User, error) {
	status := models.UserStatus(req.Status)
	if status != models.UserStatusActive && status != models.UserStatusInactive && status != models.UserStatusPending {
		return nil, NewValidationError("status must be one of: active, inactive, pending")
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, storeErr(err, "user not found")
	}

	if user.Role == models.UserRoleAdmin && status != models.UserStatusActive {
		return nil, NewInvalidStateError("admin accounts cannot be deactivated")
	}

	user.Status = status
	if err := s.users.Save(user); err != nil {
		return nil, NewStorageError(err)
	}

	return user, nil
}

func (s *AdminService) GetOpportunities(params utils.PaginationParams) ([]models.Opportunity, int64, error) {
	opps, total, err := s.opportunities.ListPage(params.Offset(), params.Limit)
	if err != nil {
		return nil, 0, NewStorageError(err)
	}
	return opps, total, nil
}

func (s *AdminService) GetApplications(params utils.PaginationParams) ([]models.Application, int64, error) {
	apps, total, err := s.applications.ListPage(params.Offset(), params.Limit)
	if err != nil {
		return nil, 0, NewStorageError(err)
	}
	return apps, total, nil
}
