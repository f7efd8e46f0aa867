// internal/services/application_service.go
package services

import (
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/advisorbridge/advisorbridge-backend/internal/models"
	"github.com/advisorbridge/advisorbridge-backend/internal/store"
)

type ApplicationService struct {
	applications  store.ApplicationStore
	opportunities store.OpportunityStore
	users         store.UserStore
	reconciler    *ReconcileService
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func NewApplicationService(
	applications store.ApplicationStore,
	opportunities store.OpportunityStore,
	users store.UserStore,
	reconciler *ReconcileService,
) *ApplicationService {
	return &ApplicationService{
		applications:  applications,
		opportunities: opportunities,
		users:         users,
		reconciler:    reconciler,
	}
}

// Apply submits an LP's application to an open opportunity. One application
// per LP per opportunity; the unique index backs this up under concurrency.
func (s *ApplicationService) Apply(actorID, opportunityID uuid.UUID) (*models.Application, error) {
	actor, err := s.users.GetByID(actorID)
	if err != nil {
		return nil, storeErr(err, "user not found")
	}

	if actor.Role != models.UserRoleLP {
		return nil, NewAuthorizationError("only advisors can apply to opportunities")
	}

	opp, err := s.opportunities.GetByID(opportunityID)
	if err != nil {
		return nil, storeErr(err, "opportunity not found")
	}

	if opp.Status != models.OpportunityStatusOpen {
		return nil, NewInvalidStateError("this opportunity is not open for applications")
	}

	exists, err := s.applications.Exists(actor.ID, opp.ID)
	if err != nil {
		return nil, NewStorageError(err)
	}
	if exists {
		return nil, NewDuplicateError("you have already applied to this opportunity")
	}

	app := &models.Application{
		OpportunityID:    opp.ID,
		LPID:             actor.ID,
		Status:           models.ApplicationStatusPending,
		LPName:           actor.FullName,
		LPEmail:          actor.Email,
		OpportunityTitle: opp.Title,
		CompanyID:        opp.CompanyID,
		CompanyName:      opp.CompanyName,
	}

	if err := s.applications.Create(app); err != nil {
		// The unique index catches the race two concurrent applies can hit.
		if isUniqueViolation(err) {
			return nil, NewDuplicateError("you have already applied to this opportunity")
		}
		return nil, NewStorageError(err)
	}

	// Eager count repair. The application row already exists, so a failure
	// here only leaves a stale count that the next listing read corrects.
	if err := s.reconciler.ReconcileOpportunity(opp); err != nil {
		logrus.WithError(err).WithField("opportunity_id", opp.ID).
			Warn("applicant count update failed after apply")
	}

	return app, nil
}

// ListForOpportunity returns all applications for a posting, visible to the
// posting company and admins.
func (s *ApplicationService) ListForOpportunity(actorID, opportunityID uuid.UUID) ([]models.Application, error) {
	opp, err := s.opportunities.GetByID(opportunityID)
	if err != nil {
		return nil, storeErr(err, "opportunity not found")
	}

	actor, err := s.users.GetByID(actorID)
	if err != nil {
		return nil, storeErr(err, "user not found")
	}

	switch actor.Role {
	case models.UserRoleAdmin:
	case models.UserRoleCompany:
		if opp.CompanyID != actor.ID {
			return nil, NewAuthorizationError("you do not own this opportunity")
		}
	default:
		return nil, NewAuthorizationError("access denied")
	}

	apps, err := s.applications.ListByOpportunity(opp.ID)
	if err != nil {
		return nil, NewStorageError(err)
	}

	return apps, nil
}

// ListForLP returns the advisor's own applications, newest first.
func (s *ApplicationService) ListForLP(actorID uuid.UUID) ([]models.Application, error) {
	actor, err := s.users.GetByID(actorID)
	if err != nil {
		return nil, storeErr(err, "user not found")
	}

	if actor.Role != models.UserRoleLP {
		return nil, NewAuthorizationError("only advisors have applications")
	}

	apps, err := s.applications.ListByLP(actor.ID)
	if err != nil {
		return nil, NewStorageError(err)
	}

	return apps, nil
}

// UpdateStatus moves an application to any valid status. Transitions are not
// restricted beyond the enum; a company can re-open a rejected application.
func (s *ApplicationService) UpdateStatus(actorID, applicationID uuid.UUID, req *UpdateApplicationStatusRequest) (*models.Application, error) {
	status := models.ApplicationStatus(req.Status)
	if !status.Valid() {
		return nil, NewValidationError("status must be one of: pending, reviewed, accepted, rejected")
	}

	app, err := s.applications.GetByID(applicationID)
	if err != nil {
		return nil, storeErr(err, "application not found")
	}

	actor, err := s.users.GetByID(actorID)
	if err != nil {
		return nil, storeErr(err, "user not found")
	}

	switch actor.Role {
	case models.UserRoleAdmin:
	case models.UserRoleCompany:
		if s.resolveCompanyID(app) != actor.ID {
			return nil, NewAuthorizationError("you do not own the opportunity for this application")
		}
	default:
		return nil, NewAuthorizationError("access denied")
	}

	app.Status = status
	if err := s.applications.Save(app); err != nil {
		return nil, NewStorageError(err)
	}

	return app, nil
}

// HasApplied reports whether the LP already has an application on file for
// the opportunity.
func (s *ApplicationService) HasApplied(lpID, opportunityID uuid.UUID) (bool, error) {
	applied, err := s.applications.Exists(lpID, opportunityID)
	if err != nil {
		return false, NewStorageError(err)
	}
	return applied, nil
}

// resolveCompanyID prefers the live opportunity; when the posting was deleted
// out from under the application, the denormalized snapshot still tells us
// who owned it.
func (s *ApplicationService) resolveCompanyID(app *models.Application) uuid.UUID {
	opp, err := s.opportunities.GetByID(app.OpportunityID)
	if err != nil {
		return app.CompanyID
	}
	return opp.CompanyID
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if err == gorm.ErrDuplicatedKey {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
