// internal/services/opportunity_service.go
package services

import (
	"strings"

	"github.com/google/uuid"

	"github.com/advisorbridge/advisorbridge-backend/internal/models"
	"github.com/advisorbridge/advisorbridge-backend/internal/store"
)

type OpportunityService struct {
	opportunities store.OpportunityStore
	applications  store.ApplicationStore
	users         store.UserStore
	reconciler    *ReconcileService
}

type CreateOpportunityRequest struct {
	Title             string   `json:"title" validate:"required,nonblank"`
	Description       string   `json:"description" validate:"required,nonblank"`
	RequiredExpertise []string `json:"required_expertise" validate:"required"`
	TimeCommitment    string   `json:"time_commitment" validate:"required,nonblank"`
	Compensation      string   `json:"compensation" validate:"required,nonblank"`
}

// UpdateOpportunityRequest is a full replace of the mutable fields; companyId,
// status and the counters cannot be changed through this path.
type UpdateOpportunityRequest struct {
	Title             string   `json:"title" validate:"required,nonblank"`
	Description       string   `json:"description" validate:"required,nonblank"`
	RequiredExpertise []string `json:"required_expertise" validate:"required"`
	TimeCommitment    string   `json:"time_commitment" validate:"required,nonblank"`
	Compensation      string   `json:"compensation" validate:"required,nonblank"`
}

// PatchOpportunityRequest updates only the fields that are present. Typically
// used for status-only changes.
type PatchOpportunityRequest struct {
	Title             *string  `json:"title,omitempty"`
	Description       *string  `json:"description,omitempty"`
	RequiredExpertise []string `json:"required_expertise,omitempty"`
	TimeCommitment    *string  `json:"time_commitment,omitempty"`
	Compensation      *string  `json:"compensation,omitempty"`
	Status            *string  `json:"status,omitempty"`
}

func NewOpportunityService(
	opportunities store.OpportunityStore,
	applications store.ApplicationStore,
	users store.UserStore,
	reconciler *ReconcileService,
) *OpportunityService {
	return &OpportunityService{
		opportunities: opportunities,
		applications:  applications,
		users:         users,
		reconciler:    reconciler,
	}
}

func (s *OpportunityService) Create(actorID uuid.UUID, req *CreateOpportunityRequest) (*models.Opportunity, error) {
	actor, err := s.users.GetByID(actorID)
	if err != nil {
		return nil, storeErr(err, "user not found")
	}

	if actor.Role != models.UserRoleCompany {
		return nil, NewAuthorizationError("only companies can post opportunities")
	}

	expertise, verr := validateOpportunityFields(req.Title, req.Description, req.RequiredExpertise, req.TimeCommitment, req.Compensation)
	if verr != nil {
		return nil, verr
	}

	opp := &models.Opportunity{
		CompanyID:         actor.ID,
		CompanyName:       actor.DisplayName(),
		Title:             strings.TrimSpace(req.Title),
		Description:       strings.TrimSpace(req.Description),
		RequiredExpertise: expertise,
		TimeCommitment:    strings.TrimSpace(req.TimeCommitment),
		Compensation:      strings.TrimSpace(req.Compensation),
		Status:            models.OpportunityStatusOpen,
		ViewCount:         0,
		ApplicantCount:    0,
	}

	if err := s.opportunities.Create(opp); err != nil {
		return nil, NewStorageError(err)
	}

	return opp, nil
}

func (s *OpportunityService) Update(actorID, id uuid.UUID, req *UpdateOpportunityRequest) (*models.Opportunity, error) {
	opp, err := s.opportunities.GetByID(id)
	if err != nil {
		return nil, storeErr(err, "opportunity not found")
	}

	if authErr := s.authorizeOwner(actorID, opp); authErr != nil {
		return nil, authErr
	}

	expertise, verr := validateOpportunityFields(req.Title, req.Description, req.RequiredExpertise, req.TimeCommitment, req.Compensation)
	if verr != nil {
		return nil, verr
	}

	opp.Title = strings.TrimSpace(req.Title)
	opp.Description = strings.TrimSpace(req.Description)
	opp.RequiredExpertise = expertise
	opp.TimeCommitment = strings.TrimSpace(req.TimeCommitment)
	opp.Compensation = strings.TrimSpace(req.Compensation)

	if err := s.opportunities.Save(opp); err != nil {
		return nil, NewStorageError(err)
	}

	return opp, nil
}

func (s *OpportunityService) Patch(actorID, id uuid.UUID, req *PatchOpportunityRequest) (*models.Opportunity, error) {
	opp, err := s.opportunities.GetByID(id)
	if err != nil {
		return nil, storeErr(err, "opportunity not found")
	}

	if authErr := s.authorizeOwner(actorID, opp); authErr != nil {
		return nil, authErr
	}

	if req.Status != nil {
		status := models.OpportunityStatus(*req.Status)
		if !status.Valid() {
			return nil, NewValidationError("status must be one of: open, closed, filled")
		}
		opp.Status = status
	}
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, NewValidationError("title must not be blank")
		}
		opp.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			return nil, NewValidationError("description must not be blank")
		}
		opp.Description = strings.TrimSpace(*req.Description)
	}
	if req.RequiredExpertise != nil {
		expertise, verr := normalizeExpertise(req.RequiredExpertise)
		if verr != nil {
			return nil, verr
		}
		opp.RequiredExpertise = expertise
	}
	if req.TimeCommitment != nil {
		opp.TimeCommitment = strings.TrimSpace(*req.TimeCommitment)
	}
	if req.Compensation != nil {
		opp.Compensation = strings.TrimSpace(*req.Compensation)
	}

	if err := s.opportunities.Save(opp); err != nil {
		return nil, NewStorageError(err)
	}

	return opp, nil
}

// Delete hard-deletes the opportunity. Applications referencing it are left
// untouched; orphaned references are tolerated.
func (s *OpportunityService) Delete(actorID, id uuid.UUID) error {
	opp, err := s.opportunities.GetByID(id)
	if err != nil {
		return storeErr(err, "opportunity not found")
	}

	if authErr := s.authorizeOwner(actorID, opp); authErr != nil {
		return authErr
	}

	if err := s.opportunities.Delete(id); err != nil {
		return NewStorageError(err)
	}

	return nil
}

func (s *OpportunityService) GetByID(id uuid.UUID) (*models.Opportunity, error) {
	opp, err := s.opportunities.GetByID(id)
	if err != nil {
		return nil, storeErr(err, "opportunity not found")
	}
	return opp, nil
}

// TrackView counts one more view, every call. There is no deduplication by
// viewer; plain reads never bump the counter.
func (s *OpportunityService) TrackView(id uuid.UUID) (int64, error) {
	count, err := s.opportunities.IncrementViewCount(id)
	if err != nil {
		return 0, storeErr(err, "opportunity not found")
	}
	return count, nil
}

// Browse is the discovery listing: filter, sort by recency, lazily reconcile
// applicant counts, then enrich per role. When withMatch is set and the actor
// is an LP, results are re-sorted by expertise match score instead of recency.
func (s *OpportunityService) Browse(actorID uuid.UUID, filters OpportunityFilters, withMatch bool) ([]OpportunityView, error) {
	actor, err := s.users.GetByID(actorID)
	if err != nil {
		return nil, storeErr(err, "user not found")
	}

	opps, err := s.opportunities.ListAll()
	if err != nil {
		return nil, NewStorageError(err)
	}

	filtered := FilterOpportunities(opps, actor.ID, actor.Role, filters)
	s.reconciler.ReconcileAll(filtered)

	views := make([]OpportunityView, 0, len(filtered))
	for _, opp := range filtered {
		view := OpportunityView{Opportunity: opp}

		if actor.Role == models.UserRoleLP {
			applied, err := s.applications.Exists(actor.ID, opp.ID)
			if err != nil {
				return nil, NewStorageError(err)
			}
			view.HasApplied = applied

			if withMatch {
				score := MatchScore(opp.RequiredExpertise, actor.Expertise)
				view.MatchScore = &score
			}
		}

		views = append(views, view)
	}

	if withMatch && actor.Role == models.UserRoleLP {
		SortByMatchScore(views)
	}

	return views, nil
}

// ListOwn is the company manage view; the lazy reconcile pass applies here as
// well, since it is a listing read.
func (s *OpportunityService) ListOwn(actorID uuid.UUID) ([]models.Opportunity, error) {
	actor, err := s.users.GetByID(actorID)
	if err != nil {
		return nil, storeErr(err, "user not found")
	}

	if actor.Role != models.UserRoleCompany {
		return nil, NewAuthorizationError("only companies have their own postings")
	}

	opps, err := s.opportunities.ListByCompany(actor.ID)
	if err != nil {
		return nil, NewStorageError(err)
	}

	s.reconciler.ReconcileAll(opps)
	return opps, nil
}

func (s *OpportunityService) authorizeOwner(actorID uuid.UUID, opp *models.Opportunity) error {
	actor, err := s.users.GetByID(actorID)
	if err != nil {
		return storeErr(err, "user not found")
	}

	switch actor.Role {
	case models.UserRoleAdmin:
		return nil
	case models.UserRoleCompany:
		if opp.CompanyID == actor.ID {
			return nil
		}
		return NewAuthorizationError("you do not own this opportunity")
	case models.UserRoleLP:
		return NewAuthorizationError("advisors cannot modify opportunities")
	}
	return NewAuthorizationError("unknown role")
}

// validateOpportunityFields reports the first missing or invalid field, the
// same checks for create and full update.
func validateOpportunityFields(title, description string, requiredExpertise []string, timeCommitment, compensation string) (expertise []string, err error) {
	if strings.TrimSpace(title) == "" {
		return nil, NewValidationError("title is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, NewValidationError("description is required")
	}
	expertise, verr := normalizeExpertise(requiredExpertise)
	if verr != nil {
		return nil, verr
	}
	if strings.TrimSpace(timeCommitment) == "" {
		return nil, NewValidationError("time commitment is required")
	}
	if strings.TrimSpace(compensation) == "" {
		return nil, NewValidationError("compensation is required")
	}
	return expertise, nil
}

func normalizeExpertise(entries []string) ([]string, error) {
	if len(entries) == 0 {
		return nil, NewValidationError("at least one required expertise is needed")
	}
	normalized := make([]string, 0, len(entries))
	for _, entry := range entries {
		trimmed := strings.TrimSpace(entry)
		if trimmed == "" {
			return nil, NewValidationError("required expertise entries must not be blank")
		}
		normalized = append(normalized, trimmed)
	}
	return normalized, nil
}
