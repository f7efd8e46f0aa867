// internal/services/reconcile_service.go
package services

import (
	"github.com/sirupsen/logrus"

	"github.com/advisorbridge/advisorbridge-backend/internal/models"
	"github.com/advisorbridge/advisorbridge-backend/internal/store"
)

// ReconcileService keeps Opportunity.ApplicantCount in line with the
// application rows, which are the source of truth. It runs eagerly after an
// application is created and lazily over every listing read, so a stale count
// survives at most one read.
type ReconcileService struct {
	opportunities store.OpportunityStore
	applications  store.ApplicationStore
}

func NewReconcileService(opportunities store.OpportunityStore, applications store.ApplicationStore) *ReconcileService {
	return &ReconcileService{
		opportunities: opportunities,
		applications:  applications,
	}
}

// ReconcileOpportunity recomputes the applicant count for one opportunity and
// persists it if the stored value drifted. The passed struct is updated in
// place.
func (s *ReconcileService) ReconcileOpportunity(opp *models.Opportunity) error {
	actual, err := s.applications.CountByOpportunity(opp.ID)
	if err != nil {
		return NewStorageError(err)
	}

	if actual == opp.ApplicantCount {
		return nil
	}

	if err := s.opportunities.SetApplicantCount(opp.ID, actual); err != nil {
		return NewStorageError(err)
	}

	opp.ApplicantCount = actual
	return nil
}

// ReconcileAll repairs the counts for a listing result set. Failures are
// logged and swallowed: a read must not fail because a cache correction did,
// the stale stored value is simply served for that iteration.
func (s *ReconcileService) ReconcileAll(opps []models.Opportunity) {
	for i := range opps {
		if err := s.ReconcileOpportunity(&opps[i]); err != nil {
			logrus.WithError(err).WithField("opportunity_id", opps[i].ID).
				Warn("applicant count reconciliation failed, serving stored value")
		}
	}
}
