// internal/services/reconcile_service_test.go
package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advisorbridge/advisorbridge-backend/internal/models"
	"github.com/advisorbridge/advisorbridge-backend/internal/store"
)

// brokenCountStore fails every applicant count query while delegating the rest.
type brokenCountStore struct {
	store.ApplicationStore
}

func (s *brokenCountStore) CountByOpportunity(opportunityID uuid.UUID) (int64, error) {
	return 0, errors.New("connection reset by peer")
}

func TestReconcileAllServesStoredCountWhenCountingFails(t *testing.T) {
	db := newTestDB(t)
	stores := newTestStores(db)

	opp := &models.Opportunity{
		CompanyID:         uuid.New(),
		CompanyName:       "Acme Ventures",
		Title:             "Growth Advisor",
		Description:       "Help us scale",
		RequiredExpertise: []string{"Marketing"},
		TimeCommitment:    "5 hrs/week",
		Compensation:      "Equity",
		Status:            models.OpportunityStatusOpen,
		ApplicantCount:    7,
	}
	require.NoError(t, stores.opportunities.Create(opp))

	reconciler := NewReconcileService(stores.opportunities, &brokenCountStore{stores.applications})

	// The listing read must survive the failure and keep serving the stored
	// value, stale or not.
	opps := []models.Opportunity{*opp}
	reconciler.ReconcileAll(opps)
	assert.Equal(t, int64(7), opps[0].ApplicantCount)

	stored, err := stores.opportunities.GetByID(opp.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), stored.ApplicantCount)
}

func TestReconcileOpportunityReturnsStorageError(t *testing.T) {
	db := newTestDB(t)
	stores := newTestStores(db)

	opp := &models.Opportunity{
		CompanyID:         uuid.New(),
		Title:             "Ops Advisor",
		Description:       "Keep the lights on",
		RequiredExpertise: []string{"Operations"},
		TimeCommitment:    "3 hrs/week",
		Compensation:      "Cash",
		Status:            models.OpportunityStatusOpen,
		ApplicantCount:    2,
	}
	require.NoError(t, stores.opportunities.Create(opp))

	reconciler := NewReconcileService(stores.opportunities, &brokenCountStore{stores.applications})

	err := reconciler.ReconcileOpportunity(opp)
	assert.True(t, IsCode(err, CodeStorage))
	assert.Equal(t, int64(2), opp.ApplicantCount)
}
