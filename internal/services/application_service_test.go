// internal/services/application_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/advisorbridge/advisorbridge-backend/internal/models"
)

type ApplicationServiceTestSuite struct {
	suite.Suite
	stores  testStores
	svc     *ApplicationService
	opps    *OpportunityService
	company *models.User
	rival   *models.User
	lp      *models.User
	lp2     *models.User
	admin   *models.User
	opp     *models.Opportunity
}

func (s *ApplicationServiceTestSuite) SetupTest() {
	db := newTestDB(s.T())
	s.stores = newTestStores(db)

	reconciler := NewReconcileService(s.stores.opportunities, s.stores.applications)
	s.svc = NewApplicationService(s.stores.applications, s.stores.opportunities, s.stores.users, reconciler)
	s.opps = NewOpportunityService(s.stores.opportunities, s.stores.applications, s.stores.users, reconciler)

	s.company = createTestUser(s.T(), s.stores.users, models.UserRoleCompany, "company@example.com")
	s.rival = createTestUser(s.T(), s.stores.users, models.UserRoleCompany, "rival@example.com")
	s.lp = createTestUser(s.T(), s.stores.users, models.UserRoleLP, "lp@example.com")
	s.lp2 = createTestUser(s.T(), s.stores.users, models.UserRoleLP, "lp2@example.com")
	s.admin = createTestUser(s.T(), s.stores.users, models.UserRoleAdmin, "admin@example.com")

	opp, err := s.opps.Create(s.company.ID, &CreateOpportunityRequest{
		Title:             "Fractional CMO",
		Description:       "Own our go-to-market",
		RequiredExpertise: []string{"Marketing"},
		TimeCommitment:    "8 hrs/week",
		Compensation:      "Equity",
	})
	s.Require().NoError(err)
	s.opp = opp
}

func (s *ApplicationServiceTestSuite) TestApplyTakesSnapshots() {
	app, err := s.svc.Apply(s.lp.ID, s.opp.ID)
	s.Require().NoError(err)

	s.Equal(models.ApplicationStatusPending, app.Status)
	s.Equal(s.lp.FullName, app.LPName)
	s.Equal(s.lp.Email, app.LPEmail)
	s.Equal(s.opp.Title, app.OpportunityTitle)
	s.Equal(s.company.ID, app.CompanyID)
	s.Equal(s.opp.CompanyName, app.CompanyName)
}

func (s *ApplicationServiceTestSuite) TestApplyUpdatesApplicantCountEagerly() {
	_, err := s.svc.Apply(s.lp.ID, s.opp.ID)
	s.Require().NoError(err)

	stored, err := s.stores.opportunities.GetByID(s.opp.ID)
	s.Require().NoError(err)
	s.Equal(int64(1), stored.ApplicantCount)

	_, err = s.svc.Apply(s.lp2.ID, s.opp.ID)
	s.Require().NoError(err)

	stored, err = s.stores.opportunities.GetByID(s.opp.ID)
	s.Require().NoError(err)
	s.Equal(int64(2), stored.ApplicantCount)
}

func (s *ApplicationServiceTestSuite) TestApplyRejectsDuplicates() {
	_, err := s.svc.Apply(s.lp.ID, s.opp.ID)
	s.Require().NoError(err)

	_, err = s.svc.Apply(s.lp.ID, s.opp.ID)
	s.True(IsCode(err, CodeDuplicate))

	// The count reflects exactly one application
	count, err := s.stores.applications.CountByOpportunity(s.opp.ID)
	s.Require().NoError(err)
	s.Equal(int64(1), count)
}

func (s *ApplicationServiceTestSuite) TestApplyRequiresOpenStatus() {
	closed := "closed"
	_, err := s.opps.Patch(s.company.ID, s.opp.ID, &PatchOpportunityRequest{Status: &closed})
	s.Require().NoError(err)

	_, err = s.svc.Apply(s.lp.ID, s.opp.ID)
	s.True(IsCode(err, CodeInvalidState))

	// No application was created
	count, err := s.stores.applications.CountByOpportunity(s.opp.ID)
	s.Require().NoError(err)
	s.Equal(int64(0), count)
}

func (s *ApplicationServiceTestSuite) TestApplyIsLPOnly() {
	_, err := s.svc.Apply(s.rival.ID, s.opp.ID)
	s.True(IsCode(err, CodeAuthorization))

	_, err = s.svc.Apply(s.admin.ID, s.opp.ID)
	s.True(IsCode(err, CodeAuthorization))
}

func (s *ApplicationServiceTestSuite) TestApplyToMissingOpportunity() {
	s.Require().NoError(s.opps.Delete(s.company.ID, s.opp.ID))

	_, err := s.svc.Apply(s.lp.ID, s.opp.ID)
	s.True(IsCode(err, CodeNotFound))
}

func (s *ApplicationServiceTestSuite) TestListForOpportunityAuthorization() {
	_, err := s.svc.Apply(s.lp.ID, s.opp.ID)
	s.Require().NoError(err)

	// Owner sees them
	apps, err := s.svc.ListForOpportunity(s.company.ID, s.opp.ID)
	s.Require().NoError(err)
	s.Len(apps, 1)

	// Admin too
	apps, err = s.svc.ListForOpportunity(s.admin.ID, s.opp.ID)
	s.Require().NoError(err)
	s.Len(apps, 1)

	// Another company does not
	_, err = s.svc.ListForOpportunity(s.rival.ID, s.opp.ID)
	s.True(IsCode(err, CodeAuthorization))

	// Nor does an LP
	_, err = s.svc.ListForOpportunity(s.lp.ID, s.opp.ID)
	s.True(IsCode(err, CodeAuthorization))
}

func (s *ApplicationServiceTestSuite) TestListForOpportunityNewestFirst() {
	first, err := s.svc.Apply(s.lp.ID, s.opp.ID)
	s.Require().NoError(err)

	// Age the first application so the two rows have distinct timestamps
	first.CreatedAt = time.Now().Add(-time.Hour)
	s.Require().NoError(s.stores.applications.Save(first))

	second, err := s.svc.Apply(s.lp2.ID, s.opp.ID)
	s.Require().NoError(err)

	apps, err := s.svc.ListForOpportunity(s.company.ID, s.opp.ID)
	s.Require().NoError(err)
	s.Require().Len(apps, 2)
	s.Equal(second.ID, apps[0].ID)
	s.Equal(first.ID, apps[1].ID)
}

func (s *ApplicationServiceTestSuite) TestUpdateStatusTransitionsArePermissive() {
	app, err := s.svc.Apply(s.lp.ID, s.opp.ID)
	s.Require().NoError(err)

	// Any valid status can follow any other
	for _, status := range []string{"accepted", "pending", "rejected", "reviewed"} {
		updated, err := s.svc.UpdateStatus(s.company.ID, app.ID, &UpdateApplicationStatusRequest{Status: status})
		s.Require().NoError(err)
		s.Equal(models.ApplicationStatus(status), updated.Status)
	}

	_, err = s.svc.UpdateStatus(s.company.ID, app.ID, &UpdateApplicationStatusRequest{Status: "withdrawn"})
	s.True(IsCode(err, CodeValidation))
}

func (s *ApplicationServiceTestSuite) TestUpdateStatusOwnership() {
	app, err := s.svc.Apply(s.lp.ID, s.opp.ID)
	s.Require().NoError(err)

	_, err = s.svc.UpdateStatus(s.rival.ID, app.ID, &UpdateApplicationStatusRequest{Status: "reviewed"})
	s.True(IsCode(err, CodeAuthorization))

	_, err = s.svc.UpdateStatus(s.lp.ID, app.ID, &UpdateApplicationStatusRequest{Status: "accepted"})
	s.True(IsCode(err, CodeAuthorization))

	_, err = s.svc.UpdateStatus(s.admin.ID, app.ID, &UpdateApplicationStatusRequest{Status: "accepted"})
	s.Require().NoError(err)
}

func (s *ApplicationServiceTestSuite) TestUpdateStatusAfterOpportunityDeleted() {
	app, err := s.svc.Apply(s.lp.ID, s.opp.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.opps.Delete(s.company.ID, s.opp.ID))

	// Ownership falls back to the company snapshot on the application
	updated, err := s.svc.UpdateStatus(s.company.ID, app.ID, &UpdateApplicationStatusRequest{Status: "rejected"})
	s.Require().NoError(err)
	s.Equal(models.ApplicationStatusRejected, updated.Status)

	_, err = s.svc.UpdateStatus(s.rival.ID, app.ID, &UpdateApplicationStatusRequest{Status: "accepted"})
	s.True(IsCode(err, CodeAuthorization))
}

func (s *ApplicationServiceTestSuite) TestListForLP() {
	_, err := s.svc.Apply(s.lp.ID, s.opp.ID)
	s.Require().NoError(err)

	apps, err := s.svc.ListForLP(s.lp.ID)
	s.Require().NoError(err)
	s.Len(apps, 1)

	apps, err = s.svc.ListForLP(s.lp2.ID)
	s.Require().NoError(err)
	s.Len(apps, 0)

	_, err = s.svc.ListForLP(s.company.ID)
	s.True(IsCode(err, CodeAuthorization))
}

func (s *ApplicationServiceTestSuite) TestHasApplied() {
	applied, err := s.svc.HasApplied(s.lp.ID, s.opp.ID)
	s.Require().NoError(err)
	s.False(applied)

	_, err = s.svc.Apply(s.lp.ID, s.opp.ID)
	s.Require().NoError(err)

	applied, err = s.svc.HasApplied(s.lp.ID, s.opp.ID)
	s.Require().NoError(err)
	s.True(applied)
}

func TestApplicationServiceSuite(t *testing.T) {
	suite.Run(t, new(ApplicationServiceTestSuite))
}
