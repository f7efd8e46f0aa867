// internal/services/user_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/advisorbridge/advisorbridge-backend/internal/config"
	"github.com/advisorbridge/advisorbridge-backend/internal/models"
)

type UserServiceTestSuite struct {
	suite.Suite
	stores testStores
	svc    *UserService
	lp     *models.User
	other  *models.User
}

func (s *UserServiceTestSuite) SetupTest() {
	db := newTestDB(s.T())
	s.stores = newTestStores(db)

	storage, err := NewStorageService(&config.Config{})
	s.Require().NoError(err)
	s.svc = NewUserService(s.stores.users, storage)

	s.lp = createTestUser(s.T(), s.stores.users, models.UserRoleLP, "lp@example.com")
	s.other = createTestUser(s.T(), s.stores.users, models.UserRoleLP, "other@example.com")
}

func (s *UserServiceTestSuite) TestPublicProfileHidesEmailFromOthers() {
	profile, err := s.svc.GetPublicProfile(s.lp.ID, s.other.ID)
	s.Require().NoError(err)
	s.Empty(profile.Email)

	// Anonymous callers get the same view
	profile, err = s.svc.GetPublicProfile(s.lp.ID, uuid.Nil)
	s.Require().NoError(err)
	s.Empty(profile.Email)
	s.Equal(s.lp.FullName, profile.FullName)
}

func (s *UserServiceTestSuite) TestPublicProfileShowsEmailToOwner() {
	profile, err := s.svc.GetPublicProfile(s.lp.ID, s.lp.ID)
	s.Require().NoError(err)
	s.Equal(s.lp.Email, profile.Email)
}

func (s *UserServiceTestSuite) TestPublicProfileMissingUser() {
	_, err := s.svc.GetPublicProfile(uuid.New(), uuid.Nil)
	s.True(IsCode(err, CodeNotFound))
}

func (s *UserServiceTestSuite) TestUpdateProfileAppliesOnlyPresentFields() {
	name := "Updated Name"
	bio := "Advising early-stage teams"
	updated, err := s.svc.UpdateProfile(s.lp.ID, &UpdateUserProfileRequest{
		FullName: &name,
		Bio:      &bio,
	})
	s.Require().NoError(err)
	s.Equal("Updated Name", updated.FullName)
	s.Equal(bio, updated.Bio)

	// Untouched fields survive
	s.ElementsMatch([]string{"Marketing", "Fundraising"}, []string(updated.Expertise))
}

func (s *UserServiceTestSuite) TestUpdateProfileRejectsBlankName() {
	blank := "   "
	_, err := s.svc.UpdateProfile(s.lp.ID, &UpdateUserProfileRequest{FullName: &blank})
	s.True(IsCode(err, CodeValidation))
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
