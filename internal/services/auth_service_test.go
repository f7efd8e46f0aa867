// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/advisorbridge/advisorbridge-backend/internal/config"
	"github.com/advisorbridge/advisorbridge-backend/internal/models"
	"github.com/advisorbridge/advisorbridge-backend/internal/utils"
)

type AuthServiceTestSuite struct {
	suite.Suite
	stores testStores
	svc    *AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	db := newTestDB(s.T())
	s.stores = newTestStores(db)

	utils.SetJWTSecret("test-secret")
	cfg := &config.Config{}
	cfg.JWT.AccessTokenTTL = 1
	cfg.JWT.RefreshTokenTTL = 24

	s.svc = NewAuthService(s.stores.users, cfg)
}

func (s *AuthServiceTestSuite) validRegisterRequest() *RegisterRequest {
	return &RegisterRequest{
		Email:    "advisor@example.com",
		Password: "Str0ngPass",
		FullName: "Jane Advisor",
		Role:     "lp",
	}
}

func (s *AuthServiceTestSuite) TestRegisterIssuesTokens() {
	resp, err := s.svc.Register(s.validRegisterRequest())
	s.Require().NoError(err)

	s.NotEmpty(resp.AccessToken)
	s.NotEmpty(resp.RefreshToken)
	s.Equal("Bearer", resp.TokenType)
	s.Equal(models.UserRoleLP, resp.User.Role)
	s.Equal(models.UserStatusActive, resp.User.Status)
}

func (s *AuthServiceTestSuite) TestRegisterRejectsAdminRole() {
	req := s.validRegisterRequest()
	req.Role = "admin"
	_, err := s.svc.Register(req)
	s.True(IsCode(err, CodeValidation))
}

func (s *AuthServiceTestSuite) TestRegisterCompanyNeedsCompanyName() {
	req := s.validRegisterRequest()
	req.Role = "company"
	_, err := s.svc.Register(req)
	s.True(IsCode(err, CodeValidation))

	req.CompanyName = "Acme Ventures"
	resp, err := s.svc.Register(req)
	s.Require().NoError(err)
	s.Equal(models.UserRoleCompany, resp.User.Role)
}

func (s *AuthServiceTestSuite) TestRegisterRejectsDuplicateEmail() {
	_, err := s.svc.Register(s.validRegisterRequest())
	s.Require().NoError(err)

	_, err = s.svc.Register(s.validRegisterRequest())
	s.True(IsCode(err, CodeDuplicate))
}

func (s *AuthServiceTestSuite) TestRegisterRejectsWeakPassword() {
	req := s.validRegisterRequest()
	req.Password = "weak"
	_, err := s.svc.Register(req)
	s.True(IsCode(err, CodeValidation))
}

func (s *AuthServiceTestSuite) TestLogin() {
	_, err := s.svc.Register(s.validRegisterRequest())
	s.Require().NoError(err)

	resp, err := s.svc.Login(&LoginRequest{Email: "advisor@example.com", Password: "Str0ngPass"})
	s.Require().NoError(err)
	s.NotEmpty(resp.AccessToken)
	s.NotNil(resp.User.LastLoginAt)
}

func (s *AuthServiceTestSuite) TestLoginRejectsBadCredentials() {
	_, err := s.svc.Register(s.validRegisterRequest())
	s.Require().NoError(err)

	_, err = s.svc.Login(&LoginRequest{Email: "advisor@example.com", Password: "WrongPass1"})
	s.True(IsCode(err, CodeAuthentication))

	_, err = s.svc.Login(&LoginRequest{Email: "unknown@example.com", Password: "Str0ngPass"})
	s.True(IsCode(err, CodeAuthentication))
}

func (s *AuthServiceTestSuite) TestLoginRejectsInactiveAccount() {
	resp, err := s.svc.Register(s.validRegisterRequest())
	s.Require().NoError(err)

	resp.User.Status = models.UserStatusInactive
	s.Require().NoError(s.stores.users.Save(resp.User))

	_, err = s.svc.Login(&LoginRequest{Email: "advisor@example.com", Password: "Str0ngPass"})
	s.True(IsCode(err, CodeAuthentication))
}

func (s *AuthServiceTestSuite) TestRefreshToken() {
	registered, err := s.svc.Register(s.validRegisterRequest())
	s.Require().NoError(err)

	refreshed, err := s.svc.RefreshToken(registered.RefreshToken)
	s.Require().NoError(err)
	s.Equal(registered.User.ID, refreshed.User.ID)
	s.NotEmpty(refreshed.AccessToken)

	_, err = s.svc.RefreshToken("garbage")
	s.True(IsCode(err, CodeAuthentication))
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
