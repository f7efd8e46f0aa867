// internal/services/auth_service.go
package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/advisorbridge/advisorbridge-backend/internal/config"
	"github.com/advisorbridge/advisorbridge-backend/internal/models"
	"github.com/advisorbridge/advisorbridge-backend/internal/store"
	"github.com/advisorbridge/advisorbridge-backend/internal/utils"
)

type AuthService struct {
	users store.UserStore
	cfg   *config.Config
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,strong_password"`
	FullName    string   `json:"full_name" validate:"required,nonblank"`
	Role        string   `json:"role" validate:"required"`
	CompanyName string   `json:"company_name,omitempty"`
	Title       string   `json:"title,omitempty"`
	Expertise   []string `json:"expertise,omitempty"`
	Bio         string   `json:"bio,omitempty"`
	LinkedinURL string   `json:"linkedin_url,omitempty"`
}

type AuthResponse struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"` // in seconds
}

func NewAuthService(users store.UserStore, cfg *config.Config) *AuthService {
	return &AuthService{
		users: users,
		cfg:   cfg,
	}
}

func (s *AuthService) Register(req *RegisterRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, NewValidationError(err.Error())
	}

	// Only marketplace roles self-register; admins are seeded.
	role := models.UserRole(req.Role)
	if role != models.UserRoleLP && role != models.UserRoleCompany {
		return nil, NewValidationError("role must be lp or company")
	}

	if role == models.UserRoleCompany && strings.TrimSpace(req.CompanyName) == "" {
		return nil, NewValidationError("company name is required for company accounts")
	}

	if _, err := s.users.GetByEmail(req.Email); err == nil {
		return nil, NewDuplicateError("user with this email already exists")
	}

	user := &models.User{
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		FullName:    strings.TrimSpace(req.FullName),
		Role:        role,
		Status:      models.UserStatusActive,
		CompanyName: strings.TrimSpace(req.CompanyName),
		Title:       strings.TrimSpace(req.Title),
		Expertise:   pq.StringArray(req.Expertise),
		Bio:         req.Bio,
		LinkedinURL: req.LinkedinURL,
	}

	if err := user.SetPassword(req.Password); err != nil {
		return nil, NewStorageError(err)
	}

	if err := s.users.Create(user); err != nil {
		return nil, NewStorageError(err)
	}

	return s.issueTokens(user)
}

func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, NewValidationError(err.Error())
	}

	user, err := s.users.GetByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		// Same answer for unknown email and wrong password.
		return nil, NewAuthenticationError("invalid email or password")
	}

	if err := user.CheckPassword(req.Password); err != nil {
		return nil, NewAuthenticationError("invalid email or password")
	}

	if user.Status != models.UserStatusActive {
		return nil, NewAuthenticationError("account is not active")
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.users.Save(user); err != nil {
		return nil, NewStorageError(err)
	}

	return s.issueTokens(user)
}

func (s *AuthService) RefreshToken(refreshToken string) (*AuthResponse, error) {
	userIDStr, err := utils.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, NewAuthenticationError("invalid refresh token")
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, NewAuthenticationError("invalid refresh token")
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, storeErr(err, "user not found")
	}

	if user.Status != models.UserStatusActive {
		return nil, NewAuthenticationError("account is not active")
	}

	return s.issueTokens(user)
}

func (s *AuthService) GetUserByID(userID uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, storeErr(err, "user not found")
	}
	return user, nil
}

func (s *AuthService) issueTokens(user *models.User) (*AuthResponse, error) {
	accessToken, err := utils.GenerateJWT(user.ID, string(user.Role), s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, NewStorageError(err)
	}

	refreshToken, err := utils.GenerateRefreshToken(user.ID, s.cfg.JWT.RefreshTokenTTL)
	if err != nil {
		return nil, NewStorageError(err)
	}

	return &AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    s.cfg.JWT.AccessTokenTTL * 3600,
	}, nil
}
