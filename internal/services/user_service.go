// internal/services/user_service.go
package services

import (
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/advisorbridge/advisorbridge-backend/internal/models"
	"github.com/advisorbridge/advisorbridge-backend/internal/store"
	"github.com/advisorbridge/advisorbridge-backend/internal/utils"
)

type UserService struct {
	users          store.UserStore
	storageService *StorageService
}

type UpdateUserProfileRequest struct {
	FullName    *string                `json:"full_name,omitempty"`
	CompanyName *string                `json:"company_name,omitempty"`
	Title       *string                `json:"title,omitempty"`
	Expertise   []string               `json:"expertise,omitempty"`
	HourlyRate  *string                `json:"hourly_rate,omitempty"`
	Bio         *string                `json:"bio,omitempty"`
	LinkedinURL *string                `json:"linkedin_url,omitempty" validate:"omitempty,url"`
	ProfileData map[string]interface{} `json:"profile_data,omitempty"`
}

// PublicProfile is the subset of a user record visible to other marketplace
// members. Email stays private except to the profile owner; for everyone else
// it only travels on application snapshots.
type PublicProfile struct {
	ID          uuid.UUID       `json:"id"`
	FullName    string          `json:"full_name"`
	Email       string          `json:"email,omitempty"`
	Role        models.UserRole `json:"role"`
	CompanyName string          `json:"company_name,omitempty"`
	Title       string          `json:"title,omitempty"`
	Expertise   []string        `json:"expertise,omitempty"`
	Bio         string          `json:"bio,omitempty"`
	LinkedinURL string          `json:"linkedin_url,omitempty"`
	AvatarURL   string          `json:"avatar_url,omitempty"`
}

func NewUserService(users store.UserStore, storageService *StorageService) *UserService {
	return &UserService{
		users:          users,
		storageService: storageService,
	}
}

func (s *UserService) GetUserByID(userID uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, storeErr(err, "user not found")
	}
	return user, nil
}

// GetPublicProfile returns the member-visible view of a user. viewerID is the
// authenticated caller, or uuid.Nil for anonymous requests; owners see their
// own email in the payload.
func (s *UserService) GetPublicProfile(userID, viewerID uuid.UUID) (*PublicProfile, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, storeErr(err, "user not found")
	}

	profile := &PublicProfile{
		ID:          user.ID,
		FullName:    user.FullName,
		Role:        user.Role,
		CompanyName: user.CompanyName,
		Title:       user.Title,
		Expertise:   user.Expertise,
		Bio:         user.Bio,
		LinkedinURL: user.LinkedinURL,
		AvatarURL:   user.AvatarURL,
	}

	if viewerID == user.ID {
		profile.Email = user.Email
	}

	return profile, nil
}

// UpdateProfile applies the fields that are present and leaves the rest
// untouched. Role, email and status cannot be changed here.
func (s *UserService) UpdateProfile(userID uuid.UUID, req *UpdateUserProfileRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, NewValidationError(err.Error())
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, storeErr(err, "user not found")
	}

	if req.FullName != nil {
		if strings.TrimSpace(*req.FullName) == "" {
			return nil, NewValidationError("full name must not be blank")
		}
		user.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.CompanyName != nil {
		user.CompanyName = strings.TrimSpace(*req.CompanyName)
	}
	if req.Title != nil {
		user.Title = strings.TrimSpace(*req.Title)
	}
	if req.Expertise != nil {
		user.Expertise = pq.StringArray(req.Expertise)
	}
	if req.HourlyRate != nil {
		user.HourlyRate = *req.HourlyRate
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.LinkedinURL != nil {
		user.LinkedinURL = *req.LinkedinURL
	}
	if req.ProfileData != nil {
		if user.ProfileData == nil {
			user.ProfileData = make(models.JSONB)
		}
		// Merge with existing profile data
		for key, value := range req.ProfileData {
			user.ProfileData[key] = value
		}
	}

	if err := s.users.Save(user); err != nil {
		return nil, NewStorageError(err)
	}

	return user, nil
}

// UploadAvatar stores the image and points the user record at it. The old
// avatar object, if any, is deleted best-effort.
func (s *UserService) UploadAvatar(userID uuid.UUID, file multipart.File, header *multipart.FileHeader) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, storeErr(err, "user not found")
	}

	if err := s.storageService.ValidateImage(file); err != nil {
		return nil, NewValidationError("avatar must be a valid JPEG, PNG or GIF image")
	}

	options := s.storageService.GetDefaultUploadOptions("avatars")
	result, err := s.storageService.UploadFile(file, header, options)
	if err != nil {
		return nil, NewStorageError(err)
	}

	oldKey := avatarKey(user.AvatarURL)

	user.AvatarURL = result.URL
	if err := s.users.Save(user); err != nil {
		return nil, NewStorageError(err)
	}

	if oldKey != "" {
		s.storageService.DeleteFile(oldKey)
	}

	return user, nil
}

// avatarKey recovers the storage key from a previously stored avatar URL.
// Keys always live under the avatars/ folder.
func avatarKey(url string) string {
	idx := strings.Index(url, "avatars/")
	if idx < 0 {
		return ""
	}
	return url[idx:]
}
