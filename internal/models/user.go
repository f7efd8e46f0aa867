// internal/models/user.go
package models

import (
	"strings"
	"time"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"`
	FullName     string     `json:"full_name" gorm:"size:255;not null"`
	Role         UserRole   `json:"role" gorm:"type:varchar(20);not null"`
	Status       UserStatus `json:"status" gorm:"type:varchar(20);default:'active'"`

	// Company profile
	CompanyName string `json:"company_name,omitempty" gorm:"size:255"`

	// LP profile
	Title      string         `json:"title,omitempty" gorm:"size:255"`
	Expertise  pq.StringArray `json:"expertise,omitempty" gorm:"type:text[]"`
	HourlyRate string         `json:"hourly_rate,omitempty" gorm:"size:100"`

	Bio         string     `json:"bio,omitempty" gorm:"type:text"`
	LinkedinURL string     `json:"linkedin_url,omitempty" gorm:"size:512"`
	AvatarURL   string     `json:"avatar_url,omitempty" gorm:"size:512"`
	ProfileData JSONB      `json:"profile_data,omitempty" gorm:"type:jsonb"`
	LastLoginAt *time.Time `json:"last_login_at"`

	// Relationships
	Opportunities []Opportunity `json:"opportunities,omitempty" gorm:"foreignKey:CompanyID"`
	Applications  []Application `json:"applications,omitempty" gorm:"foreignKey:LPID"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}

// DisplayName is the name stamped onto opportunities a company posts. Companies
// without a company name fall back to the account holder's full name.
func (u *User) DisplayName() string {
	if strings.TrimSpace(u.CompanyName) != "" {
		return u.CompanyName
	}
	return u.FullName
}
