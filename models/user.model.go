package models

import (
	"strings"

	"gorm.io/gorm"

	"lms/apperrors"
)

const (
	RoleStudent    = "STUDENT"
	RoleInstructor = "INSTRUCTOR"
	RoleAdmin      = "ADMIN"
)

type User struct {
	gorm.Model
	Email          string `json:"email" gorm:"uniqueIndex;not null"`
	FirstName      string `json:"first_name" gorm:"not null"`
	LastName       string `json:"last_name" gorm:"default:''"`
	Phone          string `json:"phone" gorm:"default:''"`
	Role           string `json:"role" gorm:"default:'STUDENT'"` // STUDENT, INSTRUCTOR, ADMIN
	Password       string `json:"-" gorm:"not null"`
	ProfilePicture string `json:"profile_picture" gorm:"default:''"`
	IsActive       bool   `json:"is_active" gorm:"default:true"`

	events []DomainEvent `gorm:"-" json:"-"`
}

// NormalizeEmail lower-cases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewUser builds a user with a normalized email. Role is fixed at creation and
// has no setter afterwards.
func NewUser(email, firstName, lastName, phone, role, passwordHash string) (*User, error) {
	email = NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperrors.Validation("A valid email is required!")
	}
	if strings.TrimSpace(firstName) == "" {
		return nil, apperrors.Validation("First name is required!")
	}
	if role != RoleStudent && role != RoleInstructor && role != RoleAdmin {
		return nil, apperrors.Validation("Invalid role!")
	}

	user := &User{
		Email:     email,
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Phone:     strings.TrimSpace(phone),
		Role:      role,
		Password:  passwordHash,
		IsActive:  true,
	}
	return user, nil
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func (u *User) IsInstructor() bool {
	return u.Role == RoleInstructor
}

func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) CanCreateCourse() bool {
	return u.IsInstructor() && u.IsActive
}

func (u *User) Activate() {
	u.IsActive = true
}

func (u *User) Deactivate() {
	u.IsActive = false
}

func (u *User) UpdateProfile(firstName, lastName, phone, profilePicture *string) {
	if firstName != nil && strings.TrimSpace(*firstName) != "" {
		u.FirstName = strings.TrimSpace(*firstName)
	}
	if lastName != nil {
		u.LastName = strings.TrimSpace(*lastName)
	}
	if phone != nil {
		u.Phone = strings.TrimSpace(*phone)
	}
	if profilePicture != nil {
		u.ProfilePicture = *profilePicture
	}
}

func (u *User) RecordRegistered() {
	u.events = append(u.events, NewUserRegistered(u.ID, u.Email, u.Role))
}

// PullEvents returns the collected domain events and clears them.
func (u *User) PullEvents() []DomainEvent {
	events := u.events
	u.events = nil
	return events
}
