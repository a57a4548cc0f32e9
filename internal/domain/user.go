package domain

import "time"

// UserStatus represents lifecycle states for an account.
type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

// User is the domain model for site accounts. Staff are ordinary users
// with the IsStaff flag set; there is no separate operator table.
type User struct {
	ID           string
	Handle       string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	IsStaff      bool
	Status       UserStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins first and last name for display listings.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// UserProfile stores contact details collected at registration.
type UserProfile struct {
	ID        string
	UserID    string
	Phone     string
	CreatedAt time.Time
}
