package domain

import "time"

// RoleID роль пользователя
type RoleID int64

const (
	RoleClient RoleID = 1
	RoleAdmin  RoleID = 2
)

// User represents a registered user
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	RoleID       RoleID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin returns true if the user has the admin role
func (u *User) IsAdmin() bool {
	return u.RoleID == RoleAdmin
}
