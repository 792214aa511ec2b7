package entity

import "time"

// Role is fixed at registration and decides which dashboard a session
// may reach.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// ParseRole accepts only the two persisted role values.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleTeacher, RoleStudent:
		return Role(s), true
	}
	return "", false
}

type User struct {
	ID           int       `json:"id"`
	FullName     string    `json:"full_name"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	ClassName    *string   `json:"class_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
