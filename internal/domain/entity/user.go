package entity

import "time"

// Valid User roles.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleCashier = "cashier"
)

// ValidRole reports whether s is a known role.
func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleManager || s == RoleCashier
}

// User is a back-office operator account.
type User struct {
	ID           string
	Username     string // unique
	Name         string
	Email        string
	Role         string // admin, manager, cashier
	PasswordHash string // bcrypt; never plaintext past the auth boundary
	AvatarPath   string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PasswordHistory is an append-only audit row written every time a user's
// password hash is set.
type PasswordHistory struct {
	ID           string
	UserID       string
	PasswordHash string
	ChangedBy    string // acting user id
	CreatedAt    time.Time
}
