package entity

import "time"

// User roles.
const (
	RoleAdmin      = "admin"
	RoleWarehouse  = "depo"
	RoleAccounting = "muhasebe"
)

// User is an application account.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
