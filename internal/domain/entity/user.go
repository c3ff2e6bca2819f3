package entity

import (
	"user-access-management/go-backend/internal/domain/valueobject"
)

// DefaultAddress is the sentinel stored when no address was provided.
const DefaultAddress = "NR"

// User is the aggregate root for the identity domain.
// PasswordHash holds a bcrypt hash; the raw password never reaches this type.
//
// State machine: Active (IsActive, not deleted) -> Inactive -> Deleted
// (terminal; DeletedAt set exactly once, IsActive forced false).
type User struct {
	Entity
	Name         string
	Lastname     string
	Email        valueobject.Email
	PasswordHash string
	Address      string
	IsActive     bool
}

// NewUser constructs an Active user. An empty address falls back to the
// "NR" sentinel.
func NewUser(name, lastname, address string, email valueobject.Email, passwordHash string) *User {
	if address == "" {
		address = DefaultAddress
	}
	return &User{
		Entity:       newEntity(),
		Name:         name,
		Lastname:     lastname,
		Email:        email,
		PasswordHash: passwordHash,
		Address:      address,
		IsActive:     true,
	}
}

// Deactivate moves an Active user to Inactive. Calling it on an already
// inactive or deleted user is a no-op; UpdatedAt is not advanced.
func (u *User) Deactivate() {
	if !u.IsActive || u.IsDeleted() {
		return
	}
	u.IsActive = false
	u.markUpdated()
}

// SoftDelete marks the user as logically removed and forces IsActive=false.
// Deletion is terminal and idempotent: a second call leaves DeletedAt and
// UpdatedAt untouched.
func (u *User) SoftDelete() {
	if u.IsDeleted() {
		return
	}
	u.markDeleted()
	u.IsActive = false
	u.markUpdated()
}

// Update replaces the profile fields atomically. Global email uniqueness is
// the caller's concern; the aggregate only enforces structural invariants.
func (u *User) Update(name, lastname, address string, email valueobject.Email) {
	if address == "" {
		address = DefaultAddress
	}
	u.Name = name
	u.Lastname = lastname
	u.Address = address
	u.Email = email
	u.markUpdated()
}

// ChangePassword replaces the stored hash. Verifying the current password
// is the caller's concern.
func (u *User) ChangePassword(newHash string) {
	u.PasswordHash = newHash
	u.markUpdated()
}
