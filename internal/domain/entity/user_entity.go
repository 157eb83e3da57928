package entity

import (
	"time"
)

// Roles assignable to a User. Admin unlocks the /admin surface.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Address is a postal address stored as part of the user record.
// Orders keep their own copy; editing a stored address never touches placed orders.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone"`
}

// User is the aggregate root for the identity domain
// Passwords are stored as bcrypt hashes in Password field
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Password   string    `json:"-"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	IsVerified bool      `json:"isVerified"`
	Addresses  []Address `json:"addresses"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// IsAdmin reports whether the user may pass the admin gate.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
