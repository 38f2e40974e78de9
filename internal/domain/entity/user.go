package entity

import "time"

// Role is the authorization role carried by a user account.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleStandard Role = "STANDARD"
)

// User is an account holder in the identity domain. The core only reads
// users as a join key; mutation happens through registration.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash, never serialized
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Caller identifies who is invoking an operation. Services check it
// explicitly instead of reading ambient session state.
type Caller struct {
	UserID int64
	Role   Role
}

// IsAdmin reports whether the caller may perform administrative operations.
func (c Caller) IsAdmin() bool { return c.Role == RoleAdmin }
