package entity

import "time"

// Tenant is a person occupying (or eligible to occupy) a property. UserID is
// the sponsoring account holder ("roommate-of"); PropertyID stays nil until
// an admin assigns a property. RoommateOf and PropertyName are display-only
// enrichment fields.
type Tenant struct {
	ID         int64     `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	UserID     int64     `json:"userId"`
	PropertyID *int64    `json:"propertyId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	RoommateOf   string `json:"roommateOf,omitempty"`
	PropertyName string `json:"propertyName,omitempty"`
}
