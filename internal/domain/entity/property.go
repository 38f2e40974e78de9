package entity

import "time"

const PropertyStatusAvailable = "AVAILABLE"

// Property is owned by the property domain; the core reads and enriches it.
// OwnerName and TenantCount are display-only fields computed at read time
// and never persisted.
type Property struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	ZipCode     string    `json:"zipCode"`
	Type        string    `json:"type"`
	Bedrooms    int       `json:"bedrooms"`
	Bathrooms   int       `json:"bathrooms"`
	RentAmount  float64   `json:"rentAmount"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	UserID      int64     `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	OwnerName   string `json:"ownerName,omitempty"`
	TenantCount int    `json:"tenantCount"`
}
