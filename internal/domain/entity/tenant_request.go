package entity

import "time"

// RequestStatus is the lifecycle state of a tenant request. A request is
// created PENDING and transitions exactly once to APPROVED or REJECTED;
// both are terminal.
type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestApproved RequestStatus = "APPROVED"
	RequestRejected RequestStatus = "REJECTED"
)

// TenantRequest is an application to register a prospective tenant,
// submitted by a user and subject to admin approval.
type TenantRequest struct {
	ID                int64         `json:"id"`
	FirstName         string        `json:"firstName"`
	LastName          string        `json:"lastName"`
	Email             string        `json:"email"`
	Phone             string        `json:"phone"`
	RequestedByUserID int64         `json:"requestedByUserId"`
	Status            RequestStatus `json:"status"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
}

// IsPending reports whether the request can still transition.
func (r *TenantRequest) IsPending() bool { return r.Status == RequestPending }
