package entity

import "time"

// EventStatus marks what happened to a tenant request. CREATED is a
// lifecycle signal distinct from the request's own PENDING status.
type EventStatus string

const (
	EventCreated  EventStatus = "CREATED"
	EventApproved EventStatus = "APPROVED"
	EventRejected EventStatus = "REJECTED"
)

// TenantRequestEvent is the message published on the lifecycle topic and
// rebroadcast to connected observers. It is transient and never persisted.
type TenantRequestEvent struct {
	RequestID         int64       `json:"requestId"`
	RequestedByUserID int64       `json:"requestedByUserId"`
	Status            EventStatus `json:"status"`
	Email             string      `json:"email"`
	FirstName         string      `json:"firstName"`
	LastName          string      `json:"lastName"`
	Timestamp         time.Time   `json:"timestamp"`
}

// NewTenantRequestEvent builds an event from a request snapshot.
func NewTenantRequestEvent(r *TenantRequest, status EventStatus) *TenantRequestEvent {
	return &TenantRequestEvent{
		RequestID:         r.ID,
		RequestedByUserID: r.RequestedByUserID,
		Status:            status,
		Email:             r.Email,
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		Timestamp:         time.Now().UTC(),
	}
}
