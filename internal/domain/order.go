package domain

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusAccepted   Status = "accepted"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Terminal reports whether no further transitions are allowed.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransition encodes the order lifecycle:
// pending -> accepted -> in_progress -> completed, cancel from any non-terminal state.
func (s Status) CanTransition(next Status) bool {
	if s.Terminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	switch s {
	case StatusPending:
		return next == StatusAccepted
	case StatusAccepted:
		return next == StatusInProgress
	case StatusInProgress:
		return next == StatusCompleted
	}
	return false
}

type Order struct {
	ID         string    `json:"id"`
	ListingID  string    `json:"listing_id"`
	ClientID   string    `json:"client_id"`
	ProviderID string    `json:"provider_id"`
	Status     Status    `json:"status"`
	Rush       bool      `json:"rush"`
	CreatedAt  time.Time `json:"created_at"`
}
