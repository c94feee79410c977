package models

// ProfileUpdatedEvent is published after any successful profile mutation
type ProfileUpdatedEvent struct {
	UserID    string `json:"user_id"`
	UpdatedAt int64  `json:"updated_at"`
}

// TypeChangedEvent is published when a profile's active tag changes
type TypeChangedEvent struct {
	UserID   string   `json:"user_id"`
	FromType UserType `json:"from_type"`
	ToType   UserType `json:"to_type"`
}

// VerificationEvent is published when a review is submitted or decided
type VerificationEvent struct {
	RequestID string             `json:"request_id"`
	UserID    string             `json:"user_id"`
	Role      UserType           `json:"role"`
	Status    VerificationStatus `json:"status"`
}
