package model

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusSettled  Status = "settled"
	StatusReturned Status = "returned"
	StatusFailed   Status = "failed"
)

// Terminal reports whether the status is absorbing. Only pending records can
// still transition.
func (s Status) Terminal() bool {
	return s == StatusSettled || s == StatusReturned || s == StatusFailed
}

type Submission struct {
	SenderAccount   string  `json:"sender_account"`
	ReceiverAccount string  `json:"receiver_account"`
	Amount          float64 `json:"amount"`
	Memo            string  `json:"memo"`
}

type PaymentRecord struct {
	ConfirmationID  string
	SenderAccount   string
	ReceiverAccount string
	Amount          float64
	Memo            string
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type SubmitResponse struct {
	ConfirmationID string    `json:"confirmation_id"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type StatusEntry struct {
	ConfirmationID string    `json:"confirmation_id"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
