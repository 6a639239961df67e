package model

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusSettled  Status = "settled"
	StatusReturned Status = "returned"
	StatusFailed   Status = "failed"
)

// Payment is the locally tracked view of a submitted payment. ConfirmationID
// stays nil until a forward to the gateway has succeeded; Status mirrors the
// gateway's view but may lag until the next lookup reconciles it.
type Payment struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	ConfirmationID  *string   `gorm:"index" json:"confirmation_id"`
	SenderAccount   string    `json:"sender_account"`
	ReceiverAccount string    `json:"receiver_account"`
	Amount          float64   `json:"amount"`
	Memo            string    `json:"memo,omitempty"`
	Status          Status    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type SubmitRequest struct {
	SenderAccount   string  `json:"sender_account"`
	ReceiverAccount string  `json:"receiver_account"`
	Amount          float64 `json:"amount"`
	Memo            string  `json:"memo,omitempty"`
}
