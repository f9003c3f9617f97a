package models

import "time"

type OutboxStatus string

const (
	OutboxPending OutboxStatus = "PENDING"
	OutboxSent    OutboxStatus = "SENT"
	OutboxFailed  OutboxStatus = "FAILED"
)

// EmailOutbox queues an invoice email for a payment. The row is written in
// the same transaction as the payment itself; the mail dispatcher picks up
// PENDING rows out of band, so a slow or failing mail provider never fails
// the payment request.
type EmailOutbox struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	PaymentID uint         `gorm:"not null;index" json:"payment_id"`
	Payment   Payment      `gorm:"foreignKey:PaymentID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Recipient string       `gorm:"type:varchar(255);not null" json:"recipient"`
	Status    OutboxStatus `gorm:"type:varchar(16);not null;default:'PENDING';index" json:"status"`
	Attempts  int          `gorm:"not null;default:0" json:"attempts"`
	LastError *string      `gorm:"type:text" json:"last_error,omitempty"`
	CreatedAt time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null" json:"updated_at"`
}
