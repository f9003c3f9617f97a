package models

import "time"

type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "CARD"
	PaymentCash   PaymentMethod = "CASH"
	PaymentCheque PaymentMethod = "CHEQUE"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCard, PaymentCash, PaymentCheque:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentCancelled PaymentStatus = "CANCELLED"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentCancelled:
		return true
	}
	return false
}

// Payment settles an order. Amount is the order total at the time of
// payment, in minor units, and is the durable snapshot of the price: a
// later menu item price change moves derived order totals but never a
// recorded payment.
type Payment struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	OrderID        uint          `gorm:"not null;index" json:"order_id"`
	Order          Order         `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"order,omitempty"`
	Amount         int64         `gorm:"not null" json:"amount"`
	Method         PaymentMethod `gorm:"type:varchar(16);not null;default:'CASH'" json:"method"`
	Status         PaymentStatus `gorm:"type:varchar(16);not null;default:'PENDING'" json:"status"`
	InvoiceNumber  string        `gorm:"type:varchar(64);not null" json:"invoice_number"`
	InvoiceName    *string       `gorm:"type:varchar(255)" json:"invoice_name,omitempty"`
	InvoiceAddress *string       `gorm:"type:varchar(255)" json:"invoice_address,omitempty"`
	InvoiceEmail   *string       `gorm:"type:varchar(255)" json:"invoice_email,omitempty"`
	CreatedAt      time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time     `gorm:"not null" json:"updated_at"`
}
