package models

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	TableNumber int         `gorm:"not null" json:"table_number"`
	Status      OrderStatus `gorm:"type:varchar(16);not null;default:'PENDING'" json:"status"`
	Notes       *string     `gorm:"type:varchar(255)" json:"notes,omitempty"`
	CreatedBy   uint        `gorm:"not null;index" json:"created_by"`
	Items       []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"not null" json:"updated_at"`
}

// Total derives the order amount from its line items at the menu items'
// current prices. It is never stored on the order row; the payment amount
// is the only durable price snapshot. Items must be loaded with their
// menu items for the result to be meaningful.
func (o *Order) Total() int64 {
	var total int64
	for _, item := range o.Items {
		total += int64(item.Quantity) * item.MenuItem.Price
	}
	return total
}
