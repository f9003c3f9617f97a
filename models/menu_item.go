package models

import "time"

// MenuItem is a sellable dish. Price is stored in minor currency units
// (cents), never as a float.
type MenuItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Price       int64     `gorm:"not null" json:"price"`
	Vegan       bool      `gorm:"not null;default:false" json:"vegan"`
	Seafood     bool      `gorm:"not null;default:false" json:"seafood"`
	CreatedBy   uint      `gorm:"not null" json:"created_by"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
