package models

import "time"

type Reservation struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Email      string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone      string    `gorm:"type:varchar(255);not null" json:"phone"`
	Time       time.Time `gorm:"not null" json:"time"`
	NoOfGuests int       `gorm:"not null" json:"no_of_guests"`
	Message    *string   `gorm:"type:varchar(255)" json:"message,omitempty"`
	CreatedBy  uint      `gorm:"not null;index" json:"created_by"`
	Creator    User      `gorm:"foreignKey:CreatedBy;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}
