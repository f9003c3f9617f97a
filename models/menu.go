package models

import "time"

type Menu struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	Name        string           `gorm:"type:varchar(255);not null" json:"name"`
	Description string           `gorm:"type:text;not null" json:"description"`
	Recommended bool             `gorm:"not null;default:false" json:"recommended"`
	Active      bool             `gorm:"not null;default:true" json:"active"`
	CreatedBy   uint             `gorm:"not null" json:"created_by"`
	Items       []MenuItemToMenu `gorm:"foreignKey:MenuID" json:"items,omitempty"`
	CreatedAt   time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time        `gorm:"not null" json:"updated_at"`
}

// MenuItemToMenu links a menu item into a menu. The composite primary key
// keeps an item from appearing twice in the same menu.
type MenuItemToMenu struct {
	MenuItemID uint     `gorm:"primaryKey;autoIncrement:false" json:"menu_item_id"`
	MenuID     uint     `gorm:"primaryKey;autoIncrement:false" json:"menu_id"`
	MenuItem   MenuItem `gorm:"foreignKey:MenuItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"menu_item"`
	Menu       Menu     `gorm:"foreignKey:MenuID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
