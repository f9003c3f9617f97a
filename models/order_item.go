package models

// OrderItem is one line of an order: a menu item and a quantity. The
// composite primary key (menu_item_id, order_id) guarantees at most one
// row per menu item per order; duplicate input entries are aggregated
// before insert. Rows are deleted with their order.
type OrderItem struct {
	MenuItemID uint     `gorm:"primaryKey;autoIncrement:false" json:"menu_item_id"`
	OrderID    uint     `gorm:"primaryKey;autoIncrement:false" json:"order_id"`
	MenuItem   MenuItem `gorm:"foreignKey:MenuItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"menu_item"`
	Order      Order    `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Quantity   int      `gorm:"not null" json:"quantity"`
}

// Subtotal is quantity times the menu item's current price, in minor units.
func (i *OrderItem) Subtotal() int64 {
	return int64(i.Quantity) * i.MenuItem.Price
}
