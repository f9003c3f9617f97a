package services

import (
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/relaxing-koala/restaurant-api/models"
	"github.com/relaxing-koala/restaurant-api/utils"
)

// LineItemInput is one (menu item, quantity) entry from an order request.
// The same menu item may appear more than once; entries are aggregated
// before anything touches the database.
type LineItemInput struct {
	MenuItemID uint `json:"id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required"`
}

// AggregateLineItems merges duplicate entries by menu item id, summing
// quantities. The result has exactly one entry per distinct id and is
// sorted by id so inserts are deterministic.
func AggregateLineItems(items []LineItemInput) []LineItemInput {
	grouped := make(map[uint]int, len(items))
	for _, item := range items {
		grouped[item.MenuItemID] += item.Quantity
	}

	result := make([]LineItemInput, 0, len(grouped))
	for id, qty := range grouped {
		result = append(result, LineItemInput{MenuItemID: id, Quantity: qty})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].MenuItemID < result[j].MenuItemID
	})
	return result
}

type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

// validateItems rejects empty or non-positive input and pre-checks that
// every referenced menu item exists, so a bad id surfaces as a targeted
// not-found error instead of a foreign key failure at insert time.
func (s *OrderService) validateItems(tx *gorm.DB, items []LineItemInput) error {
	if len(items) == 0 {
		return &utils.ValidationError{Message: "order requires at least one line item"}
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return &utils.ValidationError{Message: "line item quantity must be a positive integer"}
		}
	}
	for _, item := range items {
		var count int64
		if err := tx.Model(&models.MenuItem{}).Where("id = ?", item.MenuItemID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return &utils.NotFoundError{Entity: "menu item", ID: item.MenuItemID}
		}
	}
	return nil
}

// Create inserts an order and its aggregated line items in one
// transaction.
func (s *OrderService) Create(createdBy uint, tableNumber int, notes *string, items []LineItemInput) (*models.Order, error) {
	aggregated := AggregateLineItems(items)

	order := models.Order{
		TableNumber: tableNumber,
		Status:      models.OrderPending,
		Notes:       notes,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.validateItems(tx, aggregated); err != nil {
			return err
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		return insertLineItems(tx, order.ID, aggregated)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(order.ID)
}

// Update rewrites an order's fields and fully replaces its line items:
// existing rows are deleted and the re-aggregated set reinserted. No
// diffing; the input is the complete new state.
func (s *OrderService) Update(orderID uint, tableNumber int, notes *string, items []LineItemInput) (*models.Order, error) {
	aggregated := AggregateLineItems(items)

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return &utils.NotFoundError{Entity: "order", ID: orderID}
		}
		if err := s.validateItems(tx, aggregated); err != nil {
			return err
		}

		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		if err := insertLineItems(tx, orderID, aggregated); err != nil {
			return err
		}

		order.TableNumber = tableNumber
		order.Notes = notes
		order.UpdatedAt = time.Now()
		return tx.Save(&order).Error
	})
	if err != nil {
		return nil, err
	}

	return s.Get(orderID)
}

// AddItem appends a single line item to an existing order, folding the
// quantity into an existing row for the same menu item if there is one.
func (s *OrderService) AddItem(orderID, menuItemID uint, quantity int) (*models.Order, error) {
	if quantity <= 0 {
		return nil, &utils.ValidationError{Message: "line item quantity must be a positive integer"}
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return &utils.NotFoundError{Entity: "order", ID: orderID}
		}
		var count int64
		if err := tx.Model(&models.MenuItem{}).Where("id = ?", menuItemID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return &utils.NotFoundError{Entity: "menu item", ID: menuItemID}
		}

		var existing models.OrderItem
		err := tx.Where("order_id = ? AND menu_item_id = ?", orderID, menuItemID).First(&existing).Error
		if err == nil {
			existing.Quantity += quantity
			return tx.Save(&existing).Error
		}
		return tx.Create(&models.OrderItem{
			OrderID:    orderID,
			MenuItemID: menuItemID,
			Quantity:   quantity,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return s.Get(orderID)
}

// SetStatus updates just the order status.
func (s *OrderService) SetStatus(orderID uint, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, &utils.ValidationError{Message: "invalid order status"}
	}

	var order models.Order
	if err := s.DB.First(&order, orderID).Error; err != nil {
		return nil, &utils.NotFoundError{Entity: "order", ID: orderID}
	}

	order.Status = status
	order.UpdatedAt = time.Now()
	if err := s.DB.Save(&order).Error; err != nil {
		return nil, err
	}

	return s.Get(orderID)
}

// Get loads an order with its line items and their menu items.
func (s *OrderService) Get(orderID uint) (*models.Order, error) {
	var order models.Order
	if err := s.DB.Preload("Items.MenuItem").First(&order, orderID).Error; err != nil {
		return nil, &utils.NotFoundError{Entity: "order", ID: orderID}
	}
	return &order, nil
}

// Delete removes an order; line items go with it.
func (s *OrderService) Delete(orderID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, orderID).Error
	})
}

func insertLineItems(tx *gorm.DB, orderID uint, items []LineItemInput) error {
	for _, item := range items {
		orderItem := models.OrderItem{
			OrderID:    orderID,
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		}
		if err := tx.Create(&orderItem).Error; err != nil {
			return err
		}
	}
	return nil
}
