package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/relaxing-koala/restaurant-api/models"
	"github.com/relaxing-koala/restaurant-api/utils"
)

type PaymentService struct {
	DB *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db}
}

type CreatePaymentInput struct {
	OrderID        uint                 `json:"order_id" binding:"required"`
	Amount         int64                `json:"amount" binding:"required"`
	Method         models.PaymentMethod `json:"method"`
	Status         models.PaymentStatus `json:"status"`
	InvoiceName    *string              `json:"invoice_name"`
	InvoiceAddress *string              `json:"invoice_address"`
	InvoiceEmail   *string              `json:"invoice_email"`
}

// Create records a payment and completes its order in one transaction.
// The submitted amount is checked against the order's derived total; a
// mismatch is rejected, so the stored amount is always the price at time
// of sale. When an invoice email address is present an outbox row is
// written in the same transaction and the dispatcher sends the invoice
// out of band.
func (s *PaymentService) Create(in CreatePaymentInput) (*models.Payment, error) {
	method := in.Method
	if method == "" {
		method = models.PaymentCash
	}
	if !method.Valid() {
		return nil, &utils.ValidationError{Message: "invalid payment method"}
	}

	status := in.Status
	if status == "" {
		status = models.PaymentCompleted
	}
	if !status.Valid() {
		return nil, &utils.ValidationError{Message: "invalid payment status"}
	}

	payment := models.Payment{
		OrderID:        in.OrderID,
		Amount:         in.Amount,
		Method:         method,
		Status:         status,
		InvoiceNumber:  uuid.NewString(),
		InvoiceName:    in.InvoiceName,
		InvoiceAddress: in.InvoiceAddress,
		InvoiceEmail:   in.InvoiceEmail,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Preload("Items.MenuItem").First(&order, in.OrderID).Error; err != nil {
			return &utils.NotFoundError{Entity: "order", ID: in.OrderID}
		}
		if order.Status == models.OrderCompleted {
			return &utils.ValidationError{Message: "order is already completed"}
		}

		total := order.Total()
		if in.Amount != total {
			return &utils.ValidationError{
				Message: fmt.Sprintf("payment amount %d does not match order total %d", in.Amount, total),
			}
		}

		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		order.Status = models.OrderCompleted
		order.UpdatedAt = time.Now()
		if err := tx.Save(&order).Error; err != nil {
			return err
		}

		if in.InvoiceEmail != nil && *in.InvoiceEmail != "" {
			outbox := models.EmailOutbox{
				PaymentID: payment.ID,
				Recipient: *in.InvoiceEmail,
				Status:    models.OutboxPending,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}
			if err := tx.Create(&outbox).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &payment, nil
}
