package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/relaxing-koala/restaurant-api/models"
	"github.com/relaxing-koala/restaurant-api/utils"
)

// InvoiceSender delivers a rendered invoice. Satisfied by Mailer; tests
// substitute their own.
type InvoiceSender interface {
	SendInvoice(to string, invoiceNumber string, pdf []byte) error
}

// MailDispatcher drains the email outbox in the background. Sending is
// best-effort with bounded retries; a payment is never blocked or failed
// by the mail provider.
type MailDispatcher struct {
	DB          *gorm.DB
	Sender      InvoiceSender
	StopChan    chan struct{}
	Interval    time.Duration
	MaxAttempts int
}

func NewMailDispatcher(db *gorm.DB, sender InvoiceSender) *MailDispatcher {
	return &MailDispatcher{
		DB:          db,
		Sender:      sender,
		StopChan:    make(chan struct{}),
		Interval:    5 * time.Second,
		MaxAttempts: 3,
	}
}

func (d *MailDispatcher) Start() {
	go func() {
		ticker := time.NewTicker(d.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				d.ProcessPending()
			case <-d.StopChan:
				return
			}
		}
	}()
}

func (d *MailDispatcher) Stop() {
	close(d.StopChan)
}

// ProcessPending sends every PENDING outbox row that still has attempts
// left, marking each SENT or, once the budget is spent, FAILED.
func (d *MailDispatcher) ProcessPending() {
	var pending []models.EmailOutbox
	if err := d.DB.Where("status = ?", models.OutboxPending).
		Order("id asc").Limit(20).Find(&pending).Error; err != nil {
		utils.ErrorLogger.Printf("outbox query failed: %v", err)
		return
	}

	for i := range pending {
		d.dispatch(&pending[i])
	}
}

func (d *MailDispatcher) dispatch(entry *models.EmailOutbox) {
	var payment models.Payment
	if err := d.DB.Preload("Order.Items.MenuItem").First(&payment, entry.PaymentID).Error; err != nil {
		d.recordFailure(entry, err)
		return
	}

	pdf, err := RenderInvoicePDF(&payment.Order, &payment)
	if err != nil {
		d.recordFailure(entry, err)
		return
	}

	if err := d.Sender.SendInvoice(entry.Recipient, payment.InvoiceNumber, pdf); err != nil {
		d.recordFailure(entry, err)
		return
	}

	entry.Status = models.OutboxSent
	entry.Attempts++
	entry.LastError = nil
	entry.UpdatedAt = time.Now()
	if err := d.DB.Save(entry).Error; err != nil {
		utils.ErrorLogger.Printf("outbox update failed: %v", err)
		return
	}
	utils.InfoLogger.Printf("invoice %s emailed to %s", payment.InvoiceNumber, entry.Recipient)
}

func (d *MailDispatcher) recordFailure(entry *models.EmailOutbox, cause error) {
	entry.Attempts++
	msg := cause.Error()
	entry.LastError = &msg
	if entry.Attempts >= d.MaxAttempts {
		entry.Status = models.OutboxFailed
	}
	entry.UpdatedAt = time.Now()
	if err := d.DB.Save(entry).Error; err != nil {
		utils.ErrorLogger.Printf("outbox update failed: %v", err)
	}
	utils.ErrorLogger.Printf("invoice email to %s failed (attempt %d): %v", entry.Recipient, entry.Attempts, cause)
}
