package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/relaxing-koala/restaurant-api/events"
	"github.com/relaxing-koala/restaurant-api/models"
	"github.com/relaxing-koala/restaurant-api/services"
	"github.com/relaxing-koala/restaurant-api/utils"
)

type PaymentController struct {
	DB       *gorm.DB
	Payments *services.PaymentService
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{
		DB:       db,
		Payments: services.NewPaymentService(db),
	}
}

// CreatePayment settles an order. The payment insert and the order's
// COMPLETED transition commit together; the invoice email goes through
// the outbox afterwards.
func (pc *PaymentController) CreatePayment(c *gin.Context) {
	var input services.CreatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	payment, err := pc.Payments.Create(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("payment %d recorded for order %d (%s)", payment.ID, payment.OrderID, payment.Method)
	events.BroadcastPaymentCreated(*payment)
	utils.RespondJSON(c, http.StatusCreated, "Payment created", payment)
}

// GetPaymentsPaginated lists payments newest first with an optional
// invoice email substring filter.
func (pc *PaymentController) GetPaymentsPaginated(c *gin.Context) {
	params := utils.ParsePageParams(c, "email_filter")

	query := pc.DB.Model(&models.Payment{})
	if params.Filter != "" {
		query = query.Where("LOWER(invoice_email) LIKE LOWER(?)", "%"+params.Filter+"%")
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var payments []models.Payment
	if err := query.Order("id desc").
		Limit(params.PageSize).Offset(params.Offset()).
		Find(&payments).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of payments", utils.PageResult{
		Rows:       payments,
		TotalCount: totalCount,
	})
}
