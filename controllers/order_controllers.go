package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/relaxing-koala/restaurant-api/events"
	"github.com/relaxing-koala/restaurant-api/middlewares"
	"github.com/relaxing-koala/restaurant-api/models"
	"github.com/relaxing-koala/restaurant-api/services"
	"github.com/relaxing-koala/restaurant-api/utils"
)

type OrderController struct {
	DB     *gorm.DB
	Orders *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{
		DB:     db,
		Orders: services.NewOrderService(db),
	}
}

// orderResponse attaches the derived total to an order payload. The total
// is computed on demand; it is never a column.
type orderResponse struct {
	models.Order
	Total int64 `json:"total"`
}

func newOrderResponse(order models.Order) orderResponse {
	return orderResponse{Order: order, Total: order.Total()}
}

type orderRequest struct {
	TableNumber int                      `json:"table_number" binding:"required"`
	Notes       *string                  `json:"notes"`
	Items       []services.LineItemInput `json:"items"`
}

func (oc *OrderController) CreateOrder(c *gin.Context) {
	auth, _ := middlewares.CurrentUser(c)

	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.Create(auth.UserID, req.TableNumber, req.Notes, req.Items)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	events.BroadcastOrderCreated(*order)
	utils.RespondJSON(c, http.StatusCreated, "Order created", newOrderResponse(*order))
}

func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.Update(uint(id), req.TableNumber, req.Notes, req.Items)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	events.BroadcastOrderUpdated(*order)
	utils.RespondJSON(c, http.StatusOK, "Order updated", newOrderResponse(*order))
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	order, err := oc.Orders.Get(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", newOrderResponse(*order))
}

// GetOrdersPaginated lists orders with their items, newest first.
func (oc *OrderController) GetOrdersPaginated(c *gin.Context) {
	params := utils.ParsePageParams(c, "")

	var totalCount int64
	if err := oc.DB.Model(&models.Order{}).Count(&totalCount).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var orders []models.Order
	if err := oc.DB.Preload("Items.MenuItem").
		Order("created_at desc").Order("status asc").
		Limit(params.PageSize).Offset(params.Offset()).
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	rows := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, newOrderResponse(order))
	}

	utils.RespondJSON(c, http.StatusOK, "List of orders", utils.PageResult{
		Rows:       rows,
		TotalCount: totalCount,
	})
}

func (oc *OrderController) AddItemToOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	var req struct {
		MenuItemID uint `json:"menu_item_id" binding:"required"`
		Quantity   int  `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	order, err := oc.Orders.AddItem(uint(id), req.MenuItemID, req.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	events.BroadcastOrderUpdated(*order)
	utils.RespondJSON(c, http.StatusOK, "Item added to order", newOrderResponse(*order))
}

func (oc *OrderController) SetOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.SetStatus(uint(id), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	events.BroadcastOrderUpdated(*order)
	utils.RespondJSON(c, http.StatusOK, "Order status updated", newOrderResponse(*order))
}

func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	if err := oc.Orders.Delete(uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order deleted", gin.H{"order_id": id})
}
