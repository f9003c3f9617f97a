package controllers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	chart "github.com/wcharczuk/go-chart/v2"
	"gorm.io/gorm"

	"github.com/relaxing-koala/restaurant-api/models"
	"github.com/relaxing-koala/restaurant-api/utils"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetRevenueStats aggregates the numbers shown on the staff dashboard.
// Revenue counts COMPLETED payments only; amounts are minor units.
func (dc *DashboardController) GetRevenueStats(c *gin.Context) {
	today := time.Now().Truncate(24 * time.Hour)

	var stats struct {
		TotalOrders  int64 `json:"total_orders"`
		TodayOrders  int64 `json:"today_orders"`
		TotalRevenue int64 `json:"total_revenue"`
		TodayRevenue int64 `json:"today_revenue"`
		OrderStats   struct {
			Pending   int64 `json:"pending"`
			Completed int64 `json:"completed"`
			Cancelled int64 `json:"cancelled"`
		} `json:"order_stats"`
		Reservations int64 `json:"reservations"`
		Feedbacks    int64 `json:"feedbacks"`
	}

	dc.DB.Model(&models.Order{}).Count(&stats.TotalOrders)
	dc.DB.Model(&models.Order{}).Where("created_at >= ?", today).Count(&stats.TodayOrders)

	dc.DB.Model(&models.Order{}).Where("status = ?", models.OrderPending).Count(&stats.OrderStats.Pending)
	dc.DB.Model(&models.Order{}).Where("status = ?", models.OrderCompleted).Count(&stats.OrderStats.Completed)
	dc.DB.Model(&models.Order{}).Where("status = ?", models.OrderCancelled).Count(&stats.OrderStats.Cancelled)

	if err := dc.DB.Model(&models.Payment{}).Where("status = ?", models.PaymentCompleted).
		Select("COALESCE(SUM(amount), 0)").Row().Scan(&stats.TotalRevenue); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := dc.DB.Model(&models.Payment{}).
		Where("status = ? AND created_at >= ?", models.PaymentCompleted, today).
		Select("COALESCE(SUM(amount), 0)").Row().Scan(&stats.TodayRevenue); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	dc.DB.Model(&models.Reservation{}).Count(&stats.Reservations)
	dc.DB.Model(&models.Feedback{}).Count(&stats.Feedbacks)

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", stats)
}

// GetRevenueChart renders a PNG bar chart of daily revenue for the last
// seven days.
func (dc *DashboardController) GetRevenueChart(c *gin.Context) {
	const days = 7
	now := time.Now().Truncate(24 * time.Hour)

	bars := make([]chart.Value, 0, days)
	for i := days - 1; i >= 0; i-- {
		dayStart := now.AddDate(0, 0, -i)
		dayEnd := dayStart.AddDate(0, 0, 1)

		var revenue int64
		if err := dc.DB.Model(&models.Payment{}).
			Where("status = ? AND created_at >= ? AND created_at < ?", models.PaymentCompleted, dayStart, dayEnd).
			Select("COALESCE(SUM(amount), 0)").Row().Scan(&revenue); err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}

		bars = append(bars, chart.Value{
			Label: dayStart.Format("Mon"),
			Value: float64(revenue) / 100,
		})
	}

	graph := chart.BarChart{
		Title:    "Revenue (last 7 days)",
		Width:    800,
		Height:   400,
		BarWidth: 60,
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
