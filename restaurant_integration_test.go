package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/relaxing-koala/restaurant-api/models"
	"github.com/relaxing-koala/restaurant-api/router"
	"github.com/relaxing-koala/restaurant-api/services"
	"github.com/relaxing-koala/restaurant-api/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	os.Exit(m.Run())
}

// TestEndToEndIntegration walks the main flow:
// 1. Staff logs in
// 2. Staff creates a menu item
// 3. A diner places an order with duplicate line entries
// 4. Staff records a payment for the exact total with an invoice email
// 5. The order is COMPLETED and the invoice email is queued
// 6. The outbox dispatcher sends the queued invoice
func TestEndToEndIntegration(t *testing.T) {
	db := setupIntegrationDB(t)
	r := router.SetupRouter(db)

	staffToken := loginAs(t, r, "staff@example.com")
	dinerToken := loginAs(t, r, "diner@example.com")

	// Staff creates a menu item.
	itemID := postJSON(t, r, "POST", "/dashboard/menu-items", staffToken, map[string]interface{}{
		"name":        "Flat White",
		"description": "Double shot",
		"price":       500,
	}, http.StatusCreated)["id"].(float64)

	// Diner orders the same item twice plus once; entries merge to one
	// line of quantity 3.
	orderData := postJSON(t, r, "POST", "/orders", dinerToken, map[string]interface{}{
		"table_number": 7,
		"items": []map[string]interface{}{
			{"id": itemID, "quantity": 2},
			{"id": itemID, "quantity": 1},
		},
	}, http.StatusCreated)
	orderID := uint(orderData["id"].(float64))
	require.Equal(t, float64(1500), orderData["total"].(float64))
	require.Len(t, orderData["items"].([]interface{}), 1)

	// Wrong amount is refused and changes nothing.
	postJSON(t, r, "POST", "/dashboard/payments", staffToken, map[string]interface{}{
		"order_id": orderID,
		"amount":   100,
	}, http.StatusUnprocessableEntity)

	// Exact amount settles the order.
	paymentData := postJSON(t, r, "POST", "/dashboard/payments", staffToken, map[string]interface{}{
		"order_id":      orderID,
		"amount":        1500,
		"method":        "CARD",
		"invoice_email": "diner@example.com",
	}, http.StatusCreated)
	paymentID := uint(paymentData["id"].(float64))

	var order models.Order
	require.NoError(t, db.First(&order, orderID).Error)
	assert.Equal(t, models.OrderCompleted, order.Status)

	var outbox models.EmailOutbox
	require.NoError(t, db.Where("payment_id = ?", paymentID).First(&outbox).Error)
	assert.Equal(t, models.OutboxPending, outbox.Status)

	// The dispatcher drains the outbox.
	sender := &recordingSender{}
	dispatcher := services.NewMailDispatcher(db, sender)
	dispatcher.ProcessPending()

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "diner@example.com", sender.sent[0])

	require.NoError(t, db.First(&outbox, outbox.ID).Error)
	assert.Equal(t, models.OutboxSent, outbox.Status)
}

type recordingSender struct {
	sent []string
}

func (s *recordingSender) SendInvoice(to, invoiceNumber string, pdf []byte) error {
	s.sent = append(s.sent, to)
	return nil
}

func setupIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Reservation{},
		&models.Menu{},
		&models.MenuItem{},
		&models.MenuItemToMenu{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.Feedback{},
		&models.EmailOutbox{},
	))

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	db.Create(&models.User{Name: "Sam Staff", Email: "staff@example.com", Password: string(hashed), Role: models.RoleStaff})
	db.Create(&models.User{Name: "Dana Diner", Email: "diner@example.com", Password: string(hashed), Role: models.RoleUser})

	return db
}

func loginAs(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()

	data := postJSON(t, r, "POST", "/login", "", map[string]interface{}{
		"email":    email,
		"password": "secret123",
	}, http.StatusOK)

	token, ok := data["token"].(string)
	require.True(t, ok, "login response must carry a token")
	return token
}

// postJSON sends a request and returns the decoded "data" object from the
// response envelope.
func postJSON(t *testing.T, r *gin.Engine, method, url, token string, payload map[string]interface{}, wantStatus int) map[string]interface{} {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(method, url, bytes.NewBuffer(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, wantStatus, w.Code, fmt.Sprintf("%s %s: %s", method, url, w.Body.String()))

	var envelope struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}
