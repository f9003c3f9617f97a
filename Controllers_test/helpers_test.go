package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/relaxing-koala/restaurant-api/models"
	"github.com/relaxing-koala/restaurant-api/router"
	"github.com/relaxing-koala/restaurant-api/utils"
)

// testEnv wires a fresh in-memory database and the full route table, with
// one seeded account per role.
type testEnv struct {
	DB     *gorm.DB
	Router *gin.Engine
	Admin  models.User
	Staff  models.User
	Diner  models.User
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.InitLogger()

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

	env := &testEnv{
		DB:     db,
		Router: router.SetupRouter(db),
		Admin:  seedUser(t, db, "Ava Admin", "admin@example.com", models.RoleAdmin),
		Staff:  seedUser(t, db, "Sam Staff", "staff@example.com", models.RoleStaff),
		Diner:  seedUser(t, db, "Dana Diner", "diner@example.com", models.RoleUser),
	}
	return env
}

func seedUser(t *testing.T, db *gorm.DB, name, email string, role models.Role) models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := models.User{Name: name, Email: email, Password: string(hashed), Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func (env *testEnv) seedMenuItem(t *testing.T, name string, price int64) models.MenuItem {
	t.Helper()
	item := models.MenuItem{Name: name, Description: name, Price: price, CreatedBy: env.Staff.ID}
	require.NoError(t, env.DB.Create(&item).Error)
	return item
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := utils.GenerateToken(user.ID, user.Email, user.Name, string(user.Role))
	require.NoError(t, err)
	return token
}

// doJSON issues a request against the test router. A non-empty token goes
// out as a bearer header.
func (env *testEnv) doJSON(t *testing.T, method, url string, payload interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the "data" field of the response envelope.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	var envelope struct {
		Status  bool            `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}
