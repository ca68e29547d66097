package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"smartudhar-backend/config"
	"smartudhar-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB points the global DB at a fresh in-memory sqlite database.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.OTPCode{},
		&models.Customer{},
		&models.Transaction{},
		&models.ReminderLog{},
	))

	config.DB = db
	config.Log = zap.NewNop().Sugar()
}

func seedUser(t *testing.T, phone string) models.User {
	t.Helper()

	user := models.User{Phone: phone}
	require.NoError(t, config.DB.Create(&user).Error)
	return user
}

// testRouter registers the API routes behind a middleware that injects the
// given user identity, standing in for the JWT middleware.
func testRouter(userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userId", userID.String())
		c.Next()
	})

	api := r.Group("/api")
	{
		customers := api.Group("/customers")
		{
			customers.POST("", CreateCustomer)
			customers.GET("", GetCustomers)
			customers.GET("/:id", GetCustomer)
			customers.PUT("/:id", UpdateCustomer)
			customers.POST("/:id/archive", ArchiveCustomer)
			customers.POST("/:id/restore", RestoreCustomer)
			customers.POST("/:id/transactions", CreateTransaction)
			customers.GET("/:id/transactions", GetTransactions)
			customers.GET("/:id/statement", ExportStatement)
		}
		api.GET("/dashboard", GetDashboardOverview)
		api.PUT("/profile", UpdateProfile)
	}

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func customerPath(id uint) string {
	return fmt.Sprintf("/api/customers/%d", id)
}

func archivePath(id uint) string {
	return customerPath(id) + "/archive"
}

func restorePath(id uint) string {
	return customerPath(id) + "/restore"
}

func transactionsPath(id uint) string {
	return customerPath(id) + "/transactions"
}

func createCustomer(t *testing.T, r *gin.Engine, name, phone string) uint {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/customers", gin.H{"name": name, "phone": phone})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	return uint(body["ID"].(float64))
}
