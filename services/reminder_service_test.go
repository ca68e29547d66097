// services/reminder_service_test.go
package services

import (
	"fmt"
	"testing"

	"smartudhar-backend/config"
	"smartudhar-backend/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupServiceDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Transaction{},
		&models.ReminderLog{},
	))

	config.Log = zap.NewNop().Sugar()
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, user models.User, name, phone string, archived bool) models.Customer {
	t.Helper()

	customer := models.Customer{
		UserID:     user.ID,
		Name:       name,
		Phone:      phone,
		IsArchived: archived,
	}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

func seedTx(t *testing.T, db *gorm.DB, user models.User, customer models.Customer, kind, amount string) {
	t.Helper()

	require.NoError(t, db.Create(&models.Transaction{
		CustomerID: customer.ID,
		UserID:     user.ID,
		Amount:     decimal.RequireFromString(amount),
		Type:       kind,
	}).Error)
}

func TestDueCustomersSelection(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewReminderService(db)

	user := models.User{Phone: "9876543210", Name: "Sharma Kirana"}
	require.NoError(t, db.Create(&user).Error)

	owes := seedCustomer(t, db, user, "Owes", "9000000001", false)
	seedTx(t, db, user, owes, "credit", "500")
	seedTx(t, db, user, owes, "debit", "200")

	settled := seedCustomer(t, db, user, "Settled", "9000000002", false)
	seedTx(t, db, user, settled, "credit", "100")
	seedTx(t, db, user, settled, "debit", "100")

	inCredit := seedCustomer(t, db, user, "InCredit", "9000000003", false)
	seedTx(t, db, user, inCredit, "debit", "150")

	archived := seedCustomer(t, db, user, "Archived", "9000000004", true)
	seedTx(t, db, user, archived, "credit", "900")

	noPhone := seedCustomer(t, db, user, "NoPhone", "", false)
	seedTx(t, db, user, noPhone, "credit", "700")

	due := svc.dueCustomers(user)

	require.Len(t, due, 1)
	assert.Equal(t, "Owes", due[0].customer.Name)
	assert.Equal(t, "300", due[0].balance.String())
}

func TestDueCustomersScopedToOwner(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewReminderService(db)

	owner := models.User{Phone: "9876543210"}
	require.NoError(t, db.Create(&owner).Error)
	other := models.User{Phone: "9876543211"}
	require.NoError(t, db.Create(&other).Error)

	theirs := seedCustomer(t, db, other, "Theirs", "9000000001", false)
	seedTx(t, db, other, theirs, "credit", "400")

	assert.Empty(t, svc.dueCustomers(owner))
}

func TestCustomerBalanceEmptyLedger(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewReminderService(db)

	user := models.User{Phone: "9876543210"}
	require.NoError(t, db.Create(&user).Error)
	customer := seedCustomer(t, db, user, "Fresh", "9000000001", false)

	balance, err := svc.customerBalance(customer.ID)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}
