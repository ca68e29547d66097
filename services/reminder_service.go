// services/reminder_service.go
package services

import (
	"fmt"
	"os"

	"smartudhar-backend/config"
	"smartudhar-backend/ledger"
	"smartudhar-backend/models"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// ReminderService texts customers with an outstanding udhar balance once a
// day on behalf of their shopkeeper.
type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
	from   string
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: os.Getenv("TWILIO_FROM_NUMBER"),
	}
}

func (s *ReminderService) StartScheduler() {
	if s.from == "" {
		config.Log.Info("reminder scheduler disabled: Twilio not configured")
		return
	}

	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendDueReminders)

	c.Start()
	config.Log.Info("reminder scheduler started")
}

func (s *ReminderService) SendDueReminders() {
	config.Log.Info("starting daily due-balance reminders")

	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		config.Log.Errorw("failed to fetch users", "error", err)
		return
	}

	for _, user := range users {
		s.ProcessUserReminders(user)
	}

	config.Log.Info("daily due-balance reminders completed")
}

func (s *ReminderService) ProcessUserReminders(user models.User) {
	for _, due := range s.dueCustomers(user) {
		s.sendReminder(user, due.customer, due.balance)
	}
}

type dueCustomer struct {
	customer models.Customer
	balance  decimal.Decimal
}

// dueCustomers selects who gets a reminder: active customers with a phone
// number whose balance is above zero.
func (s *ReminderService) dueCustomers(user models.User) []dueCustomer {
	var customers []models.Customer
	if err := s.db.Where("user_id = ? AND is_archived = false AND phone <> ''", user.ID).
		Find(&customers).Error; err != nil {
		config.Log.Errorw("failed to fetch customers", "user", user.ID, "error", err)
		return nil
	}

	var due []dueCustomer
	for _, customer := range customers {
		balance, err := s.customerBalance(customer.ID)
		if err != nil {
			config.Log.Errorw("failed to compute balance", "customer", customer.ID, "error", err)
			continue
		}
		if balance.Sign() <= 0 {
			continue
		}
		due = append(due, dueCustomer{customer: customer, balance: balance})
	}
	return due
}

func (s *ReminderService) customerBalance(customerID uint) (decimal.Decimal, error) {
	var txs []models.Transaction
	if err := s.db.Where("customer_id = ?", customerID).Find(&txs).Error; err != nil {
		return decimal.Zero, err
	}

	entries := make([]ledger.Entry, 0, len(txs))
	for _, tx := range txs {
		entries = append(entries, ledger.Entry{
			Kind:      ledger.Kind(tx.Type),
			Amount:    tx.Amount,
			CreatedAt: tx.CreatedAt,
		})
	}
	return ledger.ComputeBalance(entries), nil
}

func (s *ReminderService) sendReminder(user models.User, customer models.Customer, balance decimal.Decimal) {
	shop := user.Name
	if shop == "" {
		shop = "your shop"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo("+91" + customer.Phone)
	params.SetFrom(s.from)
	params.SetBody(fmt.Sprintf("Reminder: Rs. %s is pending at %s. - SmartUdhar", balance.StringFixed(2), shop))

	status := "sent"
	if _, err := s.client.Api.CreateMessage(params); err != nil {
		config.Log.Errorw("failed to send reminder", "customer", customer.ID, "error", err)
		status = "failed"
	}

	log := models.ReminderLog{
		UserID:     user.ID,
		CustomerID: customer.ID,
		Balance:    balance,
		Status:     status,
	}
	if err := s.db.Create(&log).Error; err != nil {
		config.Log.Errorw("failed to record reminder", "customer", customer.ID, "error", err)
	}
}
