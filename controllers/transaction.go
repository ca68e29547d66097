package controllers

import (
	"net/http"

	"smartudhar-backend/config"
	"smartudhar-backend/ledger"
	"smartudhar-backend/models"
	"smartudhar-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CreateTransactionInput defines the expected JSON structure for recording a
// ledger entry. Amount arrives as text and is parsed to an exact decimal.
type CreateTransactionInput struct {
	Amount      string `json:"amount" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=credit debit"`
	Description string `json:"description"`
}

// TransactionRow is one ledger entry annotated with its running balance.
type TransactionRow struct {
	ID             uint            `json:"id"`
	Amount         decimal.Decimal `json:"amount"`
	Type           string          `json:"type"`
	Description    string          `json:"description"`
	CreatedAt      string          `json:"createdAt"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

func toEntries(txs []models.Transaction) []ledger.Entry {
	entries := make([]ledger.Entry, 0, len(txs))
	for _, tx := range txs {
		entries = append(entries, ledger.Entry{
			Kind:      ledger.Kind(tx.Type),
			Amount:    tx.Amount,
			Note:      tx.Description,
			CreatedAt: tx.CreatedAt,
		})
	}
	return entries
}

// CreateTransaction records a credit ("udhar diya") or debit ("paisa mila")
// against one of the caller's active customers.
func CreateTransaction(c *gin.Context) {
	userUUID, ok := currentUserUUID(c)
	if !ok {
		return
	}

	id, ok := customerIDParam(c)
	if !ok {
		return
	}

	var input CreateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	amount, err := ledger.ParseAmount(input.Amount)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	customer, ok := findOwnedCustomer(c, userUUID, id)
	if !ok {
		return
	}

	if customer.IsArchived {
		utils.RespondWithError(c, http.StatusBadRequest, "Customer is archived")
		return
	}

	tx := models.Transaction{
		CustomerID:  customer.ID,
		UserID:      userUUID,
		Amount:      amount,
		Type:        input.Type,
		Description: input.Description,
	}

	if err := config.DB.Create(&tx).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record transaction")
		return
	}

	c.JSON(http.StatusCreated, tx)
}

// GetTransactions lists a customer's ledger sorted by creation time
// (?order=asc|desc, default desc = newest first). Every row carries the
// chronological running balance; the response total always equals the
// running balance of the newest row.
func GetTransactions(c *gin.Context) {
	userUUID, ok := currentUserUUID(c)
	if !ok {
		return
	}

	id, ok := customerIDParam(c)
	if !ok {
		return
	}

	customer, ok := findOwnedCustomer(c, userUUID, id)
	if !ok {
		return
	}

	order := "created_at DESC"
	if c.Query("order") == "asc" {
		order = "created_at ASC"
	}

	var txs []models.Transaction
	if err := config.DB.Where("customer_id = ?", customer.ID).
		Order(order).Find(&txs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}

	entries := toEntries(txs)
	balances := ledger.RunningBalances(entries)

	rows := make([]TransactionRow, 0, len(txs))
	for i, tx := range txs {
		rows = append(rows, TransactionRow{
			ID:             tx.ID,
			Amount:         tx.Amount,
			Type:           tx.Type,
			Description:    tx.Description,
			CreatedAt:      utils.FormatEntryTime(tx.CreatedAt),
			RunningBalance: balances[i],
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"customer":     customer,
		"transactions": rows,
		"balance":      ledger.ComputeBalance(entries),
	})
}
