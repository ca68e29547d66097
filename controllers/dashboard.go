package controllers

import (
	"net/http"

	"smartudhar-backend/config"
	"smartudhar-backend/models"
	"smartudhar-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type DashboardOverview struct {
	TotalCustomers int64           `json:"totalCustomers"`
	TotalCredit    decimal.Decimal `json:"totalCredit"` // udhar diya
	TotalDebit     decimal.Decimal `json:"totalDebit"`  // paisa mila
	Balance        decimal.Decimal `json:"balance"`
}

// GetDashboardOverview returns roster size and money totals across every
// transaction the caller has recorded.
func GetDashboardOverview(c *gin.Context) {
	userUUID, ok := currentUserUUID(c)
	if !ok {
		return
	}

	var totalCustomers int64
	if err := config.DB.Model(&models.Customer{}).
		Where("user_id = ? AND is_archived = false", userUUID).
		Count(&totalCustomers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to count customers")
		return
	}

	var txs []models.Transaction
	if err := config.DB.Select("amount", "type").
		Where("user_id = ?", userUUID).Find(&txs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}

	credit := decimal.Zero
	debit := decimal.Zero
	for _, tx := range txs {
		if tx.Type == "credit" {
			credit = credit.Add(tx.Amount)
		} else {
			debit = debit.Add(tx.Amount)
		}
	}

	c.JSON(http.StatusOK, DashboardOverview{
		TotalCustomers: totalCustomers,
		TotalCredit:    credit,
		TotalDebit:     debit,
		Balance:        credit.Sub(debit),
	})
}
