package controllers

import (
	"fmt"
	"net/http"
	"time"

	"smartudhar-backend/config"
	"smartudhar-backend/ledger"
	"smartudhar-backend/models"
	"smartudhar-backend/services"
	"smartudhar-backend/utils"

	"github.com/gin-gonic/gin"
)

// ExportStatement renders a customer's full ledger as a downloadable PDF
// named <customerName>-ledger.pdf.
func ExportStatement(c *gin.Context) {
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

	var txs []models.Transaction
	if err := config.DB.Where("customer_id = ?", customer.ID).
		Order("created_at ASC").Find(&txs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}

	statement := ledger.BuildStatement(customer.Name, toEntries(txs), time.Now())

	pdfBytes, err := services.RenderStatementPDF(statement)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to render statement")
		return
	}

	filename := fmt.Sprintf("%s-ledger.pdf", customer.Name)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
