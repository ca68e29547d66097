package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"smartudhar-backend/config"
	"smartudhar-backend/ledger"
	"smartudhar-backend/models"
	"smartudhar-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

// UpdateCustomerInput defines the expected JSON structure for updating a customer
type UpdateCustomerInput struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

func currentUserUUID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return uuid.Nil, false
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return uuid.Nil, false
	}
	return userUUID, true
}

func customerIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return 0, false
	}
	return uint(id), true
}

// findOwnedCustomer loads a customer scoped to the calling user.
func findOwnedCustomer(c *gin.Context, userUUID uuid.UUID, id uint) (*models.Customer, bool) {
	var customer models.Customer
	if err := config.DB.Where("user_id = ? AND id = ?", userUUID, id).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}
	return &customer, true
}

// CreateCustomer adds a customer to the caller's roster
func CreateCustomer(c *gin.Context) {
	userUUID, ok := currentUserUUID(c)
	if !ok {
		return
	}

	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	name := utils.CleanName(input.Name)
	if name == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Customer name is required")
		return
	}

	phone := utils.NormalizePhone(input.Phone)
	if phone != "" && !utils.ValidatePhone(phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	// Check if phone already exists for this user
	if phone != "" {
		var existingCustomer models.Customer
		if err := config.DB.Where("user_id = ? AND phone = ?", userUUID, phone).
			First(&existingCustomer).Error; err == nil {
			utils.RespondWithError(c, http.StatusConflict, "Customer with this phone number already exists")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
	}

	customer := models.Customer{
		UserID: userUUID,
		Name:   name,
		Phone:  phone,
	}

	if err := config.DB.Create(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// GetCustomers retrieves the caller's roster, newest first. ?archived=true
// switches to the archived view; ?search= filters by name or phone substring.
func GetCustomers(c *gin.Context) {
	userUUID, ok := currentUserUUID(c)
	if !ok {
		return
	}

	archived := c.Query("archived") == "true"

	query := config.DB.Where("user_id = ? AND is_archived = ?", userUUID, archived)

	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR phone LIKE ?", pattern, pattern)
	}

	var customers []models.Customer
	if err := query.Order("id DESC").Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	c.JSON(http.StatusOK, customers)
}

// GetCustomer retrieves a specific customer along with their current balance
func GetCustomer(c *gin.Context) {
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
	if err := config.DB.Where("customer_id = ?", customer.ID).Find(&txs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customer": customer,
		"balance":  ledger.ComputeBalance(toEntries(txs)),
	})
}

// UpdateCustomer updates name/phone of an existing customer
func UpdateCustomer(c *gin.Context) {
	userUUID, ok := currentUserUUID(c)
	if !ok {
		return
	}

	id, ok := customerIDParam(c)
	if !ok {
		return
	}

	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customer, ok := findOwnedCustomer(c, userUUID, id)
	if !ok {
		return
	}

	if input.Name != nil {
		name := utils.CleanName(*input.Name)
		if name == "" {
			utils.RespondWithError(c, http.StatusBadRequest, "Customer name is required")
			return
		}
		customer.Name = name
	}

	if input.Phone != nil {
		phone := utils.NormalizePhone(*input.Phone)
		if phone != "" && !utils.ValidatePhone(phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}

		if phone != "" && customer.Phone != phone {
			var existingCustomer models.Customer
			if err := config.DB.Where("user_id = ? AND phone = ?", userUUID, phone).
				First(&existingCustomer).Error; err == nil {
				utils.RespondWithError(c, http.StatusConflict, "Another customer with this phone number already exists")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				return
			}
		}
		customer.Phone = phone
	}

	if err := config.DB.Save(customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// ArchiveCustomer removes a customer from the active roster. Customers are
// never hard-deleted; their ledger stays queryable under the archived view.
func ArchiveCustomer(c *gin.Context) {
	setArchived(c, true, "Customer archived")
}

// RestoreCustomer moves an archived customer back to the active roster
func RestoreCustomer(c *gin.Context) {
	setArchived(c, false, "Customer restored")
}

func setArchived(c *gin.Context, archived bool, message string) {
	userUUID, ok := currentUserUUID(c)
	if !ok {
		return
	}

	id, ok := customerIDParam(c)
	if !ok {
		return
	}

	result := config.DB.Model(&models.Customer{}).
		Where("user_id = ? AND id = ?", userUUID, id).
		Update("is_archived", archived)

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}
