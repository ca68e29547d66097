package controllers

import (
	"net/http"
	"strings"

	"smartudhar-backend/config"
	"smartudhar-backend/models"
	"smartudhar-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpdateProfileInput struct {
	Name *string `json:"name"`
}

// UpdateProfile lets the shopkeeper set their shop/display name, which is
// used on outgoing reminder messages.
func UpdateProfile(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}

	if err := config.DB.Save(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"phone": user.Phone,
			"name":  user.Name,
		},
	})
}
