package controllers

import (
	"errors"
	"net/http"
	"time"

	"smartudhar-backend/config"
	"smartudhar-backend/models"
	"smartudhar-backend/services"
	"smartudhar-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RequestOTPInput struct {
	Phone string `json:"phone" binding:"required"`
}

type VerifyOTPInput struct {
	Phone string `json:"phone" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

const otpTTL = 5 * time.Minute

var otpService = services.NewOTPService()

// RequestOTP generates a login code for a phone number and texts it out.
func RequestOTP(c *gin.Context) {
	var input RequestOTPInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	phone := utils.NormalizePhone(input.Phone)
	if !utils.ValidatePhone(phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Enter valid 10 digit number")
		return
	}

	code, err := utils.GenerateOTPCode()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate OTP")
		return
	}

	hash, err := utils.HashOTPCode(code)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate OTP")
		return
	}

	otp := models.OTPCode{
		Phone:     phone,
		CodeHash:  hash,
		ExpiresAt: time.Now().Add(otpTTL),
	}
	if err := config.DB.Create(&otp).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store OTP")
		return
	}

	if err := otpService.SendCode(phone, code); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to send OTP")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent"})
}

// VerifyOTP redeems a login code. On first login the user record is created.
func VerifyOTP(c *gin.Context) {
	var input VerifyOTPInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	phone := utils.NormalizePhone(input.Phone)
	if !utils.ValidatePhone(phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Enter valid 10 digit number")
		return
	}
	if !utils.ValidateOTP(input.OTP) {
		utils.RespondWithError(c, http.StatusBadRequest, "Enter 6 digit OTP")
		return
	}

	var otp models.OTPCode
	if err := config.DB.Where("phone = ? AND consumed = false", phone).
		Order("created_at DESC").First(&otp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid OTP")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !otp.Usable(time.Now()) || !utils.CheckOTPCode(input.OTP, otp.CodeHash) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid OTP")
		return
	}

	// Find or create the user for this phone
	var user models.User
	err := config.DB.Where("phone = ?", phone).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{Phone: phone}
		if err := config.DB.Create(&user).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
			return
		}
	} else if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	token, err := utils.GenerateToken(user.ID.String())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	// Only burn the code once a token is actually issued; a failure above
	// leaves it redeemable on retry.
	if err := config.DB.Model(&otp).Update("consumed", true).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	// Update last login
	now := time.Now()
	config.DB.Model(&user).Update("last_login", &now)

	maxAge := utils.TokenExpiryHours() * 3600

	c.SetCookie(
		"token",
		token,
		maxAge,
		"/",
		"",
		true,
		true,
	)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"phone": user.Phone,
			"name":  user.Name,
		},
	})
}

func Me(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
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
