// services/otp_service.go
package services

import (
	"fmt"
	"os"

	"smartudhar-backend/config"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// OTPService delivers login codes over SMS. Credentials are read at send
// time, after .env has been loaded, never latched at construction. When
// Twilio credentials are missing or OTP_DEV_MODE is set, codes are logged
// instead of sent so the app stays usable in local development.
type OTPService struct{}

func NewOTPService() *OTPService {
	return &OTPService{}
}

// SendCode texts the OTP to +91<phone>.
func (s *OTPService) SendCode(phone, code string) error {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	from := os.Getenv("TWILIO_FROM_NUMBER")

	if os.Getenv("OTP_DEV_MODE") == "true" || accountSid == "" || authToken == "" || from == "" {
		config.Log.Infow("OTP (dev mode, not sent)", "phone", phone, "code", code)
		return nil
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})

	params := &twilioApi.CreateMessageParams{}
	params.SetTo("+91" + phone)
	params.SetFrom(from)
	params.SetBody(fmt.Sprintf("Your SmartUdhar login code is %s. It expires in 5 minutes.", code))

	if _, err := client.Api.CreateMessage(params); err != nil {
		config.Log.Errorw("failed to send OTP", "phone", phone, "error", err)
		return err
	}

	return nil
}
