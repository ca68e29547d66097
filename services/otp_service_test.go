// services/otp_service_test.go
package services

import (
	"testing"

	"smartudhar-backend/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// The service must honor env values set after construction, since .env is
// only loaded once main starts.
func TestSendCodeReadsEnvAtSendTime(t *testing.T) {
	config.Log = zap.NewNop().Sugar()

	svc := NewOTPService()

	t.Setenv("TWILIO_ACCOUNT_SID", "")
	t.Setenv("TWILIO_AUTH_TOKEN", "")
	t.Setenv("TWILIO_FROM_NUMBER", "")
	t.Setenv("OTP_DEV_MODE", "")

	// No credentials: dev mode, no network call, no error.
	assert.NoError(t, svc.SendCode("9876543210", "123456"))

	// Credentials present but dev mode forced after the service was built.
	t.Setenv("TWILIO_ACCOUNT_SID", "ACXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXX")
	t.Setenv("TWILIO_AUTH_TOKEN", "token")
	t.Setenv("TWILIO_FROM_NUMBER", "+15005550006")
	t.Setenv("OTP_DEV_MODE", "true")

	assert.NoError(t, svc.SendCode("9876543210", "123456"))
}
