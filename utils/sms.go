package utils

import (
	"fmt"
	"log"
	"os"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// SendOTPSMS dispatches a login code over SMS via Twilio. Delivery is
// best-effort: callers log failures but the OTP row is already stored, so a
// retried request simply issues a fresh code.
func SendOTPSMS(phone, code string) error {
	sid := os.Getenv("TWILIO_ACCOUNT_SID")
	token := os.Getenv("TWILIO_AUTH_TOKEN")
	from := os.Getenv("TWILIO_FROM_NUMBER")

	if sid == "" || token == "" || from == "" {
		// Local/dev setup without Twilio credentials.
		log.Printf("OTP for %s: %s", phone, code)
		return nil
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: sid,
		Password: token,
	})

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetFrom(from)
	params.SetBody(fmt.Sprintf("Your Hikma login code is %s. It expires in 5 minutes.", code))

	_, err := client.Api.CreateMessage(params)
	return err
}
