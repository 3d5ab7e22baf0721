package services

import (
	"fmt"
	"os"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// SMSSender pushes status texts to customers through Twilio. It stays nil
// when credentials are absent; callers treat a nil sender as "disabled".
type SMSSender struct {
	client *twilio.RestClient
	from   string
}

// NewSMSSenderFromEnv builds a sender from TWILIO_* variables, or returns
// nil when they are not configured.
func NewSMSSenderFromEnv() *SMSSender {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	from := os.Getenv("TWILIO_PHONE_NUMBER")
	if accountSid == "" || authToken == "" || from == "" {
		return nil
	}
	return &SMSSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: from,
	}
}

func (s *SMSSender) Send(to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio send: %w", err)
	}
	if resp.Sid == nil {
		return fmt.Errorf("twilio send: no message sid returned")
	}
	return nil
}
