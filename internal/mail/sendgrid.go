// Package mail delivers transactional email through SendGrid. A single
// call-through, no retry or queuing.
package mail

import (
	"context"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/careerconnect/careerconnect-be/internal/apperr"
)

// Sender delivers one email.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// SendGridSender implements Sender with the SendGrid API.
type SendGridSender struct {
	apiKey   string
	from     string
	fromName string
}

// NewSendGridSender constructs a sender using the given API key and from address.
func NewSendGridSender(apiKey, from string) *SendGridSender {
	return &SendGridSender{apiKey: apiKey, from: from, fromName: "CareerConnect"}
}

// Send delivers a single HTML email.
func (s *SendGridSender) Send(_ context.Context, to, subject, htmlBody string) error {
	from := sgmail.NewEmail(s.fromName, s.from)
	recipient := sgmail.NewEmail("", to)
	message := sgmail.NewSingleEmail(from, subject, recipient, "", htmlBody)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return apperr.Wrap(apperr.MailDeliveryFailed, "Failed to send email.", err)
	}
	if response.StatusCode >= 400 {
		return apperr.New(apperr.MailDeliveryFailed, "Failed to send email.")
	}
	return nil
}
