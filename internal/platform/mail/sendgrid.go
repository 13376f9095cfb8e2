// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

package mail

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

// SendgridSender delivers email through the SendGrid v3 API.
type SendgridSender struct {
	apiKey string
	from   *sgmail.Email
}

// NewSendgridSender constructs a production [Sender] backed by SendGrid.
func NewSendgridSender(apiKey, fromName, fromAddress string) *SendgridSender {
	return &SendgridSender{
		apiKey: apiKey,
		from:   sgmail.NewEmail(fromName, fromAddress),
	}
}

// Send implements [Sender].
func (sender *SendgridSender) Send(ctx context.Context, msg Message) error {
	personalization := sgmail.NewPersonalization()
	personalization.Subject = msg.Subject
	personalization.AddTos(sgmail.NewEmail(msg.ToName, msg.ToAddress))

	v3 := sgmail.NewV3Mail()
	v3.SetFrom(sender.from)
	v3.AddPersonalizations(personalization)
	v3.AddContent(
		sgmail.NewContent("text/plain", msg.TextBody),
		sgmail.NewContent("text/html", msg.HTMLBody),
	)

	request := sendgrid.GetRequest(sender.apiKey, sendgridEndpoint, sendgridHost)
	request.Method = http.MethodPost
	request.Body = sgmail.GetRequestBody(v3)

	response, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		return fmt.Errorf("mail: sendgrid request failed: %w", err)
	}

	if response.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("mail: sendgrid rejected message (status %d)", response.StatusCode)
	}

	return nil
}
