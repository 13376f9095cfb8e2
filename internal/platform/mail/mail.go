// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

/*
Package mail provides transactional email delivery for the platform.

It is used for enrollment confirmations and account lifecycle messages.
Two implementations exist:

  - Sendgrid: production delivery via the SendGrid v3 API.
  - Console: development fallback that logs messages instead of sending.

Delivery is best-effort. Callers treat send failures as non-fatal side
effects — an enrollment must never be rolled back because an email bounced.
*/
package mail

import "context"

// Message is a single outbound transactional email.
type Message struct {
	ToName    string
	ToAddress string
	Subject   string
	TextBody  string
	HTMLBody  string
}

// Sender delivers transactional messages.
type Sender interface {
	// Send delivers the message. Implementations must honour ctx cancellation
	// and return an error rather than block indefinitely.
	Send(ctx context.Context, msg Message) error
}
