// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

package mail

import (
	"context"
	"log/slog"
)

// ConsoleSender logs messages instead of delivering them.
//
// Used in development and in environments without a SendGrid credential.
type ConsoleSender struct {
	logger *slog.Logger
}

// NewConsoleSender constructs a development [Sender].
func NewConsoleSender(logger *slog.Logger) *ConsoleSender {
	return &ConsoleSender{logger: logger}
}

// Send implements [Sender] by logging the message envelope and body.
func (sender *ConsoleSender) Send(ctx context.Context, msg Message) error {
	sender.logger.InfoContext(ctx, "console_mail_delivered",
		slog.String("to", msg.ToAddress),
		slog.String("subject", msg.Subject),
		slog.String("body", msg.TextBody),
	)
	return nil
}
