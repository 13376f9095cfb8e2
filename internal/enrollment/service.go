// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

package enrollment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/darasahq/darasa/internal/platform/apperr"
	"github.com/darasahq/darasa/internal/platform/mail"
	"github.com/darasahq/darasa/internal/platform/validate"
)

// # Service Layer

// Service orchestrates the enrollment flow.
type Service struct {
	enrollmentRepo EnrollmentRepository
	mailer         mail.Sender
	logger         *slog.Logger
}

// NewService constructs a new enrollment [Service].
func NewService(enrollmentRepo EnrollmentRepository, mailer mail.Sender, logger *slog.Logger) *Service {
	return &Service{
		enrollmentRepo: enrollmentRepo,
		mailer:         mailer,
		logger:         logger,
	}
}

/*
Enroll registers the user in a course.

Description: Input is validated before any storage work; an unauthenticated
request (missing user identity) fails immediately without touching the
database. The storage layer runs the actual transaction. On success a
confirmation email goes out as a best-effort side effect: a delivery failure
is logged, never surfaced, and never rolls back the enrollment.

Parameters:
  - context: context.Context
  - input: CreateInput (UserID must come from the verified access token)

Returns:
  - *Receipt: The committed enrollment
  - error: Unauthorized, ValidationError, NotFound, Conflict ("already
    enrolled"), or internal failures
*/
func (service *Service) Enroll(context context.Context, input CreateInput) (*Receipt, error) {

	// Identity gate: no user, no storage work.
	if input.UserID == "" {
		return nil, apperr.Unauthorized("Sign in to enroll in a course").
			WithLocaleKey("enrollment.sign_in_required")
	}

	validator := &validate.Validator{}
	validator.Required(FieldCourseID, input.CourseID).UUID(FieldCourseID, input.CourseID)
	validator.Required(FieldPaymentMethod, string(input.PaymentMethod)).
		OneOf(FieldPaymentMethod, string(input.PaymentMethod), string(PaymentOnline), string(PaymentOffline))
	validator.NonNegative(FieldAmount, input.Amount)
	validator.Required(FieldCurrency, input.Currency).MaxLen(FieldCurrency, input.Currency, 3)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	receipt, err := service.enrollmentRepo.Create(context, input)
	if err != nil {
		return nil, err
	}

	service.sendConfirmation(context, receipt)

	return receipt, nil
}

// ListEnrollments returns the user's enrollments, most recent first.
func (service *Service) ListEnrollments(context context.Context, userID string) ([]*Enrollment, error) {
	if userID == "" {
		return nil, apperr.Unauthorized("Sign in to view enrollments")
	}
	return service.enrollmentRepo.ListForUser(context, userID)
}

// sendConfirmation delivers the enrollment confirmation email.
// Failures are logged and swallowed: the enrollment already committed.
func (service *Service) sendConfirmation(context context.Context, receipt *Receipt) {
	message := mail.Message{
		ToName:    receipt.UserName,
		ToAddress: receipt.UserEmail,
		Subject:   fmt.Sprintf("You're enrolled in %s", receipt.CourseTitle),
		TextBody: fmt.Sprintf(
			"Hi %s,\n\nYour enrollment in %q is confirmed. The course is now available in your dashboard.\n\nHappy learning,\nThe Darasa team",
			receipt.UserName, receipt.CourseTitle,
		),
		HTMLBody: fmt.Sprintf(
			"<p>Hi %s,</p><p>Your enrollment in <strong>%s</strong> is confirmed. The course is now available in your dashboard.</p><p>Happy learning,<br>The Darasa team</p>",
			receipt.UserName, receipt.CourseTitle,
		),
	}

	if err := service.mailer.Send(context, message); err != nil {
		service.logger.WarnContext(context, "enrollment confirmation mail failed",
			slog.String("enrollment_id", receipt.Enrollment.ID),
			slog.String("error", err.Error()),
		)
	}
}
