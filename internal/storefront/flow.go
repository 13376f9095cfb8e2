// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

package storefront

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/darasahq/darasa/internal/enrollment"
	"github.com/darasahq/darasa/internal/platform/apperr"
)

// Step identifies one stage of the enrollment flow.
type Step string

const (
	// StepAuth is the initial step shown to unauthenticated visitors.
	StepAuth Step = "auth"

	// StepPayment collects the payment method for an authenticated user.
	StepPayment Step = "payment"

	// StepConfirmation is the terminal step after a recorded enrollment.
	StepConfirmation Step = "confirmation"
)

// EnrollmentFlow drives a user through authentication, payment, and
// confirmation for a single course purchase.
//
// Step selection is derived from the live authentication state rather than
// free navigation: the absent-to-present transition force-advances the flow
// to the payment step, and there is no way back to the auth step within a
// session. Sign-out is handled by the surrounding navigation shell.
type EnrollmentFlow struct {
	mu sync.Mutex

	backend EnrollmentBackend
	logger  *slog.Logger

	courseID string
	amount   float64
	currency string

	step     Step
	userID   string
	inFlight bool
	failure  string

	cancelAuth CancelFunc
}

// NewEnrollmentFlow constructs a flow for one course and subscribes it to
// authentication-state changes. Callers must Close the flow at teardown to
// release the subscription.
func NewEnrollmentFlow(
	courseID string,
	amount float64,
	currency string,
	backend EnrollmentBackend,
	notifier *AuthNotifier,
	logger *slog.Logger,
) *EnrollmentFlow {
	flow := &EnrollmentFlow{
		backend:  backend,
		logger:   logger,
		courseID: courseID,
		amount:   amount,
		currency: currency,
		step:     StepAuth,
	}
	flow.cancelAuth = notifier.Subscribe(flow.onAuthChange)
	return flow
}

// onAuthChange applies the force-advance rule: whenever the session goes
// from absent to present the flow lands on the payment step, overriding any
// manual navigation.
func (flow *EnrollmentFlow) onAuthChange(session AuthSession) {
	flow.mu.Lock()
	defer flow.mu.Unlock()

	wasPresent := flow.userID != ""
	flow.userID = session.UserID

	if !wasPresent && session.Present() && flow.step == StepAuth {
		flow.step = StepPayment
	}
}

// Step returns the currently rendered step.
func (flow *EnrollmentFlow) Step() Step {
	flow.mu.Lock()
	defer flow.mu.Unlock()
	return flow.step
}

// InFlight reports whether a submission is currently running. Shells use
// this to disable the submit control.
func (flow *EnrollmentFlow) InFlight() bool {
	flow.mu.Lock()
	defer flow.mu.Unlock()
	return flow.inFlight
}

// FailureReason returns the reason of the last failed submission, empty
// when the last submission succeeded or none ran yet.
func (flow *EnrollmentFlow) FailureReason() string {
	flow.mu.Lock()
	defer flow.mu.Unlock()
	return flow.failure
}

// GoTo handles manual navigation between steps. An authenticated user can
// never be shown the auth step, and the confirmation step is reachable only
// through a successful submission.
func (flow *EnrollmentFlow) GoTo(step Step) {
	flow.mu.Lock()
	defer flow.mu.Unlock()

	switch step {
	case StepAuth:
		if flow.userID == "" {
			flow.step = StepAuth
		}
	case StepPayment:
		if flow.userID != "" && flow.step != StepConfirmation {
			flow.step = StepPayment
		}
	}
}

/*
SubmitPayment records the enrollment through the transactional backend
procedure.

Description: The call is at-most-once per user action. A submission while
another one is in flight, or after the flow already reached confirmation,
is ignored. An absent user id fails immediately with an unauthenticated
error and never contacts the backend. A typed backend failure keeps the
flow on the payment step with the failure reason available for display;
success advances to confirmation exactly once.

Parameters:
  - context: context.Context
  - method: enrollment.PaymentMethod

Returns:
  - error: Unauthenticated, validation, or backend failures
*/
func (flow *EnrollmentFlow) SubmitPayment(context context.Context, method enrollment.PaymentMethod) error {
	flow.mu.Lock()

	if flow.inFlight || flow.step == StepConfirmation {
		flow.mu.Unlock()
		return nil
	}

	if flow.userID == "" {
		flow.mu.Unlock()
		return apperr.Unauthorized("Sign in to enroll in a course").WithLocaleKey("enrollment.sign_in_required")
	}

	if !method.IsValid() {
		flow.mu.Unlock()
		return apperr.ValidationError("Select a payment method", apperr.FieldError{
			Field:   enrollment.FieldPaymentMethod,
			Message: "must be online or offline",
		})
	}

	request := EnrollmentRequest{
		CourseID:      flow.courseID,
		UserID:        flow.userID,
		PaymentMethod: method,
		Amount:        flow.amount,
		Currency:      flow.currency,
	}
	flow.inFlight = true
	flow.mu.Unlock()

	err := flow.backend.CreateEnrollment(context, request)

	flow.mu.Lock()
	defer flow.mu.Unlock()
	flow.inFlight = false

	if err != nil {
		flow.failure = failureReason(err)
		flow.logger.WarnContext(context, "enrollment_submission_failed",
			slog.String("course_id", flow.courseID),
			slog.String("reason", flow.failure),
		)
		return err
	}

	flow.failure = ""
	flow.step = StepConfirmation
	return nil
}

// Close releases the authentication-state subscription. Idempotent.
func (flow *EnrollmentFlow) Close() {
	flow.cancelAuth()
}

// failureReason extracts the user-facing reason from a backend error.
func failureReason(err error) string {
	var appError *apperr.AppError
	if errors.As(err, &appError) {
		return appError.Message
	}
	return err.Error()
}
