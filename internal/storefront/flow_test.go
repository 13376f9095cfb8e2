// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

package storefront

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darasahq/darasa/internal/enrollment"
	"github.com/darasahq/darasa/internal/platform/apperr"
)

// blockingEnrollmentBackend lets a test hold a submission in flight until
// it releases the gate, and records every call it receives.
type blockingEnrollmentBackend struct {
	mu       sync.Mutex
	calls    int
	requests []EnrollmentRequest
	err      error
	gate     chan struct{}
}

func (backend *blockingEnrollmentBackend) CreateEnrollment(_ context.Context, request EnrollmentRequest) error {
	backend.mu.Lock()
	backend.calls++
	backend.requests = append(backend.requests, request)
	gate := backend.gate
	err := backend.err
	backend.mu.Unlock()

	if gate != nil {
		<-gate
	}
	return err
}

func (backend *blockingEnrollmentBackend) callCount() int {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	return backend.calls
}

func newTestFlow(backend EnrollmentBackend, notifier *AuthNotifier) *EnrollmentFlow {
	return NewEnrollmentFlow("course-1", 49.99, "USD", backend, notifier, slog.Default())
}

func TestEnrollmentFlow_StartsOnAuthStep(t *testing.T) {
	flow := newTestFlow(&blockingEnrollmentBackend{}, NewAuthNotifier())
	defer flow.Close()

	assert.Equal(t, StepAuth, flow.Step())
}

func TestEnrollmentFlow_SignInForceAdvancesToPayment(t *testing.T) {
	notifier := NewAuthNotifier()
	flow := newTestFlow(&blockingEnrollmentBackend{}, notifier)
	defer flow.Close()

	notifier.SetSession(AuthSession{UserID: "user-1"})

	assert.Equal(t, StepPayment, flow.Step())

	// There is no way back to the auth step once authenticated.
	flow.GoTo(StepAuth)
	assert.Equal(t, StepPayment, flow.Step())
}

func TestEnrollmentFlow_AlreadyAuthenticatedOnOpen(t *testing.T) {
	notifier := NewAuthNotifier()
	notifier.SetSession(AuthSession{UserID: "user-1"})

	flow := newTestFlow(&blockingEnrollmentBackend{}, notifier)
	defer flow.Close()

	// Subscribe delivers the current session immediately.
	assert.Equal(t, StepPayment, flow.Step())
}

func TestEnrollmentFlow_SubmitWithoutUserNeverReachesBackend(t *testing.T) {
	backend := &blockingEnrollmentBackend{}
	flow := newTestFlow(backend, NewAuthNotifier())
	defer flow.Close()

	err := flow.SubmitPayment(context.Background(), enrollment.PaymentOnline)

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
	assert.Equal(t, "enrollment.sign_in_required", appErr.LocaleKey)
	assert.Zero(t, backend.callCount())
	assert.Equal(t, StepAuth, flow.Step())
}

func TestEnrollmentFlow_TypedFailureStaysOnPayment(t *testing.T) {
	backend := &blockingEnrollmentBackend{
		err: apperr.Conflict("Already enrolled in this course"),
	}
	notifier := NewAuthNotifier()
	flow := newTestFlow(backend, notifier)
	defer flow.Close()
	notifier.SetSession(AuthSession{UserID: "user-1"})

	err := flow.SubmitPayment(context.Background(), enrollment.PaymentOnline)

	require.Error(t, err)
	assert.Equal(t, StepPayment, flow.Step(), "a failed submission must stay on the payment step")
	assert.Equal(t, "Already enrolled in this course", flow.FailureReason())

	// Retry after the failure succeeds and clears the reason.
	backend.err = nil
	require.NoError(t, flow.SubmitPayment(context.Background(), enrollment.PaymentOnline))
	assert.Equal(t, StepConfirmation, flow.Step())
	assert.Empty(t, flow.FailureReason())
}

func TestEnrollmentFlow_DuplicateSubmitsAreIgnored(t *testing.T) {
	backend := &blockingEnrollmentBackend{gate: make(chan struct{})}
	notifier := NewAuthNotifier()
	flow := newTestFlow(backend, notifier)
	defer flow.Close()
	notifier.SetSession(AuthSession{UserID: "user-1"})

	done := make(chan error, 1)
	go func() {
		done <- flow.SubmitPayment(context.Background(), enrollment.PaymentOnline)
	}()

	// Wait until the first submission is in flight.
	require.Eventually(t, flow.InFlight, waitTimeout, pollInterval)

	// A second click while the call is in flight must be a no-op.
	require.NoError(t, flow.SubmitPayment(context.Background(), enrollment.PaymentOnline))

	close(backend.gate)
	require.NoError(t, <-done)

	assert.Equal(t, 1, backend.callCount(), "exactly one backend call despite two clicks")
	assert.Equal(t, StepConfirmation, flow.Step())

	// Submitting after confirmation is also ignored.
	require.NoError(t, flow.SubmitPayment(context.Background(), enrollment.PaymentOnline))
	assert.Equal(t, 1, backend.callCount())
}

func TestEnrollmentFlow_InvalidMethodRejected(t *testing.T) {
	backend := &blockingEnrollmentBackend{}
	notifier := NewAuthNotifier()
	flow := newTestFlow(backend, notifier)
	defer flow.Close()
	notifier.SetSession(AuthSession{UserID: "user-1"})

	err := flow.SubmitPayment(context.Background(), enrollment.PaymentMethod("crypto"))

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Zero(t, backend.callCount())
}

func TestEnrollmentFlow_CloseReleasesSubscriptionOnce(t *testing.T) {
	notifier := NewAuthNotifier()
	flow := newTestFlow(&blockingEnrollmentBackend{}, notifier)

	flow.Close()
	flow.Close() // second call is a no-op

	// After teardown the flow no longer reacts to auth changes.
	notifier.SetSession(AuthSession{UserID: "user-1"})
	assert.Equal(t, StepAuth, flow.Step())
}

func TestAuthNotifier_CancelStopsDelivery(t *testing.T) {
	notifier := NewAuthNotifier()

	var mu sync.Mutex
	deliveries := 0
	cancel := notifier.Subscribe(func(AuthSession) {
		mu.Lock()
		deliveries++
		mu.Unlock()
	})

	notifier.SetSession(AuthSession{UserID: "user-1"})
	cancel()
	cancel() // safe to call twice
	notifier.SetSession(AuthSession{})

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, deliveries, "initial delivery plus one change, nothing after cancel")
}
