// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

package enrollment

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darasahq/darasa/internal/platform/apperr"
	"github.com/darasahq/darasa/internal/platform/mail"
)

const (
	testCourseID = "0190e2a4-7d5b-7bbb-a8b4-0123456789ab"
	testUserID   = "0190e2a4-7d5b-7bbb-a8b4-0123456789ac"
)

// fakeEnrollmentRepository records Create calls and serves a scripted outcome.
type fakeEnrollmentRepository struct {
	createCalls int
	receipt     *Receipt
	err         error
}

func (f *fakeEnrollmentRepository) Create(_ context.Context, _ CreateInput) (*Receipt, error) {
	f.createCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.receipt, nil
}

func (f *fakeEnrollmentRepository) ListForUser(_ context.Context, _ string) ([]*Enrollment, error) {
	return nil, nil
}

// recordingMailer captures sent messages and can simulate delivery failures.
type recordingMailer struct {
	sent []mail.Message
	err  error
}

func (m *recordingMailer) Send(_ context.Context, msg mail.Message) error {
	m.sent = append(m.sent, msg)
	return m.err
}

func validInput() CreateInput {
	return CreateInput{
		CourseID:      testCourseID,
		UserID:        testUserID,
		PaymentMethod: PaymentOnline,
		Amount:        49.99,
		Currency:      "USD",
	}
}

func successReceipt() *Receipt {
	return &Receipt{
		Enrollment:  Enrollment{ID: "enr-1", CourseID: testCourseID, UserID: testUserID, Status: "active"},
		PaymentID:   "pay-1",
		CourseTitle: "Introduction to Machine Learning",
		UserEmail:   "student@example.com",
		UserName:    "Amina Hassan",
	}
}

func TestService_Enroll_Unauthenticated(t *testing.T) {
	repo := &fakeEnrollmentRepository{}
	mailer := &recordingMailer{}
	service := NewService(repo, mailer, slog.Default())

	input := validInput()
	input.UserID = ""

	_, err := service.Enroll(context.Background(), input)

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
	assert.Equal(t, "enrollment.sign_in_required", appErr.LocaleKey)
	assert.Zero(t, repo.createCalls, "storage must not be touched without a user")
	assert.Empty(t, mailer.sent)
}

func TestService_Enroll_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateInput)
	}{
		{name: "missing course", mutate: func(in *CreateInput) { in.CourseID = "" }},
		{name: "malformed course id", mutate: func(in *CreateInput) { in.CourseID = "abc" }},
		{name: "unknown payment method", mutate: func(in *CreateInput) { in.PaymentMethod = "crypto" }},
		{name: "negative amount", mutate: func(in *CreateInput) { in.Amount = -1 }},
		{name: "missing currency", mutate: func(in *CreateInput) { in.Currency = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeEnrollmentRepository{}
			service := NewService(repo, &recordingMailer{}, slog.Default())

			input := validInput()
			tc.mutate(&input)

			_, err := service.Enroll(context.Background(), input)

			var appErr *apperr.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
			assert.Zero(t, repo.createCalls)
		})
	}
}

func TestService_Enroll_AlreadyEnrolled(t *testing.T) {
	repo := &fakeEnrollmentRepository{
		err: apperr.Conflict("Already enrolled in this course").WithLocaleKey("enrollment.already_enrolled"),
	}
	mailer := &recordingMailer{}
	service := NewService(repo, mailer, slog.Default())

	_, err := service.Enroll(context.Background(), validInput())

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFLICT", appErr.Code)
	assert.Equal(t, "enrollment.already_enrolled", appErr.LocaleKey)
	assert.Empty(t, mailer.sent, "no mail on failed enrollment")
}

func TestService_Enroll_SuccessSendsOneMail(t *testing.T) {
	repo := &fakeEnrollmentRepository{receipt: successReceipt()}
	mailer := &recordingMailer{}
	service := NewService(repo, mailer, slog.Default())

	receipt, err := service.Enroll(context.Background(), validInput())

	require.NoError(t, err)
	assert.Equal(t, "enr-1", receipt.Enrollment.ID)
	assert.Equal(t, 1, repo.createCalls)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "student@example.com", mailer.sent[0].ToAddress)
	assert.Contains(t, mailer.sent[0].Subject, "Introduction to Machine Learning")
}

func TestService_Enroll_MailFailureDoesNotFailEnrollment(t *testing.T) {
	repo := &fakeEnrollmentRepository{receipt: successReceipt()}
	mailer := &recordingMailer{err: errors.New("smtp down")}
	service := NewService(repo, mailer, slog.Default())

	receipt, err := service.Enroll(context.Background(), validInput())

	require.NoError(t, err, "mail delivery is best-effort")
	assert.NotNil(t, receipt)
}

func TestService_ListEnrollments_RequiresUser(t *testing.T) {
	service := NewService(&fakeEnrollmentRepository{}, &recordingMailer{}, slog.Default())

	_, err := service.ListEnrollments(context.Background(), "")

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
}
