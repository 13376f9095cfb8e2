// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

/*
Package enrollment implements the course purchase flow of the marketplace.

Core Responsibility:

  - Enrollment: a single ACID transaction that verifies the course, rejects
    duplicates, records the enrollment and its payment, and bumps the
    course's enrollment counter.
  - Confirmation: a best-effort email after a successful enrollment.

No payment gateway is integrated; the chosen payment method and amount are
recorded for offline settlement.
*/
package enrollment

import "time"

// PaymentMethod is how the student intends to settle the course price.
type PaymentMethod string

const (
	// PaymentOnline marks a card/wallet payment settled outside this system.
	PaymentOnline PaymentMethod = "online"

	// PaymentOffline marks bank transfer or in-person settlement.
	PaymentOffline PaymentMethod = "offline"
)

// IsValid reports whether m is a recognised [PaymentMethod].
func (m PaymentMethod) IsValid() bool {
	return m == PaymentOnline || m == PaymentOffline
}

// Enrollment is a student's membership in a course.
type Enrollment struct {
	ID         string    `json:"id"`
	CourseID   string    `json:"course_id"`
	UserID     string    `json:"user_id"`
	Status     string    `json:"status"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

// CreateInput carries the parameters of an enrollment request.
type CreateInput struct {
	CourseID      string        `json:"course_id"`
	UserID        string        `json:"-"` // resolved from the access token, never from the body
	PaymentMethod PaymentMethod `json:"payment_method"`
	Amount        float64       `json:"amount"`
	Currency      string        `json:"currency"`
}

// Receipt is the outcome of a successful enrollment transaction.
//
// CourseTitle, UserEmail, and UserName are denormalized inside the same
// transaction so the confirmation email needs no follow-up reads.
type Receipt struct {
	Enrollment Enrollment `json:"enrollment"`
	PaymentID  string     `json:"payment_id"`

	CourseTitle string `json:"course_title"`
	UserEmail   string `json:"-"`
	UserName    string `json:"-"`
}

// # Field Identifiers

const (
	FieldCourseID      = "course_id"
	FieldPaymentMethod = "payment_method"
	FieldAmount        = "amount"
	FieldCurrency      = "currency"
)
