// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

package enrollment

import "context"

// EnrollmentRepository defines the data access contract for enrollments.
type EnrollmentRepository interface {

	/*
		Create atomically enrolls a user in a course.

		The implementation must, inside one transaction: verify the course is
		published, reject duplicate enrollments with a Conflict error, insert
		the enrollment and payment rows, and increment the course's
		enrollment counter. Either every effect commits or none do.

		Parameters:
		  - context: context.Context
		  - input: CreateInput (course, user, payment method, amount, currency)

		Returns:
		  - *Receipt: The committed enrollment with denormalized mail fields
		  - error: NotFound (unknown/unpublished course), Conflict (already
		    enrolled), or storage failures
	*/
	Create(context context.Context, input CreateInput) (*Receipt, error)

	/*
		ListForUser returns a user's enrollments, most recent first.

		Parameters:
		  - context: context.Context
		  - userID: string (UUID)

		Returns:
		  - []*Enrollment: The user's memberships
		  - error: Storage failures
	*/
	ListForUser(context context.Context, userID string) ([]*Enrollment, error)
}
