// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

package enrollment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/darasahq/darasa/internal/platform/apperr"
	"github.com/darasahq/darasa/internal/platform/database/schema"
	"github.com/darasahq/darasa/pkg/uuid"
)

// enrollmentRepository implements [EnrollmentRepository] using pgx.
type enrollmentRepository struct {
	pool *pgxpool.Pool
}

// NewEnrollmentRepository constructs a PostgreSQL backed enrollment store.
func NewEnrollmentRepository(pool *pgxpool.Pool) EnrollmentRepository {
	return &enrollmentRepository{pool: pool}
}

/*
Create atomically enrolls a user in a course.

Description: The entire procedure runs in a single transaction:

 1. Lock and verify the target course is published (FOR UPDATE serialises
    concurrent enrollments against the counter update).
 2. Insert the enrollment row; the unique (courseid, userid) index turns a
    duplicate attempt into a typed Conflict error.
 3. Insert the payment row recording method, amount, and currency.
 4. Increment the course's enrollment counter.

The student's email and display name are read inside the same transaction so
the confirmation mail can be sent without further queries.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *Receipt: The committed enrollment
  - error: apperr.NotFound, apperr.Conflict, or internal storage failures
*/
func (repository *enrollmentRepository) Create(context context.Context, input CreateInput) (*Receipt, error) {

	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to begin enrollment transaction: %w", err)
	}
	defer transaction.Rollback(context)

	// 1. Course verification under lock
	courseQuery := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = $1 AND %s = 'published' AND %s IS NULL
		FOR UPDATE
	`,
		schema.CatalogCourse.Title,
		schema.CatalogCourse.Table,
		schema.CatalogCourse.ID,
		schema.CatalogCourse.Status,
		schema.CatalogCourse.DeletedAt,
	)

	receipt := &Receipt{}
	if err := transaction.QueryRow(context, courseQuery, input.CourseID).Scan(&receipt.CourseTitle); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("course")
		}
		return nil, fmt.Errorf("postgres: failed to verify course: %w", err)
	}

	// 2. Enrollment insertion
	enrollmentID := uuid.New()
	enrollmentQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, 'active')
		RETURNING %s, %s
	`,
		schema.EnrollEnrollment.Table,
		schema.EnrollEnrollment.ID,
		schema.EnrollEnrollment.CourseID,
		schema.EnrollEnrollment.UserID,
		schema.EnrollEnrollment.Status,
		schema.EnrollEnrollment.Status,
		schema.EnrollEnrollment.EnrolledAt,
	)

	enrollment := Enrollment{
		ID:       enrollmentID,
		CourseID: input.CourseID,
		UserID:   input.UserID,
	}
	err = transaction.QueryRow(context, enrollmentQuery, enrollmentID, input.CourseID, input.UserID).
		Scan(&enrollment.Status, &enrollment.EnrolledAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, apperr.Conflict("Already enrolled in this course").
				WithLocaleKey("enrollment.already_enrolled")
		}
		return nil, fmt.Errorf("postgres: failed to insert enrollment: %w", err)
	}
	receipt.Enrollment = enrollment

	// 3. Payment record
	paymentID := uuid.New()
	paymentQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, 'recorded')
	`,
		schema.EnrollPayment.Table,
		schema.EnrollPayment.ID,
		schema.EnrollPayment.EnrollmentID,
		schema.EnrollPayment.Method,
		schema.EnrollPayment.Amount,
		schema.EnrollPayment.Currency,
		schema.EnrollPayment.Status,
	)
	if _, err := transaction.Exec(context, paymentQuery, paymentID, enrollmentID, input.PaymentMethod, input.Amount, input.Currency); err != nil {
		return nil, fmt.Errorf("postgres: failed to insert payment: %w", err)
	}
	receipt.PaymentID = paymentID

	// 4. Counter maintenance
	counterQuery := fmt.Sprintf(`
		UPDATE %s SET %s = %s + 1, %s = now() WHERE %s = $1
	`,
		schema.CatalogCourse.Table,
		schema.CatalogCourse.EnrollmentCount,
		schema.CatalogCourse.EnrollmentCount,
		schema.CatalogCourse.UpdatedAt,
		schema.CatalogCourse.ID,
	)
	if _, err := transaction.Exec(context, counterQuery, input.CourseID); err != nil {
		return nil, fmt.Errorf("postgres: failed to bump enrollment count: %w", err)
	}

	// Mail denormalization
	accountQuery := fmt.Sprintf(`
		SELECT %s, TRIM(%s || ' ' || %s) FROM %s WHERE %s = $1
	`,
		schema.UserAccount.Email,
		schema.UserAccount.FirstName,
		schema.UserAccount.LastName,
		schema.UserAccount.Table,
		schema.UserAccount.ID,
	)
	if err := transaction.QueryRow(context, accountQuery, input.UserID).Scan(&receipt.UserEmail, &receipt.UserName); err != nil {
		return nil, fmt.Errorf("postgres: failed to load enrolling account: %w", err)
	}

	if err := transaction.Commit(context); err != nil {
		return nil, fmt.Errorf("postgres: failed to commit enrollment: %w", err)
	}

	return receipt, nil
}

// ListForUser returns a user's enrollments, most recent first.
func (repository *enrollmentRepository) ListForUser(context context.Context, userID string) ([]*Enrollment, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC
	`,
		schema.EnrollEnrollment.ID,
		schema.EnrollEnrollment.CourseID,
		schema.EnrollEnrollment.UserID,
		schema.EnrollEnrollment.Status,
		schema.EnrollEnrollment.EnrolledAt,
		schema.EnrollEnrollment.Table,
		schema.EnrollEnrollment.UserID,
		schema.EnrollEnrollment.EnrolledAt,
	)

	rows, err := repository.pool.Query(context, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []*Enrollment
	for rows.Next() {
		enrollment := &Enrollment{}
		err := rows.Scan(
			&enrollment.ID,
			&enrollment.CourseID,
			&enrollment.UserID,
			&enrollment.Status,
			&enrollment.EnrolledAt,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan enrollment: %w", err)
		}
		enrollments = append(enrollments, enrollment)
	}

	return enrollments, nil
}
