// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

/*
Package storefront drives the course-browsing and enrollment experience
served to web and mobile shells.

# Architecture

The package is the client-side counterpart of the catalog and enrollment
APIs. It owns three pieces of session-scoped state:

  - The catalog pipeline: translates filter/sort/page state into backend
    page requests, debounces rapid edits, guards against out-of-order
    responses, and merges results for infinite-scroll (narrow viewports)
    versus numbered-page (wide viewports) presentation.
  - The enrollment flow: a linear authenticate -> pay -> confirm progression
    gated by the live authentication state.
  - The order summary: local promo-code handling and total computation.

All remote work goes through the narrow backend interfaces below so the
shells can run against the HTTP implementation in production and in-memory
fakes in tests.
*/
package storefront

import (
	"context"

	"github.com/darasahq/darasa/internal/catalog"
	"github.com/darasahq/darasa/internal/enrollment"
)

// PageRequest describes one catalog page fetch.
type PageRequest struct {
	Language string
	Filter   catalog.Filter
	Page     int
	PageSize int
}

// PageResult is one page of courses plus the exact total row count,
// produced by a single backend call.
type PageResult struct {
	Courses []*catalog.Course
	Total   int
}

// CatalogBackend is the read side of the storefront: one call returns one
// page of normalized courses and the exact total for that filter set.
type CatalogBackend interface {

	/*
		FetchPage returns the requested catalog page.

		Parameters:
		  - context: context.Context
		  - request: PageRequest

		Returns:
		  - *PageResult: One page of courses plus the exact total
		  - error: Transport or backend failures
	*/
	FetchPage(context context.Context, request PageRequest) (*PageResult, error)
}

// EnrollmentRequest carries everything the transactional enrollment
// procedure needs for a single course purchase.
type EnrollmentRequest struct {
	CourseID      string
	UserID        string
	PaymentMethod enrollment.PaymentMethod
	Amount        float64
	Currency      string
}

// EnrollmentBackend is the write side of the storefront. CreateEnrollment
// is transactional on the platform; the storefront treats it as at-most-once
// per user action.
type EnrollmentBackend interface {

	/*
		CreateEnrollment records the enrollment and its payment.

		Parameters:
		  - context: context.Context
		  - request: EnrollmentRequest

		Returns:
		  - error: Typed failures (already enrolled, course missing) or transport errors
	*/
	CreateEnrollment(context context.Context, request EnrollmentRequest) error
}
