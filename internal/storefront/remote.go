// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

package storefront

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/darasahq/darasa/internal/catalog"
	"github.com/darasahq/darasa/internal/platform/apperr"
	"github.com/darasahq/darasa/pkg/pagination"
	"github.com/darasahq/darasa/pkg/slice"
)

const remoteTimeout = 15 * time.Second

// courseListEnvelope mirrors the platform's paginated response envelope.
type courseListEnvelope struct {
	Data []*catalog.Course `json:"data"`
	Meta pagination.Meta   `json:"meta"`
}

// remoteErrorEnvelope mirrors the platform's error response envelope.
type remoteErrorEnvelope struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	LocaleKey string `json:"locale_key,omitempty"`
}

// RemoteBackend is the HTTP implementation of both storefront backends,
// speaking the platform API's JSON envelopes.
type RemoteBackend struct {
	client      *resty.Client
	accessToken string
}

// NewRemoteBackend constructs a backend against the given API base URL
// (e.g. "https://api.darasa.app/api/v1").
func NewRemoteBackend(baseURL string) *RemoteBackend {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(remoteTimeout).
		SetHeader("Accept", "application/json")
	return &RemoteBackend{client: client}
}

// SetAccessToken attaches the bearer token used for authenticated calls.
// An empty token clears it.
func (backend *RemoteBackend) SetAccessToken(token string) {
	backend.accessToken = token
}

/*
FetchPage requests one catalog page from GET /courses.

Parameters:
  - context: context.Context
  - request: PageRequest

Returns:
  - *PageResult: The decoded page plus exact total
  - error: Transport failures or decoded platform errors
*/
func (backend *RemoteBackend) FetchPage(context context.Context, request PageRequest) (*PageResult, error) {
	params := map[string]string{
		"page":  strconv.Itoa(request.Page),
		"limit": strconv.Itoa(request.PageSize),
	}
	filter := request.Filter
	if filter.Search != "" {
		params["q"] = filter.Search
	}
	if filter.CategoryID != "" {
		params["category"] = filter.CategoryID
	}
	if filter.MinPrice != nil {
		params["minprice"] = strconv.FormatFloat(*filter.MinPrice, 'f', -1, 64)
	}
	if filter.MaxPrice != nil {
		params["maxprice"] = strconv.FormatFloat(*filter.MaxPrice, 'f', -1, 64)
	}
	if len(filter.Difficulties) > 0 {
		params["difficulty"] = strings.Join(slice.Map(filter.Difficulties, func(d catalog.Difficulty) string {
			return string(d)
		}), ",")
	}
	if len(filter.Languages) > 0 {
		params["language"] = strings.Join(filter.Languages, ",")
	}
	if filter.Sort != "" {
		params["sort"] = string(filter.Sort)
	}

	var envelope courseListEnvelope
	var remoteError remoteErrorEnvelope

	response, err := backend.client.R().
		SetContext(context).
		SetHeader("Accept-Language", request.Language).
		SetQueryParams(params).
		SetResult(&envelope).
		SetError(&remoteError).
		Get("/courses")
	if err != nil {
		return nil, fmt.Errorf("storefront: catalog fetch failed: %w", err)
	}
	if response.IsError() {
		return nil, backend.decodeError(response.StatusCode(), remoteError)
	}

	return &PageResult{Courses: envelope.Data, Total: envelope.Meta.Total}, nil
}

/*
CreateEnrollment records an enrollment through POST /enrollments.

Parameters:
  - context: context.Context
  - request: EnrollmentRequest

Returns:
  - error: Typed platform failures (conflict, not found, unauthorized) or transport errors
*/
func (backend *RemoteBackend) CreateEnrollment(context context.Context, request EnrollmentRequest) error {
	if backend.accessToken == "" {
		return apperr.Unauthorized("Sign in to enroll in a course").WithLocaleKey("enrollment.sign_in_required")
	}

	payload := map[string]interface{}{
		"course_id":      request.CourseID,
		"payment_method": string(request.PaymentMethod),
		"amount":         request.Amount,
		"currency":       request.Currency,
	}

	var remoteError remoteErrorEnvelope

	response, err := backend.client.R().
		SetContext(context).
		SetAuthToken(backend.accessToken).
		SetBody(payload).
		SetError(&remoteError).
		Post("/enrollments")
	if err != nil {
		return fmt.Errorf("storefront: enrollment submission failed: %w", err)
	}
	if response.IsError() {
		return backend.decodeError(response.StatusCode(), remoteError)
	}
	return nil
}

// decodeError rebuilds a typed application error from the platform's error
// envelope so callers can branch on codes and show localized reasons.
func (backend *RemoteBackend) decodeError(statusCode int, envelope remoteErrorEnvelope) error {
	message := envelope.Error
	if message == "" {
		message = http.StatusText(statusCode)
	}
	code := envelope.Code
	if code == "" {
		code = "INTERNAL_ERROR"
	}
	return &apperr.AppError{
		Code:       code,
		Message:    message,
		LocaleKey:  envelope.LocaleKey,
		HTTPStatus: statusCode,
	}
}
