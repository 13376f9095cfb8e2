// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

package storefront

import "strings"

// PromoStatus is the tri-state outcome of promo-code application.
type PromoStatus string

const (
	// PromoIdle means no code has been applied yet.
	PromoIdle PromoStatus = "idle"

	// PromoApplied means the last applied code matched and a discount is active.
	PromoApplied PromoStatus = "applied"

	// PromoInvalid means the last applied code did not match; no discount.
	PromoInvalid PromoStatus = "invalid"
)

const (
	// promoCode is the single locally validated promotion code.
	promoCode = "SAVE10"

	// promoDiscountRate is the discount applied when promoCode matches.
	promoDiscountRate = 0.10
)

// OrderSummary computes the payable total for a single-course order.
// Promo validation is local string matching only; the backend records the
// final amount but never re-validates the code.
type OrderSummary struct {
	Subtotal     float64
	Currency     string
	DiscountRate float64
	Status       PromoStatus
}

// NewOrderSummary starts a summary with no discount applied.
func NewOrderSummary(subtotal float64, currency string) *OrderSummary {
	return &OrderSummary{Subtotal: subtotal, Currency: currency, Status: PromoIdle}
}

/*
ApplyPromo matches a promo code and updates the discount state.

Description: Matching is exact after trimming surrounding whitespace. A
match sets the fixed discount rate and status "applied"; anything else
clears the discount and marks the status "invalid". Re-applying after an
invalid attempt works as expected since the state is fully recomputed.

Parameters:
  - code: string

Returns:
  - PromoStatus: The resulting status
*/
func (summary *OrderSummary) ApplyPromo(code string) PromoStatus {
	if strings.TrimSpace(code) == promoCode {
		summary.DiscountRate = promoDiscountRate
		summary.Status = PromoApplied
	} else {
		summary.DiscountRate = 0
		summary.Status = PromoInvalid
	}
	return summary.Status
}

// Discount returns the absolute discount amount.
func (summary *OrderSummary) Discount() float64 {
	return summary.Subtotal * summary.DiscountRate
}

// Total returns subtotal minus the discount.
func (summary *OrderSummary) Total() float64 {
	return summary.Subtotal - summary.Discount()
}
