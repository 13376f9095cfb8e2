// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

package storefront

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderSummary_IdleBeforeFirstApply(t *testing.T) {
	summary := NewOrderSummary(100, "USD")

	assert.Equal(t, PromoIdle, summary.Status)
	assert.Zero(t, summary.Discount())
	assert.InDelta(t, 100.0, summary.Total(), 1e-9)
}

func TestOrderSummary_ApplyPromo(t *testing.T) {
	tests := []struct {
		name         string
		code         string
		wantStatus   PromoStatus
		wantDiscount float64
		wantTotal    float64
	}{
		{name: "matching code", code: "SAVE10", wantStatus: PromoApplied, wantDiscount: 10, wantTotal: 90},
		{name: "matching code with whitespace", code: "  SAVE10  ", wantStatus: PromoApplied, wantDiscount: 10, wantTotal: 90},
		{name: "unknown code", code: "SAVE99", wantStatus: PromoInvalid, wantDiscount: 0, wantTotal: 100},
		{name: "lowercase is not a match", code: "save10", wantStatus: PromoInvalid, wantDiscount: 0, wantTotal: 100},
		{name: "empty code", code: "", wantStatus: PromoInvalid, wantDiscount: 0, wantTotal: 100},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			summary := NewOrderSummary(100, "USD")

			status := summary.ApplyPromo(test.code)

			assert.Equal(t, test.wantStatus, status)
			assert.InDelta(t, test.wantDiscount, summary.Discount(), 1e-9)
			assert.InDelta(t, test.wantTotal, summary.Total(), 1e-9)
		})
	}
}

func TestOrderSummary_InvalidCodeClearsPreviousDiscount(t *testing.T) {
	summary := NewOrderSummary(200, "USD")

	summary.ApplyPromo("SAVE10")
	assert.InDelta(t, 180.0, summary.Total(), 1e-9)

	summary.ApplyPromo("NOPE")

	assert.Equal(t, PromoInvalid, summary.Status)
	assert.InDelta(t, 200.0, summary.Total(), 1e-9)
}
