// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatingDistribution(t *testing.T) {
	reviewsOf := func(ratings ...int) []Review {
		reviews := make([]Review, len(ratings))
		for i, rating := range ratings {
			reviews[i] = Review{Rating: rating}
		}
		return reviews
	}

	tests := []struct {
		name         string
		reviews      []Review
		totalRatings int
		want         [5]float64
	}{
		{
			name:         "mixed ratings",
			reviews:      reviewsOf(5, 5, 4, 3, 1),
			totalRatings: 5,
			want:         [5]float64{40, 20, 20, 0, 20},
		},
		{
			name:         "single five star",
			reviews:      reviewsOf(5),
			totalRatings: 1,
			want:         [5]float64{100, 0, 0, 0, 0},
		},
		{
			name:         "no reviews",
			reviews:      nil,
			totalRatings: 0,
			want:         [5]float64{},
		},
		{
			name:         "out of range ratings are clamped",
			reviews:      reviewsOf(7, 0, -3),
			totalRatings: 3,
			// 7 clamps to 5 stars, 0 and -3 clamp to 1 star
			want: [5]float64{100.0 / 3, 0, 0, 0, 200.0 / 3},
		},
		{
			name:         "total falls back to loaded reviews",
			reviews:      reviewsOf(4, 4),
			totalRatings: 0,
			want:         [5]float64{0, 100, 0, 0, 0},
		},
		{
			name:         "authoritative total exceeds loaded reviews",
			reviews:      reviewsOf(5),
			totalRatings: 4,
			want:         [5]float64{25, 0, 0, 0, 0},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RatingDistribution(tc.reviews, tc.totalRatings)
			for i := range got {
				assert.InDelta(t, tc.want[i], got[i], 1e-9, "bucket %d", i)
			}
		})
	}
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		raw  string
		want Sort
	}{
		{raw: "popularity", want: SortPopularity},
		{raw: "rating", want: SortRating},
		{raw: "newest", want: SortNewest},
		{raw: "price_asc", want: SortPriceAsc},
		{raw: "price_desc", want: SortPriceDesc},
		{raw: "relevance", want: SortRelevance},
		{raw: "", want: SortRelevance},
		{raw: "bogus", want: SortRelevance},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, ParseSort(tc.raw), "raw=%q", tc.raw)
	}
}

func TestDifficulty_IsValid(t *testing.T) {
	assert.True(t, DifficultyBeginner.IsValid())
	assert.True(t, DifficultyIntermediate.IsValid())
	assert.True(t, DifficultyAdvanced.IsValid())
	assert.False(t, Difficulty("expert").IsValid())
	assert.False(t, Difficulty("").IsValid())
}
