// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

/*
Package catalog defines the core domain entities for the Darasa course
marketplace.

It manages the discoverable surface of the platform: published courses with
bilingual (English/Arabic) metadata, their curriculum structure, instructor
profiles, student reviews, and the aggregate metrics used for ranking.

Core Responsibility:

  - Discovery: filtered, sorted, paginated course listings with exact totals.
  - Detail: full course records with curriculum, instructor, and reviews.
  - Analytics: rating distribution and enrollment metrics for display.

This package acts as the source of truth for all course-related data models.
*/
package catalog

import "time"

// # Domain Enums

// Difficulty classifies the expected skill level of a course.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// IsValid reports whether d is a recognised [Difficulty] value.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Status represents the publication lifecycle of a course.
// Only published courses are visible through discovery queries.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// Sort enumerates the orderings a catalogue listing may request.
type Sort string

const (
	// SortRelevance orders by text-match rank when a search term is present,
	// otherwise leaves the natural ordering.
	SortRelevance Sort = "relevance"

	// SortPopularity orders by enrollment count, most enrolled first.
	SortPopularity Sort = "popularity"

	// SortRating orders by average rating, highest first.
	SortRating Sort = "rating"

	// SortNewest orders by creation time, most recent first.
	SortNewest Sort = "newest"

	// SortPriceAsc orders by price, cheapest first.
	SortPriceAsc Sort = "price_asc"

	// SortPriceDesc orders by price, most expensive first.
	SortPriceDesc Sort = "price_desc"
)

// ParseSort maps a raw query value onto a [Sort], defaulting to relevance.
func ParseSort(raw string) Sort {
	switch Sort(raw) {
	case SortPopularity, SortRating, SortNewest, SortPriceAsc, SortPriceDesc:
		return Sort(raw)
	}
	return SortRelevance
}

// # Core Entities

// Course is the card-level projection of a publication in the catalogue.
// Localized fields (Title, InstructorName) are resolved to the request
// language at the storage boundary.
type Course struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Slug           string     `json:"slug"`
	InstructorName string     `json:"instructor_name"`
	CategoryID     string     `json:"category_id"`
	ImageURL       string     `json:"image_url"`
	Price          float64    `json:"price"`
	Currency       string     `json:"currency"`
	RatingAvg      float64    `json:"rating_avg"`
	RatingCount    int        `json:"rating_count"`
	DurationHours  int        `json:"duration_hours"`
	Language       string     `json:"language"` // BCP-47 tag of the course content ("en", "ar")
	Difficulty     Difficulty `json:"difficulty"`
	IsFeatured     bool       `json:"is_featured"`
	CreatedAt      time.Time  `json:"created_at"`
}

// CourseDetails is the full course record served by the detail endpoint.
//
// Details are always fetched fresh; the platform deliberately does not cache
// them so enrollment counts and reviews stay current.
type CourseDetails struct {
	Course

	Description     string     `json:"description"`
	EnrollmentCount int        `json:"enrollment_count"`
	LearnPoints     []string   `json:"learn_points"`
	Requirements    []string   `json:"requirements"`
	Audience        []string   `json:"audience"`
	Instructor      Instructor `json:"instructor"`
	Curriculum      []Module   `json:"curriculum"`
	Reviews         []Review   `json:"reviews"`
}

// Instructor is the canonical instructor projection embedded in course
// details. Every storage backend maps onto this one shape; consumers never
// see raw profile rows.
type Instructor struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Headline     string  `json:"headline"`
	Bio          string  `json:"bio"`
	AvatarURL    string  `json:"avatar_url"`
	CourseCount  int     `json:"course_count"`
	StudentCount int     `json:"student_count"`
	RatingAvg    float64 `json:"rating_avg"`
}

// Module is an ordered curriculum section containing lessons.
type Module struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

// Lesson is a single ordered unit inside a [Module].
type Lesson struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"duration_minutes"`
	IsPreview       bool   `json:"is_preview"`
}

// Review is a student rating attached to a course.
type Review struct {
	ID         string    `json:"id"`
	Rating     int       `json:"rating"` // 1..5
	Comment    string    `json:"comment"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// # Search & Filtering

// Filter holds the parameters for a filtered course list query.
//
// Zero values mean "no constraint": an empty search string matches all
// courses, nil price bounds leave the range open.
type Filter struct {
	Search       string       `json:"q,omitempty"`           // substring match on localized title/description
	CategoryID   string       `json:"category_id,omitempty"` // exact match
	MinPrice     *float64     `json:"min_price,omitempty"`   // inclusive lower bound
	MaxPrice     *float64     `json:"max_price,omitempty"`   // inclusive upper bound
	Difficulties []Difficulty `json:"difficulties,omitempty"`
	Languages    []string     `json:"languages,omitempty"`
	Sort         Sort         `json:"sort,omitempty"`
}

// # Analytics

// RatingDistribution computes the percentage of reviews per star bucket.
//
// The result is ordered five stars down to one star. Ratings outside 1..5 are
// clamped into range before bucketing. totalRatings is the authoritative
// review count; when it is not positive the loaded reviews are counted
// instead, and an empty set yields all zeros.
func RatingDistribution(reviews []Review, totalRatings int) [5]float64 {
	var distribution [5]float64

	if totalRatings <= 0 {
		totalRatings = len(reviews)
	}
	if totalRatings == 0 {
		return distribution
	}

	var counts [5]int
	for _, review := range reviews {
		rating := review.Rating
		if rating < 1 {
			rating = 1
		}
		if rating > 5 {
			rating = 5
		}

		// index 0 holds five-star reviews
		counts[5-rating]++
	}

	for i, count := range counts {
		distribution[i] = float64(count) / float64(totalRatings) * 100
	}

	return distribution
}

// # Field Identifiers

// Global field names for validation and dynamic query mapping.
const (
	FieldID         = "id"
	FieldTitle      = "title"
	FieldSlug       = "slug"
	FieldCategoryID = "category_id"
	FieldMinPrice   = "min_price"
	FieldMaxPrice   = "max_price"
	FieldDifficulty = "difficulty"
	FieldLanguage   = "language"
	FieldSort       = "sort"
	FieldQuery      = "q"
)
