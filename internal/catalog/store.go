// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

package catalog

import "context"

// # Course Data Access

// CourseRepository defines the data access contract for the catalogue domain.
//
// Every read takes the display language so localized columns resolve at the
// storage boundary and callers only ever see the canonical shapes.
type CourseRepository interface {

	/*
		List returns a filtered, paginated slice of published courses and the
		exact total count of matches.

		Parameters:
		  - context: context.Context
		  - lang: string ("en" or "ar"; selects localized columns)
		  - filter: Filter (search, category, price bounds, difficulty, language, sort)
		  - limit: int
		  - offset: int

		Returns:
		  - []*Course: Slice of matching course cards
		  - int: Total count of records matching the filter
		  - error: Database retrieval failures
	*/
	List(context context.Context, lang string, filter Filter, limit, offset int) ([]*Course, int, error)

	/*
		FindDetails returns the full course record including curriculum,
		instructor, and reviews.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)
		  - lang: string

		Returns:
		  - *CourseDetails: The hydrated detail entity
		  - error: NotFound if missing or unpublished
	*/
	FindDetails(context context.Context, id, lang string) (*CourseDetails, error)

	/*
		Search performs a full-text lookup over published courses.

		Parameters:
		  - context: context.Context
		  - term: string (free text, websearch syntax)
		  - lang: string

		Returns:
		  - []*Course: Ranked matches, best first
		  - error: Database retrieval failures
	*/
	Search(context context.Context, term, lang string) ([]*Course, error)

	/*
		Featured returns the curated set of featured courses for the landing
		surface, best rated first.

		Parameters:
		  - context: context.Context
		  - lang: string
		  - limit: int

		Returns:
		  - []*Course: Featured course cards
		  - error: Database retrieval failures
	*/
	Featured(context context.Context, lang string, limit int) ([]*Course, error)
}
