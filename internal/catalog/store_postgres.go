// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

/*
Package catalog provides the PostgreSQL implementation for the catalogue's
data access.

It utilizes advanced Postgres features to deliver a high-performance discovery
experience:
  - Full-Text Search: Uses 'websearch_to_tsquery' and GIN indexes for fuzzy matching.
  - JSON Aggregation: Retrieves complex nested data (curriculum, reviews) in a single round-trip.
  - Window Functions: Calculates total result counts without requiring a separate 'COUNT' query.
  - Localized Columns: Resolves bilingual columns (title vs titlear) inside the query.

The repository follows an "Aggregate" pattern where curriculum and reviews are
hydrated through the course repository to maintain domain integrity.
*/
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/darasahq/darasa/internal/platform/apperr"
	"github.com/darasahq/darasa/internal/platform/database/schema"
)

// # PostgreSQL Repositories

// courseRepository implements the [CourseRepository] interface using pgx.
type courseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository constructs a PostgreSQL backed course store.
func NewCourseRepository(pool *pgxpool.Pool) CourseRepository {
	return &courseRepository{pool: pool}
}

// # Localized Column Resolution

// localized returns the SQL expression selecting the Arabic variant of a
// column with an English fallback, or the base column for English requests.
func localized(lang, column, columnAr string) string {
	if lang == "ar" {
		return fmt.Sprintf("COALESCE(NULLIF(%s, ''), %s)", columnAr, column)
	}
	return column
}

// localizedArray is the text[] counterpart of [localized]: an empty Arabic
// array falls back to the English one.
func localizedArray(lang, column, columnAr string) string {
	if lang == "ar" {
		return fmt.Sprintf("CASE WHEN cardinality(%s) > 0 THEN %s ELSE %s END", columnAr, columnAr, column)
	}
	return column
}

// accountName returns the SQL expression building a display name from a
// users.account row aliased as alias, localized to lang.
func accountName(lang, alias string) string {
	first := localized(lang,
		fmt.Sprintf("%s.%s", alias, schema.UserAccount.FirstName),
		fmt.Sprintf("%s.%s", alias, schema.UserAccount.FirstNameAr),
	)
	last := localized(lang,
		fmt.Sprintf("%s.%s", alias, schema.UserAccount.LastName),
		fmt.Sprintf("%s.%s", alias, schema.UserAccount.LastNameAr),
	)
	return fmt.Sprintf("TRIM(%s || ' ' || %s)", first, last)
}

// cardColumns returns the SELECT list for the course card projection.
func cardColumns(lang string) string {
	return fmt.Sprintf(`
			c.%s, %s, c.%s, %s AS instructorname,
			c.%s, c.%s, c.%s, c.%s,
			c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s`,
		schema.CatalogCourse.ID,
		localized(lang, "c."+schema.CatalogCourse.Title, "c."+schema.CatalogCourse.TitleAr),
		schema.CatalogCourse.Slug,
		accountName(lang, "ua"),
		schema.CatalogCourse.CategoryID,
		schema.CatalogCourse.ImageURL,
		schema.CatalogCourse.Price,
		schema.CatalogCourse.Currency,
		schema.CatalogCourse.RatingAvg,
		schema.CatalogCourse.RatingCount,
		schema.CatalogCourse.DurationHours,
		schema.CatalogCourse.Language,
		schema.CatalogCourse.Difficulty,
		schema.CatalogCourse.IsFeatured,
		schema.CatalogCourse.CreatedAt,
	)
}

// cardJoins returns the FROM/JOIN clause shared by every card query.
func cardJoins() string {
	return fmt.Sprintf(`
		FROM %s c
		JOIN %s ip ON ip.%s = c.%s
		JOIN %s ua ON ua.%s = ip.%s`,
		schema.CatalogCourse.Table,
		schema.CatalogInstructorProfile.Table,
		schema.CatalogInstructorProfile.ID, schema.CatalogCourse.InstructorID,
		schema.UserAccount.Table,
		schema.UserAccount.ID, schema.CatalogInstructorProfile.UserID,
	)
}

// scanCard maps one card-projection row (plus trailing extras) onto a Course.
func scanCard(rows pgx.Rows, course *Course, extras ...any) error {
	dest := []any{
		&course.ID,
		&course.Title,
		&course.Slug,
		&course.InstructorName,
		&course.CategoryID,
		&course.ImageURL,
		&course.Price,
		&course.Currency,
		&course.RatingAvg,
		&course.RatingCount,
		&course.DurationHours,
		&course.Language,
		&course.Difficulty,
		&course.IsFeatured,
		&course.CreatedAt,
	}
	dest = append(dest, extras...)
	return rows.Scan(dest...)
}

// # Course Repository Implementation

/*
List returns a filtered, paginated slice of published courses and the exact
total count.

Description: This high-performance query utilizes several PostgreSQL advanced
features:
  - Window Function: Uses COUNT(*) OVER() to retrieve total record counts
    without a second query, so a page of results and its exact total arrive
    in one round-trip.
  - Localized Selection: Resolves bilingual columns to the requested language
    inside the query, keeping callers on the canonical shapes.
  - Set Operations: Uses ANY($n) for difficulty and language membership.

Parameters:
  - context: context.Context
  - lang: string (display language)
  - filter: Filter (search, category, price bounds, difficulty, language, sort)
  - limit: int
  - offset: int

Returns:
  - []*Course: Slice of hydrated course cards
  - int: Total count matching filters
  - error: Database execution errors
*/
func (repository *courseRepository) List(context context.Context, lang string, filter Filter, limit, offset int) ([]*Course, int, error) {

	// Query build initialization
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString("SELECT " + cardColumns(lang) + ",\n\t\t\tCOUNT(*) OVER() AS total_count")
	queryBuilder.WriteString(cardJoins())
	queryBuilder.WriteString(fmt.Sprintf(" WHERE c.%s = '%s' AND c.%s IS NULL",
		schema.CatalogCourse.Status, StatusPublished, schema.CatalogCourse.DeletedAt))

	// Substring search over the localized title and description
	if filter.Search != "" {
		titleExpr := localized(lang, "c."+schema.CatalogCourse.Title, "c."+schema.CatalogCourse.TitleAr)
		descExpr := localized(lang, "c."+schema.CatalogCourse.Description, "c."+schema.CatalogCourse.DescriptionAr)
		queryBuilder.WriteString(fmt.Sprintf(" AND (%s ILIKE $%d OR %s ILIKE $%d)", titleExpr, argID, descExpr, argID))
		args = append(args, "%"+filter.Search+"%")
		argID++
	}

	// Category Filtering
	if filter.CategoryID != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND c.%s = $%d", schema.CatalogCourse.CategoryID, argID))
		args = append(args, filter.CategoryID)
		argID++
	}

	// Price bounds are inclusive on both ends
	if filter.MinPrice != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND c.%s >= $%d", schema.CatalogCourse.Price, argID))
		args = append(args, *filter.MinPrice)
		argID++
	}
	if filter.MaxPrice != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND c.%s <= $%d", schema.CatalogCourse.Price, argID))
		args = append(args, *filter.MaxPrice)
		argID++
	}

	// Difficulty Filtering
	if len(filter.Difficulties) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND c.%s = ANY($%d)", schema.CatalogCourse.Difficulty, argID))
		args = append(args, filter.Difficulties)
		argID++
	}

	// Content Language Filtering
	if len(filter.Languages) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND c.%s = ANY($%d)", schema.CatalogCourse.Language, argID))
		args = append(args, filter.Languages)
		argID++
	}

	// Apply Sorting Logic
	var sort string
	switch filter.Sort {
	case SortPopularity:
		sort = fmt.Sprintf("c.%s DESC", schema.CatalogCourse.EnrollmentCount)
	case SortRating:
		sort = fmt.Sprintf("c.%s DESC", schema.CatalogCourse.RatingAvg)
	case SortNewest:
		sort = fmt.Sprintf("c.%s DESC", schema.CatalogCourse.CreatedAt)
	case SortPriceAsc:
		sort = fmt.Sprintf("c.%s ASC", schema.CatalogCourse.Price)
	case SortPriceDesc:
		sort = fmt.Sprintf("c.%s DESC", schema.CatalogCourse.Price)
	default:
		// Relevance: rank against the search term when present, otherwise
		// fall back to insertion order for stable pagination.
		if filter.Search != "" {
			sort = fmt.Sprintf("ts_rank(c.%s, websearch_to_tsquery('simple', unaccent($%d))) DESC",
				schema.CatalogCourse.SearchVector, argID)
			args = append(args, filter.Search)
			argID++
		} else {
			sort = fmt.Sprintf("c.%s ASC", schema.CatalogCourse.ID)
		}
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s, c.%s DESC", sort, schema.CatalogCourse.ID))

	// Pagination injection
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	// Query Execution
	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list courses: %w", err)
	}
	defer rows.Close()

	var courses []*Course
	var totalCount int

	for rows.Next() {
		course := &Course{}
		if err := scanCard(rows, course, &totalCount); err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan course: %w", err)
		}
		courses = append(courses, course)
	}

	return courses, totalCount, nil
}

/*
FindDetails retrieves the full course record by its primary key.

Description: In addition to the card fields, this query utilizes PostgreSQL's
JSON aggregation capabilities (json_agg and json_build_object) to retrieve the
curriculum (modules with their ordered lessons), the instructor profile, and
the latest reviews in a single database round-trip. This avoids the classic
N+1 query problem for the heaviest read in the system.

Parameters:
  - context: context.Context
  - id: string (UUID primary key of the target course)
  - lang: string (display language)

Returns:
  - *CourseDetails: The fully hydrated detail entity
  - error: apperr.NotFound if the course does not exist or is unpublished
*/
func (repository *courseRepository) FindDetails(context context.Context, id, lang string) (*CourseDetails, error) {

	moduleTitle := localized(lang, "m."+schema.CatalogModule.Title, "m."+schema.CatalogModule.TitleAr)
	lessonTitle := localized(lang, "l."+schema.CatalogLesson.Title, "l."+schema.CatalogLesson.TitleAr)

	query := fmt.Sprintf(`
		SELECT %s,
			%s, c.%s,
			%s, %s, %s,
			json_build_object(
				'id', ip.%s,
				'name', %s,
				'headline', %s,
				'bio', %s,
				'avatar_url', ip.%s,
				'course_count', ip.%s,
				'student_count', ip.%s,
				'rating_avg', ip.%s
			) AS instructor,
			COALESCE((
				SELECT json_agg(json_build_object(
					'id', m.%s,
					'title', %s,
					'lessons', COALESCE((
						SELECT json_agg(json_build_object(
							'id', l.%s,
							'title', %s,
							'duration_minutes', l.%s,
							'is_preview', l.%s
						) ORDER BY l.%s)
						FROM %s l WHERE l.%s = m.%s
					), '[]')
				) ORDER BY m.%s)
				FROM %s m WHERE m.%s = c.%s
			), '[]') AS curriculum,
			COALESCE((
				SELECT json_agg(json_build_object(
					'id', r.%s,
					'rating', r.%s,
					'comment', r.%s,
					'author_name', %s,
					'created_at', r.%s
				) ORDER BY r.%s DESC)
				FROM %s r
				JOIN %s ra ON ra.%s = r.%s
				WHERE r.%s = c.%s
			), '[]') AS reviews
		%s
		WHERE c.%s = $1 AND c.%s = '%s' AND c.%s IS NULL
	`,
		cardColumns(lang),
		localized(lang, "c."+schema.CatalogCourse.Description, "c."+schema.CatalogCourse.DescriptionAr),
		schema.CatalogCourse.EnrollmentCount,
		localizedArray(lang, "c."+schema.CatalogCourse.LearnPoints, "c."+schema.CatalogCourse.LearnPointsAr),
		localizedArray(lang, "c."+schema.CatalogCourse.Requirements, "c."+schema.CatalogCourse.RequirementsAr),
		localizedArray(lang, "c."+schema.CatalogCourse.Audience, "c."+schema.CatalogCourse.AudienceAr),
		schema.CatalogInstructorProfile.ID,
		accountName(lang, "ua"),
		localized(lang, "ip."+schema.CatalogInstructorProfile.Headline, "ip."+schema.CatalogInstructorProfile.HeadlineAr),
		localized(lang, "ip."+schema.CatalogInstructorProfile.Bio, "ip."+schema.CatalogInstructorProfile.BioAr),
		schema.CatalogInstructorProfile.AvatarURL,
		schema.CatalogInstructorProfile.CourseCount,
		schema.CatalogInstructorProfile.StudentCount,
		schema.CatalogInstructorProfile.RatingAvg,
		schema.CatalogModule.ID,
		moduleTitle,
		schema.CatalogLesson.ID,
		lessonTitle,
		schema.CatalogLesson.DurationMinutes,
		schema.CatalogLesson.IsPreview,
		schema.CatalogLesson.Position,
		schema.CatalogLesson.Table, schema.CatalogLesson.ModuleID, schema.CatalogModule.ID,
		schema.CatalogModule.Position,
		schema.CatalogModule.Table, schema.CatalogModule.CourseID, schema.CatalogCourse.ID,
		schema.CatalogReview.ID,
		schema.CatalogReview.Rating,
		schema.CatalogReview.Comment,
		accountName(lang, "ra"),
		schema.CatalogReview.CreatedAt,
		schema.CatalogReview.CreatedAt,
		schema.CatalogReview.Table,
		schema.UserAccount.Table, schema.UserAccount.ID, schema.CatalogReview.UserID,
		schema.CatalogReview.CourseID, schema.CatalogCourse.ID,
		cardJoins(),
		schema.CatalogCourse.ID, schema.CatalogCourse.Status, StatusPublished, schema.CatalogCourse.DeletedAt,
	)

	details := &CourseDetails{}
	var instructorJSON, curriculumJSON, reviewsJSON []byte

	err := repository.pool.QueryRow(context, query, id).Scan(
		&details.ID,
		&details.Title,
		&details.Slug,
		&details.InstructorName,
		&details.CategoryID,
		&details.ImageURL,
		&details.Price,
		&details.Currency,
		&details.RatingAvg,
		&details.RatingCount,
		&details.DurationHours,
		&details.Language,
		&details.Difficulty,
		&details.IsFeatured,
		&details.CreatedAt,
		&details.Description,
		&details.EnrollmentCount,
		&details.LearnPoints,
		&details.Requirements,
		&details.Audience,
		&instructorJSON,
		&curriculumJSON,
		&reviewsJSON,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("course")
		}
		return nil, fmt.Errorf("postgres: failed to find course details: %w", err)
	}

	// Hydrate the aggregated JSON payloads into domain models
	if err := json.Unmarshal(instructorJSON, &details.Instructor); err != nil {
		return nil, fmt.Errorf("postgres: failed to unmarshal instructor: %w", err)
	}
	if err := json.Unmarshal(curriculumJSON, &details.Curriculum); err != nil {
		return nil, fmt.Errorf("postgres: failed to unmarshal curriculum: %w", err)
	}
	if err := json.Unmarshal(reviewsJSON, &details.Reviews); err != nil {
		return nil, fmt.Errorf("postgres: failed to unmarshal reviews: %w", err)
	}

	return details, nil
}

/*
Search performs a ranked full-text lookup over published courses.

Description: Delegates matching to the GIN-indexed search vector built over
both language variants of the title and description. Results are ranked by
ts_rank so the best matches surface first.

Parameters:
  - context: context.Context
  - term: string (websearch syntax: quoted phrases, or-operators)
  - lang: string (display language)

Returns:
  - []*Course: Ranked matches, best first
  - error: Database execution errors
*/
func (repository *courseRepository) Search(context context.Context, term, lang string) ([]*Course, error) {

	query := fmt.Sprintf(`
		SELECT %s
		%s
		WHERE c.%s = '%s' AND c.%s IS NULL
		  AND c.%s @@ websearch_to_tsquery('simple', unaccent($1))
		ORDER BY ts_rank(c.%s, websearch_to_tsquery('simple', unaccent($1))) DESC, c.%s DESC
		LIMIT 20
	`,
		cardColumns(lang),
		cardJoins(),
		schema.CatalogCourse.Status, StatusPublished, schema.CatalogCourse.DeletedAt,
		schema.CatalogCourse.SearchVector,
		schema.CatalogCourse.SearchVector,
		schema.CatalogCourse.ID,
	)

	rows, err := repository.pool.Query(context, query, term)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to search courses: %w", err)
	}
	defer rows.Close()

	var courses []*Course
	for rows.Next() {
		course := &Course{}
		if err := scanCard(rows, course); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan course: %w", err)
		}
		courses = append(courses, course)
	}

	return courses, nil
}

/*
Featured returns the curated featured courses, best rated first.

Parameters:
  - context: context.Context
  - lang: string (display language)
  - limit: int (maximum cards to return)

Returns:
  - []*Course: Featured course cards
  - error: Database execution errors
*/
func (repository *courseRepository) Featured(context context.Context, lang string, limit int) ([]*Course, error) {

	query := fmt.Sprintf(`
		SELECT %s
		%s
		WHERE c.%s = '%s' AND c.%s IS NULL AND c.%s = TRUE
		ORDER BY c.%s DESC, c.%s DESC, c.%s DESC
		LIMIT $1
	`,
		cardColumns(lang),
		cardJoins(),
		schema.CatalogCourse.Status, StatusPublished, schema.CatalogCourse.DeletedAt,
		schema.CatalogCourse.IsFeatured,
		schema.CatalogCourse.RatingAvg,
		schema.CatalogCourse.RatingCount,
		schema.CatalogCourse.ID,
	)

	rows, err := repository.pool.Query(context, query, limit)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list featured courses: %w", err)
	}
	defer rows.Close()

	var courses []*Course
	for rows.Next() {
		course := &Course{}
		if err := scanCard(rows, course); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan course: %w", err)
		}
		courses = append(courses, course)
	}

	return courses, nil
}
