package schema

// CatalogReviewTable represents the 'catalog.review' table
type CatalogReviewTable struct {
	Table     string
	ID        string
	CourseID  string
	UserID    string
	Rating    string
	Comment   string
	CreatedAt string
}

// CatalogReview is the schema definition for catalog.review
var CatalogReview = CatalogReviewTable{
	Table:     "catalog.review",
	ID:        "id",
	CourseID:  "courseid",
	UserID:    "userid",
	Rating:    "rating",
	Comment:   "comment",
	CreatedAt: "createdat",
}

// Columns returns all standard column names
func (t CatalogReviewTable) Columns() []string {
	return []string{
		t.ID, t.CourseID, t.UserID, t.Rating, t.Comment, t.CreatedAt,
	}
}
