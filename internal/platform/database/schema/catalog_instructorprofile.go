package schema

// CatalogInstructorProfileTable represents the 'catalog.instructorprofile' table
type CatalogInstructorProfileTable struct {
	Table        string
	ID           string
	UserID       string
	Headline     string
	HeadlineAr   string
	Bio          string
	BioAr        string
	AvatarURL    string
	CourseCount  string
	StudentCount string
	RatingAvg    string
	CreatedAt    string
	UpdatedAt    string
}

// CatalogInstructorProfile is the schema definition for catalog.instructorprofile
var CatalogInstructorProfile = CatalogInstructorProfileTable{
	Table:        "catalog.instructorprofile",
	ID:           "id",
	UserID:       "userid",
	Headline:     "headline",
	HeadlineAr:   "headlinear",
	Bio:          "bio",
	BioAr:        "bioar",
	AvatarURL:    "avatarurl",
	CourseCount:  "coursecount",
	StudentCount: "studentcount",
	RatingAvg:    "ratingavg",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

// Columns returns all standard column names
func (t CatalogInstructorProfileTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.Headline, t.HeadlineAr, t.Bio, t.BioAr,
		t.AvatarURL, t.CourseCount, t.StudentCount, t.RatingAvg,
		t.CreatedAt, t.UpdatedAt,
	}
}
