package schema

// CatalogCourseTable represents the 'catalog.course' table
type CatalogCourseTable struct {
	Table           string
	ID              string
	Title           string
	TitleAr         string
	Description     string
	DescriptionAr   string
	Slug            string
	InstructorID    string
	CategoryID      string
	ImageURL        string
	Price           string
	Currency        string
	RatingAvg       string
	RatingCount     string
	EnrollmentCount string
	DurationHours   string
	Language        string
	Difficulty      string
	IsFeatured      string
	Status          string
	LearnPoints     string
	LearnPointsAr   string
	Requirements    string
	RequirementsAr  string
	Audience        string
	AudienceAr      string
	SearchVector    string
	CreatedAt       string
	UpdatedAt       string
	DeletedAt       string
}

// CatalogCourse is the schema definition for catalog.course
var CatalogCourse = CatalogCourseTable{
	Table:           "catalog.course",
	ID:              "id",
	Title:           "title",
	TitleAr:         "titlear",
	Description:     "description",
	DescriptionAr:   "descriptionar",
	Slug:            "slug",
	InstructorID:    "instructorid",
	CategoryID:      "categoryid",
	ImageURL:        "imageurl",
	Price:           "price",
	Currency:        "currency",
	RatingAvg:       "ratingavg",
	RatingCount:     "ratingcount",
	EnrollmentCount: "enrollmentcount",
	DurationHours:   "durationhours",
	Language:        "language",
	Difficulty:      "difficulty",
	IsFeatured:      "isfeatured",
	Status:          "status",
	LearnPoints:     "learnpoints",
	LearnPointsAr:   "learnpointsar",
	Requirements:    "requirements",
	RequirementsAr:  "requirementsar",
	Audience:        "audience",
	AudienceAr:      "audiencear",
	SearchVector:    "searchvector",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
	DeletedAt:       "deletedat",
}

func (t CatalogCourseTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.TitleAr, t.Description, t.DescriptionAr, t.Slug,
		t.InstructorID, t.CategoryID, t.ImageURL, t.Price, t.Currency,
		t.RatingAvg, t.RatingCount, t.EnrollmentCount, t.DurationHours,
		t.Language, t.Difficulty, t.IsFeatured, t.Status, t.LearnPoints,
		t.LearnPointsAr, t.Requirements, t.RequirementsAr, t.Audience,
		t.AudienceAr, t.SearchVector, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
