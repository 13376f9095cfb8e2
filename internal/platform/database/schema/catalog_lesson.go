package schema

// CatalogLessonTable represents the 'catalog.lesson' table
type CatalogLessonTable struct {
	Table           string
	ID              string
	ModuleID        string
	Title           string
	TitleAr         string
	Position        string
	DurationMinutes string
	IsPreview       string
	CreatedAt       string
}

// CatalogLesson is the schema definition for catalog.lesson
var CatalogLesson = CatalogLessonTable{
	Table:           "catalog.lesson",
	ID:              "id",
	ModuleID:        "moduleid",
	Title:           "title",
	TitleAr:         "titlear",
	Position:        "position",
	DurationMinutes: "durationminutes",
	IsPreview:       "ispreview",
	CreatedAt:       "createdat",
}

// Columns returns all standard column names
func (t CatalogLessonTable) Columns() []string {
	return []string{
		t.ID, t.ModuleID, t.Title, t.TitleAr, t.Position, t.DurationMinutes, t.IsPreview, t.CreatedAt,
	}
}
