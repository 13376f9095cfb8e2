package schema

// CatalogModuleTable represents the 'catalog.module' table
type CatalogModuleTable struct {
	Table     string
	ID        string
	CourseID  string
	Title     string
	TitleAr   string
	Position  string
	CreatedAt string
}

// CatalogModule is the schema definition for catalog.module
var CatalogModule = CatalogModuleTable{
	Table:     "catalog.module",
	ID:        "id",
	CourseID:  "courseid",
	Title:     "title",
	TitleAr:   "titlear",
	Position:  "position",
	CreatedAt: "createdat",
}

// Columns returns all standard column names
func (t CatalogModuleTable) Columns() []string {
	return []string{
		t.ID, t.CourseID, t.Title, t.TitleAr, t.Position, t.CreatedAt,
	}
}
