package schema

// CatalogCategoryTable represents the 'catalog.category' table
type CatalogCategoryTable struct {
	Table     string
	ID        string
	Name      string
	NameAr    string
	Slug      string
	Icon      string
	SortOrder string
	CreatedAt string
}

// CatalogCategory is the schema definition for catalog.category
var CatalogCategory = CatalogCategoryTable{
	Table:     "catalog.category",
	ID:        "id",
	Name:      "name",
	NameAr:    "namear",
	Slug:      "slug",
	Icon:      "icon",
	SortOrder: "sortorder",
	CreatedAt: "createdat",
}

// Columns returns all standard column names
func (t CatalogCategoryTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.NameAr, t.Slug, t.Icon, t.SortOrder, t.CreatedAt,
	}
}
