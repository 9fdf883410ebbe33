package schema

// CatalogLanguageTable represents the 'catalog.language' table
type CatalogLanguageTable struct {
	Table        string
	ID           string
	Code         string
	Name         string
	NativeName   string
	IsActive     string
	IsDefault    string
	DisplayOrder string
	CreatedAt    string
}

// CatalogLanguage is the schema definition for catalog.language
var CatalogLanguage = CatalogLanguageTable{
	Table:        "catalog.language",
	ID:           "id",
	Code:         "code",
	Name:         "name",
	NativeName:   "nativename",
	IsActive:     "isactive",
	IsDefault:    "isdefault",
	DisplayOrder: "displayorder",
	CreatedAt:    "createdat",
}

func (t CatalogLanguageTable) Columns() []string {
	return []string{t.ID, t.Code, t.Name, t.NativeName, t.IsActive, t.IsDefault, t.DisplayOrder}
}
