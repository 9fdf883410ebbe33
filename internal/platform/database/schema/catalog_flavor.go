package schema

// CatalogFlavorTable represents the 'catalog.flavor' table
type CatalogFlavorTable struct {
	Table string
	ID    string
	Slug  string
	Color string
	Icon  string
}

// Flavor is the schema definition for catalog.flavor
var Flavor = CatalogFlavorTable{
	Table: "catalog.flavor",
	ID:    "id",
	Slug:  "slug",
	Color: "color",
	Icon:  "icon",
}

func (t CatalogFlavorTable) Columns() []string { return []string{t.ID, t.Slug, t.Color, t.Icon} }

// CatalogFlavorTranslationTable represents the 'catalog.flavor_translation' table
type CatalogFlavorTranslationTable struct {
	Table      string
	FlavorID   string
	LanguageID string
	Name       string
}

// FlavorTranslation is the schema definition for catalog.flavor_translation
var FlavorTranslation = CatalogFlavorTranslationTable{
	Table:      "catalog.flavor_translation",
	FlavorID:   "flavorid",
	LanguageID: "languageid",
	Name:       "name",
}
