package schema

// CatalogItemImageTable represents the 'catalog.item_image' table
type CatalogItemImageTable struct {
	Table        string
	ID           string
	ItemID       string
	Path         string
	DisplayOrder string
	IsPrimary    string
}

// ItemImage is the schema definition for catalog.item_image
var ItemImage = CatalogItemImageTable{
	Table:        "catalog.item_image",
	ID:           "id",
	ItemID:       "itemid",
	Path:         "path",
	DisplayOrder: "displayorder",
	IsPrimary:    "isprimary",
}

// CatalogItemImageTranslationTable represents 'catalog.item_image_translation'
type CatalogItemImageTranslationTable struct {
	Table      string
	ImageID    string
	LanguageID string
	AltText    string
}

// ItemImageTranslation is the schema definition for catalog.item_image_translation
var ItemImageTranslation = CatalogItemImageTranslationTable{
	Table:      "catalog.item_image_translation",
	ImageID:    "imageid",
	LanguageID: "languageid",
	AltText:    "alttext",
}
