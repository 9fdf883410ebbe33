package schema

// CatalogTastingNoteTable represents the 'catalog.tasting_note' table
type CatalogTastingNoteTable struct {
	Table        string
	ID           string
	ItemID       string
	OverallScore string
	AromaScore   string
	TasteScore   string
	FinishScore  string
	Intensity    string
	TastedAt     string
	TasterName   string
	CreatedAt    string
	UpdatedAt    string
}

// TastingNote is the schema definition for catalog.tasting_note
var TastingNote = CatalogTastingNoteTable{
	Table:        "catalog.tasting_note",
	ID:           "id",
	ItemID:       "itemid",
	OverallScore: "overallscore",
	AromaScore:   "aromascore",
	TasteScore:   "tastescore",
	FinishScore:  "finishscore",
	Intensity:    "intensity",
	TastedAt:     "tastedat",
	TasterName:   "tastername",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

func (t CatalogTastingNoteTable) Columns() []string {
	return []string{t.ID, t.ItemID, t.OverallScore, t.AromaScore, t.TasteScore, t.FinishScore, t.Intensity, t.TastedAt, t.TasterName}
}

// CatalogTastingNoteTranslationTable represents 'catalog.tasting_note_translation'
type CatalogTastingNoteTranslationTable struct {
	Table      string
	NoteID     string
	LanguageID string
	Notes      string
}

// TastingNoteTranslation is the schema definition for catalog.tasting_note_translation
var TastingNoteTranslation = CatalogTastingNoteTranslationTable{
	Table:      "catalog.tasting_note_translation",
	NoteID:     "noteid",
	LanguageID: "languageid",
	Notes:      "notes",
}

// FlavorSectionTable describes one of the three sibling flavor-section tables.
type FlavorSectionTable struct {
	Table        string
	NoteID       string
	FlavorID     string
	Intensity    string
	DisplayOrder string
}

func newFlavorSectionTable(table string) FlavorSectionTable {
	return FlavorSectionTable{
		Table:        table,
		NoteID:       "noteid",
		FlavorID:     "flavorid",
		Intensity:    "intensity",
		DisplayOrder: "displayorder",
	}
}

var (
	TastingAroma  = newFlavorSectionTable("catalog.tasting_aroma")
	TastingTaste  = newFlavorSectionTable("catalog.tasting_taste")
	TastingFinish = newFlavorSectionTable("catalog.tasting_finish")
)

// FlavorSections lists the section tables in aroma, taste, finish order.
var FlavorSections = []FlavorSectionTable{TastingAroma, TastingTaste, TastingFinish}
