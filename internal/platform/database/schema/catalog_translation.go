package schema

// TranslationTable describes a per-language text table attached to a node.
type TranslationTable struct {
	Table          string
	NodeID         string
	LanguageID     string
	Title          string
	Subtitle       string
	Excerpt        string
	Description    string
	SEOTitle       string
	SEODescription string
	CreatedAt      string
	UpdatedAt      string
}

func newTranslationTable(table string) TranslationTable {
	return TranslationTable{
		Table:          table,
		NodeID:         "nodeid",
		LanguageID:     "languageid",
		Title:          "title",
		Subtitle:       "subtitle",
		Excerpt:        "excerpt",
		Description:    "description",
		SEOTitle:       "seotitle",
		SEODescription: "seodescription",
		CreatedAt:      "createdat",
		UpdatedAt:      "updatedat",
	}
}

var (
	CategoryTranslation = newTranslationTable("catalog.category_translation")
	TopicTranslation    = newTranslationTable("catalog.topic_translation")
	SubtopicTranslation = newTranslationTable("catalog.subtopic_translation")
	ItemTranslation     = newTranslationTable("catalog.item_translation")
)

// ItemSearchVector is the generated tsvector column on catalog.item_translation.
const ItemSearchVector = "searchvector"

// Columns returns the text columns in scan order (node and language first).
func (t TranslationTable) Columns() []string {
	return []string{t.NodeID, t.LanguageID, t.Title, t.Subtitle, t.Excerpt, t.Description, t.SEOTitle, t.SEODescription}
}
