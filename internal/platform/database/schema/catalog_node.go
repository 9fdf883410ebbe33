package schema

// NodeTable describes the columns shared by the four content node tables.
// Parent is empty for the top level.
type NodeTable struct {
	Table        string
	ID           string
	Slug         string
	Parent       string
	DisplayOrder string
	IsActive     string
	Status       string
	PublishedAt  string
	CreatedAt    string
	UpdatedAt    string
}

func newNodeTable(table, parent string) NodeTable {
	return NodeTable{
		Table:        table,
		ID:           "id",
		Slug:         "slug",
		Parent:       parent,
		DisplayOrder: "displayorder",
		IsActive:     "isactive",
		Status:       "status",
		PublishedAt:  "publishedat",
		CreatedAt:    "createdat",
		UpdatedAt:    "updatedat",
	}
}

// CatalogCategory is the schema definition for catalog.category
var CatalogCategory = newNodeTable("catalog.category", "")

// CatalogTopic is the schema definition for catalog.topic
var CatalogTopic = newNodeTable("catalog.topic", "categoryid")

// CatalogSubtopic is the schema definition for catalog.subtopic
var CatalogSubtopic = newNodeTable("catalog.subtopic", "topicid")

// Columns returns the shared node columns in scan order.
func (t NodeTable) Columns() []string {
	return []string{t.ID, t.Slug, t.DisplayOrder, t.IsActive, t.Status, t.PublishedAt, t.CreatedAt, t.UpdatedAt}
}

// CatalogItemTable represents the 'catalog.item' table
type CatalogItemTable struct {
	NodeTable
	CategoryID string
	TopicID    string
	SubtopicID string
	ABV        string
	Vintage    string
	VolumeML   string
	Price      string
	IsFeatured string
}

// CatalogItem is the schema definition for catalog.item
var CatalogItem = CatalogItemTable{
	NodeTable:  newNodeTable("catalog.item", "topicid"),
	CategoryID: "categoryid",
	TopicID:    "topicid",
	SubtopicID: "subtopicid",
	ABV:        "abv",
	Vintage:    "vintage",
	VolumeML:   "volumeml",
	Price:      "price",
	IsFeatured: "isfeatured",
}
