package seo

// Metadata is the derived SEO record for one article. It is owned by the
// article it describes and never persisted separately.
type Metadata struct {
	MetaTitle       string
	MetaDescription string
	Keywords        []string
	CanonicalURL    string
	OgURL           string
	OgImage         string
	TwitterImage    string
	Schema          SchemaMarkup
}

// SchemaMarkup is the schema.org Article structured-data object serialized
// into each generated page's JSON-LD script block.
type SchemaMarkup struct {
	Context       string    `json:"@context"`
	Type          string    `json:"@type"`
	Headline      string    `json:"headline"`
	Description   string    `json:"description"`
	URL           string    `json:"url"`
	DatePublished string    `json:"datePublished"`
	DateModified  string    `json:"dateModified"`
	Author        Person    `json:"author"`
	Publisher     Publisher `json:"publisher"`
}

type Person struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type Publisher struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url"`
}
