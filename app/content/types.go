package content

import (
	"time"
)

// Article is the structured record extracted from one draft. Articles are
// immutable once built; the Index owns them for the duration of a run.
type Article struct {
	ID           string
	Title        string
	Description  string
	Category     string
	Keyword      string
	ReadTime     string // e.g. "4 min read"
	WordCount    int
	Featured     bool
	URL          string
	RawContent   string
	LastModified time.Time
}

// Draft is one discovered source file awaiting extraction
type Draft struct {
	Path     string
	Featured bool
}
