package generator

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"

	"github.com/contentfab/pageforge/app/content"
)

var ErrMarkerNotFound = errors.New("blog index declaration not found")

const (
	beginMarker = "// BEGIN GENERATED ARTICLES"
	endMarker   = "// END GENERATED ARTICLES"
)

var (
	markerBlockRe = regexp.MustCompile(`(?s)// BEGIN GENERATED ARTICLES.*?// END GENERATED ARTICLES`)
	declBlockRe   = regexp.MustCompile(`(?s)const blogArticles(?::\s*BlogArticle\[\])?\s*=\s*\[.*?\];`)
)

// BlogIndexUpdater replaces the generated article listing inside a
// hand-maintained index page. Unlike the other generators it performs a
// read-modify-write, so its failure mode is conservative: when neither the
// marker block nor the bare declaration is found, nothing is written.
type BlogIndexUpdater struct {
	indexFile string
}

func NewBlogIndexUpdater(indexFile string) *BlogIndexUpdater {
	return &BlogIndexUpdater{indexFile: indexFile}
}

// Run locates the previously generated block and splices a fresh one in its
// place. Returns ErrMarkerNotFound when no recognizable block exists; the
// caller treats that as skip-and-warn, never as append.
func (u *BlogIndexUpdater) Run(index *content.Index) error {
	data, err := os.ReadFile(u.indexFile)
	if err != nil {
		return fmt.Errorf("failed to read blog index: %w", err)
	}

	source := string(data)

	loc := markerBlockRe.FindStringIndex(source)
	if loc == nil {
		loc = declBlockRe.FindStringIndex(source)
	}
	if loc == nil {
		return fmt.Errorf("%w in %s", ErrMarkerNotFound, u.indexFile)
	}

	updated := source[:loc[0]] + renderArticleBlock(index) + source[loc[1]:]

	if err := os.WriteFile(u.indexFile, []byte(updated), 0644); err != nil {
		return fmt.Errorf("failed to write blog index: %w", err)
	}

	slog.Debug("Blog index updated", "file", u.indexFile, "articles", index.Len())

	return nil
}

// renderArticleBlock serializes the article listing, marker-delimited so the
// next run can find it even when it replaced a bare declaration this time.
func renderArticleBlock(index *content.Index) string {
	var buf bytes.Buffer

	buf.WriteString(beginMarker)
	buf.WriteString("\nconst blogArticles = [\n")

	for _, article := range index.Articles() {
		buf.WriteString("  {\n")
		writeStringField(&buf, "id", article.ID, 4)
		writeStringField(&buf, "title", article.Title, 4)
		writeStringField(&buf, "description", article.Description, 4)
		writeStringField(&buf, "category", article.Category, 4)
		writeStringField(&buf, "readTime", article.ReadTime, 4)
		buf.WriteString(fmt.Sprintf("    featured: %t,\n", article.Featured))
		writeStringField(&buf, "url", article.URL, 4)
		buf.WriteString("  },\n")
	}

	buf.WriteString("];\n")
	buf.WriteString(endMarker)

	return buf.String()
}
