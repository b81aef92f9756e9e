package content

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/contentfab/pageforge/app/config"
)

const (
	maxDescriptionLength = 150
	wordsPerMinute       = 200
)

var (
	headingRe  = regexp.MustCompile(`^#\s+(.+)$`)
	boldLineRe = regexp.MustCompile(`^\*\*(.+)\*\*$`)
	nonSlugRe  = regexp.MustCompile(`[^a-z0-9]+`)
)

// Extractor parses a draft's raw text into an Article. Every draft, however
// malformed, yields a usable Article: each field degrades through a chain of
// fallbacks rather than failing.
type Extractor struct {
	categories []config.CategoryRule
	titleCaser cases.Caser
}

func NewExtractor(categories []config.CategoryRule) *Extractor {
	return &Extractor{
		categories: categories,
		titleCaser: cases.Title(language.English),
	}
}

// Run reads and extracts one draft. An unreadable file is the only
// unrecoverable failure; the caller logs it and excludes the draft.
func (e *Extractor) Run(draft Draft) (*Article, error) {
	data, err := os.ReadFile(draft.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read draft: %w", err)
	}

	raw := string(data)
	id := strings.TrimSuffix(filepath.Base(draft.Path), draftExtension)
	keyword := e.titleCaser.String(strings.ReplaceAll(id, "-", " "))
	wordCount := len(strings.Fields(raw))

	article := &Article{
		ID:           id,
		Title:        e.extractTitle(raw, id),
		Description:  e.extractDescription(raw, keyword),
		Category:     e.matchCategory(id),
		Keyword:      keyword,
		ReadTime:     fmt.Sprintf("%d min read", readMinutes(wordCount)),
		WordCount:    wordCount,
		Featured:     draft.Featured,
		URL:          Slugify(id),
		RawContent:   raw,
		LastModified: time.Now(),
	}

	return article, nil
}

// extractTitle returns the first level-1 heading, or a title-cased version
// of the draft id when the draft has none.
func (e *Extractor) extractTitle(raw, id string) string {
	for _, line := range strings.Split(raw, "\n") {
		if m := headingRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return e.titleCaser.String(strings.ReplaceAll(id, "-", " "))
}

// extractDescription degrades through: first fully bolded line, first plain
// prose line, then a synthesized sentence referencing the keyword.
func (e *Extractor) extractDescription(raw, keyword string) string {
	description := ""

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if m := boldLineRe.FindStringSubmatch(trimmed); m != nil {
			description = m[1]
			break
		}
	}

	if description == "" {
		for _, line := range strings.Split(raw, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || isBlockLine(trimmed) {
				continue
			}
			description = trimmed
			break
		}
	}

	description = strings.ReplaceAll(description, "**", "")
	description = strings.ReplaceAll(description, "*", "")
	description = strings.TrimSpace(description)

	if description == "" {
		return fmt.Sprintf("Comprehensive guide for %s", keyword)
	}

	return truncate(description, maxDescriptionLength)
}

// matchCategory scans the ordered rule list against the draft id, first
// match wins. Rule ordering is preserved as configured.
func (e *Extractor) matchCategory(id string) string {
	haystack := strings.ToLower(id)
	for _, rule := range e.categories {
		for _, keyword := range rule.Keywords {
			if strings.Contains(haystack, strings.ToLower(keyword)) {
				return rule.Name
			}
		}
	}
	return config.DefaultCategory
}

// Slugify converts a draft identifier into its route path: lower-cased, any
// run of non-alphanumeric characters collapsed to a single hyphen.
func Slugify(id string) string {
	slug := nonSlugRe.ReplaceAllString(strings.ToLower(id), "-")
	slug = strings.Trim(slug, "-")
	return "/" + slug
}

func isBlockLine(line string) bool {
	return strings.HasPrefix(line, "#") ||
		strings.HasPrefix(line, "-") ||
		strings.HasPrefix(line, "*") ||
		strings.HasPrefix(line, ">") ||
		strings.HasPrefix(line, "|")
}

func readMinutes(wordCount int) int {
	return (wordCount + wordsPerMinute - 1) / wordsPerMinute
}

// truncate shortens s to at most limit characters, ellipsis included.
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-3]) + "..."
}
