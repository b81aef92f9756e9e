package content

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	// ProductPagesBucket holds drafts published as featured product pages.
	ProductPagesBucket = "product-pages"
	// BlogPostsBucket holds regular blog post drafts.
	BlogPostsBucket = "blog-posts"

	draftExtension = ".md"
)

var ErrContentSourceMissing = errors.New("content factory root does not exist")

// Scanner discovers markdown drafts in the content factory directory tree.
type Scanner struct {
	contentDir string
}

func NewScanner(contentDir string) *Scanner {
	return &Scanner{contentDir: contentDir}
}

// Run enumerates the two known draft buckets and returns the discovered
// drafts plus a per-bucket count for reporting. A missing bucket is skipped
// with a warning; only a missing content root is an error.
func (s *Scanner) Run() ([]Draft, map[string]int, error) {
	if _, err := os.Stat(s.contentDir); os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("%w: %s", ErrContentSourceMissing, s.contentDir)
	}

	buckets := []struct {
		name     string
		featured bool
	}{
		{ProductPagesBucket, true},
		{BlogPostsBucket, false},
	}

	counts := make(map[string]int)
	var drafts []Draft

	for _, bucket := range buckets {
		dir := filepath.Join(s.contentDir, bucket.name)
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			slog.Warn("Draft bucket missing, skipping", "dir", dir)
			continue
		}

		// Glob returns paths in lexical order, keeping runs deterministic
		files, err := filepath.Glob(filepath.Join(dir, "*"+draftExtension))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list drafts in %s: %w", dir, err)
		}

		for _, file := range files {
			drafts = append(drafts, Draft{Path: file, Featured: bucket.featured})
		}
		counts[bucket.name] = len(files)

		slog.Debug("Bucket scanned", "bucket", bucket.name, "drafts", len(files))
	}

	return drafts, counts, nil
}
