package content

// Index is the ordered, write-once collection of all articles processed in
// one run. It is the single source of truth for every downstream generator;
// none of them may mutate it, so concurrent reads need no locking.
type Index struct {
	articles []Article
	byID     map[string]int
}

// NewIndex freezes the extracted articles into an Index. The slice is copied
// so later mutation of the caller's slice cannot reach the Index.
func NewIndex(articles []Article) *Index {
	frozen := make([]Article, len(articles))
	copy(frozen, articles)

	byID := make(map[string]int, len(frozen))
	for i, article := range frozen {
		byID[article.ID] = i
	}

	return &Index{articles: frozen, byID: byID}
}

// Articles returns a copy of the article list in processing order.
func (ix *Index) Articles() []Article {
	out := make([]Article, len(ix.articles))
	copy(out, ix.articles)
	return out
}

// Get looks up an article by its draft id.
func (ix *Index) Get(id string) (Article, bool) {
	i, ok := ix.byID[id]
	if !ok {
		return Article{}, false
	}
	return ix.articles[i], true
}

func (ix *Index) Len() int {
	return len(ix.articles)
}
