package content

import (
	"errors"
	"strings"

	"go.uber.org/zap"
)

// ErrNotFound is returned by Index.BySlug for slugs with no matching
// project. Absence is an expected outcome, not a failure: the handler
// renders a not-found page.
var ErrNotFound = errors.New("content: project not found")

// Index is a derived lookup over the store's project list, keyed by slug.
// Built once after load; read-only afterwards.
type Index struct {
	slugs  []string
	bySlug map[string]*Project
}

// NewIndex builds the slug index. Projects whose slug is empty after
// trimming are kept in the store but excluded from the index. When two
// projects share a slug the first one wins; duplicates are logged as a
// data-integrity warning.
func NewIndex(projects []Project, log *zap.Logger) *Index {
	if log == nil {
		log = zap.NewNop()
	}
	idx := &Index{bySlug: make(map[string]*Project, len(projects))}
	for i := range projects {
		p := &projects[i]
		if strings.TrimSpace(p.Slug) == "" {
			continue
		}
		if _, dup := idx.bySlug[p.Slug]; dup {
			log.Warn("duplicate project slug, keeping first",
				zap.String("slug", p.Slug))
			continue
		}
		idx.bySlug[p.Slug] = p
		idx.slugs = append(idx.slugs, p.Slug)
	}
	return idx
}

// AllSlugs returns every indexed slug in source order. Used to enumerate
// the full set of case-study paths for pre-rendering and the sitemap.
func (idx *Index) AllSlugs() []string {
	out := make([]string, len(idx.slugs))
	copy(out, idx.slugs)
	return out
}

// BySlug looks up a project by exact slug match. No normalization, no
// case folding. Returns ErrNotFound when absent.
func (idx *Index) BySlug(slug string) (*Project, error) {
	p, ok := idx.bySlug[slug]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}
