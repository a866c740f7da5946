package service

import (
	"strings"

	"github.com/aliskhannn/knowledge-vault-bot/internal/domain/entities"
)

// MatchType tells which field of an entry matched a search query.
type MatchType int

const (
	MatchTitle MatchType = iota
	MatchDefinition
	MatchRelatedTerm
)

func (m MatchType) String() string {
	switch m {
	case MatchTitle:
		return "title"
	case MatchDefinition:
		return "definition"
	case MatchRelatedTerm:
		return "related term"
	default:
		return "unknown"
	}
}

// SearchResult is a catalog entry matched by a query.
type SearchResult struct {
	Item  entities.CatalogItem
	Match MatchType
}

// SearchService answers free-text and category lookups over the catalog.
type SearchService struct {
	catalog Catalog
}

func NewSearchService(catalog Catalog) *SearchService {
	return &SearchService{catalog: catalog}
}

// Search matches query case-insensitively against title, definition and related terms.
// Each entry appears once, tagged with the first field that matched. An empty query has no results.
func (s *SearchService) Search(query string) []SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var results []SearchResult
	for _, item := range s.catalog.All() {
		switch {
		case strings.Contains(strings.ToLower(item.Title), q):
			results = append(results, SearchResult{Item: item, Match: MatchTitle})
		case strings.Contains(strings.ToLower(item.Definition), q):
			results = append(results, SearchResult{Item: item, Match: MatchDefinition})
		case containsFold(item.RelatedTerms, q):
			results = append(results, SearchResult{Item: item, Match: MatchRelatedTerm})
		}
	}

	return results
}

func (s *SearchService) ByCategory(category entities.Category) []entities.CatalogItem {
	return s.catalog.ByCategory(category)
}

// Related returns other entries of the same category or whose title or related terms
// mention one of the item's related terms. limit <= 0 means no limit.
func (s *SearchService) Related(item entities.CatalogItem, limit int) []entities.CatalogItem {
	var related []entities.CatalogItem
	for _, other := range s.catalog.All() {
		if other.ID == item.ID {
			continue
		}
		if other.Category == item.Category || mentionsAny(other, item.RelatedTerms) {
			related = append(related, other)
			if limit > 0 && len(related) == limit {
				break
			}
		}
	}
	return related
}

func mentionsAny(item entities.CatalogItem, terms []string) bool {
	title := strings.ToLower(item.Title)
	for _, term := range terms {
		t := strings.ToLower(term)
		if t == "" {
			continue
		}
		if strings.Contains(title, t) || containsFold(item.RelatedTerms, t) {
			return true
		}
	}
	return false
}

// containsFold reports whether any of values contains the lower-cased substring q.
func containsFold(values []string, q string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}
