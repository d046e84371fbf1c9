package search

import "log"

// Service is the facade that tries Meilisearch first and falls back to
// the history table.
type Service struct {
	meili    *Meili
	fallback Searcher
}

// NewService creates a search service. meili may be nil if Meilisearch
// is not configured.
func NewService(meili *Meili, fallback Searcher) *Service {
	return &Service{meili: meili, fallback: fallback}
}

// Search tries Meilisearch if healthy, otherwise uses the fallback.
func (s *Service) Search(q Query) Response {
	if s.meili != nil && s.meili.Healthy() {
		results, total, err := s.meili.Search(q)
		if err == nil {
			return Response{Results: nonNil(results), Total: total, Query: q.Text}
		}
		log.Printf("search: meilisearch error, falling back to history table: %v", err)
	}

	if s.fallback == nil {
		return Response{Results: []Record{}, Query: q.Text}
	}
	results, total, err := s.fallback.Search(q)
	if err != nil {
		log.Printf("search: fallback error: %v", err)
		return Response{Results: []Record{}, Query: q.Text}
	}
	return Response{Results: nonNil(results), Total: total, Query: q.Text}
}

// IndexExport pushes one export into Meilisearch, fire-and-forget. The
// history table is the source of truth; index loss is recoverable.
func (s *Service) IndexExport(rec Record) {
	if s.meili == nil || !s.meili.Healthy() {
		return
	}
	go func() {
		if err := s.meili.IndexExport(rec); err != nil {
			log.Printf("search: index export %s: %v", rec.ID, err)
		}
	}()
}

func nonNil(r []Record) []Record {
	if r == nil {
		return []Record{}
	}
	return r
}
