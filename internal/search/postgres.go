package search

import (
	"context"
	"time"

	"pagecraft/api/internal/store"
)

// Postgres implements Searcher against the export-history table. It is
// the fallback when Meilisearch is unavailable.
type Postgres struct {
	history *store.PostgresStore
}

// NewPostgres creates the history-table searcher.
func NewPostgres(history *store.PostgresStore) *Postgres {
	return &Postgres{history: history}
}

// Healthy always returns true. If Postgres is down, the whole service
// is down.
func (p *Postgres) Healthy() bool {
	return true
}

// Search runs a case-insensitive substring match over project and file
// names.
func (p *Postgres) Search(q Query) ([]Record, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	records, err := p.history.SearchExports(ctx, q.Text, q.Format, q.Limit, q.Offset)
	if err != nil {
		return nil, 0, err
	}

	results := make([]Record, 0, len(records))
	for _, rec := range records {
		results = append(results, Record{
			ID:          rec.ID,
			ProjectName: rec.ProjectName,
			Format:      rec.Format,
			FileName:    rec.FileName,
			URL:         rec.URL,
			CreatedAt:   rec.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return results, len(results), nil
}
