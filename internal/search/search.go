// Package search provides export-history search: Meilisearch when it is
// reachable, with a PostgreSQL fallback so the endpoint keeps working
// when the index is down.
package search

// Record is the data indexed for one export.
type Record struct {
	ID          string `json:"id"`
	ProjectName string `json:"projectName"`
	Format      string `json:"format"`
	FileName    string `json:"fileName"`
	URL         string `json:"url"`
	CreatedAt   string `json:"createdAt"`
}

// Query describes a search request.
type Query struct {
	Text   string
	Format string // empty = all formats
	Limit  int
	Offset int
}

// Response is the envelope returned by the search endpoint.
type Response struct {
	Results []Record `json:"results"`
	Total   int      `json:"total"`
	Query   string   `json:"query"`
}

// Searcher can execute an export-history search.
type Searcher interface {
	Search(q Query) ([]Record, int, error)
	Healthy() bool
}
