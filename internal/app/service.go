package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"pagecraft/api/internal/config"
	"pagecraft/api/internal/design"
	"pagecraft/api/internal/export"
	"pagecraft/api/internal/preview"
	"pagecraft/api/internal/recent"
	"pagecraft/api/internal/search"
	"pagecraft/api/internal/store"
)

// Service orchestrates the export engine and its side channels. The
// engine result is the source of truth; history, recency, and search
// indexing are best-effort and never fail an export.
type Service struct {
	cfg     config.Config
	exports *export.Service
	history *store.PostgresStore // may be nil in tests
	recent  *recent.Store        // may be nil if Redis is not configured
	search  *search.Service      // may be nil in tests
}

// New wires the application service.
func New(cfg config.Config, exports *export.Service, history *store.PostgresStore, recentStore *recent.Store, searchService *search.Service) *Service {
	return &Service{
		cfg:     cfg,
		exports: exports,
		history: history,
		recent:  recentStore,
		search:  searchService,
	}
}

// Export runs one export and records it in the side channels.
func (s *Service) Export(ctx context.Context, req export.Request) (*export.ExportResult, error) {
	result, err := s.exports.Export(ctx, req)
	if err != nil {
		if errors.Is(err, export.ErrUnknownFormat) {
			return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "format must be one of framer, figma, webflow, html", nil)
		}
		var exportErr *export.Error
		if errors.As(err, &exportErr) {
			return nil, domainError(http.StatusInternalServerError, "EXPORT_FAILED", "Export failed", map[string]any{"format": exportErr.Format})
		}
		return nil, err
	}

	now := time.Now().UTC()
	rec := store.ExportRecord{
		ID:          uuid.NewString(),
		ProjectName: req.ProjectName,
		Format:      string(result.Format),
		FileKey:     result.FileKey,
		URL:         result.URL,
		FileName:    result.FileName,
		CreatedAt:   now,
	}

	if s.history != nil {
		if err := s.history.InsertExport(ctx, rec); err != nil {
			log.Printf("app: record export history: %v", err)
		}
	}
	if s.recent != nil {
		entry := recent.Entry{
			URL:       result.URL,
			FileKey:   result.FileKey,
			Format:    string(result.Format),
			FileName:  result.FileName,
			CreatedAt: now,
		}
		if err := s.recent.Push(ctx, req.ProjectName, entry); err != nil {
			log.Printf("app: push recent export: %v", err)
		}
	}
	if s.search != nil {
		s.search.IndexExport(search.Record{
			ID:          rec.ID,
			ProjectName: rec.ProjectName,
			Format:      rec.Format,
			FileName:    rec.FileName,
			URL:         rec.URL,
			CreatedAt:   now.Format(time.RFC3339),
		})
	}

	return result, nil
}

// RecentExports lists the latest export descriptors for a project.
func (s *Service) RecentExports(ctx context.Context, project string) ([]recent.Entry, error) {
	if s.recent == nil {
		return nil, domainError(http.StatusServiceUnavailable, "RECENT_UNAVAILABLE", "Recent exports are not configured", nil)
	}
	entries, err := s.recent.List(ctx, project)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// SearchExports searches export history.
func (s *Service) SearchExports(q search.Query) search.Response {
	if s.search == nil {
		return search.Response{Results: []search.Record{}, Query: q.Text}
	}
	return s.search.Search(q)
}

// Preview renders the design's markup output to a PDF proof.
func (s *Service) Preview(ctx context.Context, projectName string, components []design.Component, tokens design.Tokens) ([]byte, string, error) {
	html := export.RenderMarkup(projectName, components, tokens.Normalized())
	pdf, err := preview.RenderPDF(ctx, html)
	if err != nil {
		if errors.Is(err, preview.ErrChromeUnavailable) {
			return nil, "", domainError(http.StatusServiceUnavailable, "PREVIEW_UNAVAILABLE", "PDF preview is not available on this host", nil)
		}
		return nil, "", domainError(http.StatusInternalServerError, "PREVIEW_FAILED", "Preview rendering failed", nil)
	}
	return pdf, preview.FileName(projectName), nil
}

// Ping checks the history database.
func (s *Service) Ping(ctx context.Context) error {
	if s.history == nil {
		return nil
	}
	return s.history.Ping(ctx)
}

// PingRecent checks the recent-exports store, if configured.
func (s *Service) PingRecent(ctx context.Context) error {
	if s.recent == nil {
		return nil
	}
	return s.recent.Ping(ctx)
}
