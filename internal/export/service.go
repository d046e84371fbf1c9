package export

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BlobStore persists rendered export artifacts and returns a
// retrievable URL. Failures propagate as-is; the engine never retries
// (retry policy, if any, belongs to the caller).
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (url string, err error)
}

// Service is the export dispatcher. It holds no state across calls:
// every invocation is a pure in-memory transform followed by exactly
// one blocking storage write.
type Service struct {
	blobs BlobStore
	now   func() time.Time
	newID func() string
}

// NewService creates an export dispatcher backed by the given blob
// store.
func NewService(blobs BlobStore) *Service {
	return &Service{
		blobs: blobs,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Export renders the canonical model in the requested format, persists
// the payload, and returns the result descriptor.
//
// The payload is a deterministic function of the request except for two
// intentional fields: the unique id embedded in the storage key, which
// keeps concurrent exports of identical inputs from colliding, and the
// export timestamp embedded by the component-graph and node-document
// adapters.
func (s *Service) Export(ctx context.Context, req Request) (*ExportResult, error) {
	if _, ok := ParseFormat(string(req.Format)); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, req.Format)
	}

	tokens := req.Tokens.Normalized()

	var (
		data        []byte
		contentType string
		ext         string
		err         error
	)
	switch req.Format {
	case FormatFramer:
		data, err = marshalPayload(buildComponentGraph(req.ProjectName, req.Components, tokens, s.now()))
		contentType, ext = "application/json", "json"
	case FormatFigma:
		data, err = marshalPayload(buildNodeDocument(req.ProjectName, req.Components, tokens, s.now()))
		contentType, ext = "application/json", "json"
	case FormatWebflow:
		data, err = marshalPayload(buildCMSPage(req.ProjectName, req.Components, tokens))
		contentType, ext = "application/json", "json"
	case FormatHTML:
		data = []byte(RenderMarkup(req.ProjectName, req.Components, tokens))
		contentType, ext = "text/html", "html"
	}
	if err != nil {
		return nil, &Error{Format: req.Format, Err: err}
	}

	id := s.newID()
	pathName := req.ProjectName
	if strings.TrimSpace(pathName) == "" {
		pathName = id
	}
	key := fmt.Sprintf("exports/%s/%s-%s.%s", pathName, req.Format, id, ext)

	url, err := s.blobs.Put(ctx, key, data, contentType)
	if err != nil {
		return nil, &Error{Format: req.Format, Err: err}
	}

	fileName := pathName + "-" + string(req.Format) + ".json"
	if req.Format == FormatHTML {
		fileName = pathName + ".html"
	}

	return &ExportResult{
		URL:      url,
		FileKey:  key,
		Format:   req.Format,
		FileName: fileName,
	}, nil
}

func marshalPayload(payload any) ([]byte, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return data, nil
}
