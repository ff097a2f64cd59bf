package book

import (
	"context"
	"errors"
	"log"

	"bookcurator/internal/platform/googlebooks"
)

// ErrNotFound is returned by Get when the catalog has no volume for the id.
var ErrNotFound = errors.New("book not found")

type SearchOptions struct {
	MaxResults int
	Language   string
}

type Service struct {
	client VolumesClient
}

func NewService(client VolumesClient) *Service {
	return &Service{client: client}
}

// Search queries the catalog and normalizes each result. Catalog failures
// (non-success status, transport error, malformed payload) degrade to an
// empty result set so callers can proceed with zero candidates; the failure
// is logged here and never propagated.
func (s *Service) Search(ctx context.Context, query string, opts SearchOptions) []Book {
	res, err := s.client.Search(ctx, query, googlebooks.SearchOptions{
		MaxResults:   opts.MaxResults,
		LangRestrict: opts.Language,
	})
	if err != nil {
		log.Printf("catalog search failed: query=%q error=%v", query, err)
		return []Book{}
	}

	books := make([]Book, 0, len(res.Items))
	for _, item := range res.Items {
		books = append(books, FromVolume(item))
	}
	return books
}

// Get fetches a single volume. A missing volume is a distinct ErrNotFound,
// not a degraded empty result.
func (s *Service) Get(ctx context.Context, id string) (Book, error) {
	v, err := s.client.GetVolume(ctx, id)
	if err != nil {
		if errors.Is(err, googlebooks.ErrNotFound) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return FromVolume(*v), nil
}
