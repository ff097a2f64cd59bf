package book

import (
	"context"

	"bookcurator/internal/platform/googlebooks"
)

// VolumesClient is the slice of the Google Books client this package uses.
type VolumesClient interface {
	Search(ctx context.Context, query string, opts googlebooks.SearchOptions) (*googlebooks.VolumesResponse, error)
	GetVolume(ctx context.Context, id string) (*googlebooks.Volume, error)
}
