package book

import (
	"bookcurator/internal/platform/googlebooks"
)

const (
	// Shown when the catalog has no title for a volume.
	DefaultTitle = "제목 미상"

	// PlaceholderThumbnail is used when a volume carries no cover image.
	PlaceholderThumbnail = "https://books.google.com/googlebooks/images/no_cover_thumb.gif"
)

// Book is a normalized catalog record. It is constructed once from an API
// response and never persisted.
type Book struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Description   string   `json:"description"`
	Categories    []string `json:"categories"`
	Thumbnail     string   `json:"thumbnail"`
	InfoLink      string   `json:"infoLink"`
	Publisher     string   `json:"publisher,omitempty"`
	PublishedDate string   `json:"publishedDate"`
	PageCount     *int     `json:"pageCount"`
}

// FromVolume normalizes a raw volumes-API item. Every field goes through an
// explicit fallback chain so a partial upstream record still yields a usable
// Book: the thumbnail is never empty and authors/categories are never nil.
func FromVolume(v googlebooks.Volume) Book {
	info := v.VolumeInfo
	return Book{
		ID:            v.ID,
		Title:         firstNonEmpty(DefaultTitle, info.Title),
		Authors:       orEmptySlice(info.Authors),
		Description:   info.Description,
		Categories:    orEmptySlice(info.Categories),
		Thumbnail:     firstNonEmpty(PlaceholderThumbnail, info.ImageLinks.Thumbnail, info.ImageLinks.SmallThumbnail),
		InfoLink:      firstNonEmpty("", info.InfoLink, info.PreviewLink),
		Publisher:     info.Publisher,
		PublishedDate: info.PublishedDate,
		PageCount:     optionalCount(info.PageCount),
	}
}

// firstNonEmpty returns the first non-empty candidate, or the fallback.
func firstNonEmpty(fallback string, candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return fallback
}

func orEmptySlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func optionalCount(n int) *int {
	if n <= 0 {
		return nil
	}
	return &n
}
