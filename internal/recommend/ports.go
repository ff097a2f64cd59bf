package recommend

import (
	"context"

	"bookcurator/internal/book"
)

// BookSearcher surfaces candidate books for a query. Implementations degrade
// to an empty slice on catalog failure rather than returning an error.
type BookSearcher interface {
	Search(ctx context.Context, query string, opts book.SearchOptions) []book.Book
}

// CompletionClient invokes the text-completion service with a system and a
// user message and returns the trimmed output text.
type CompletionClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
}
