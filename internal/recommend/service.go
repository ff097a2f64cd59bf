package recommend

import (
	"context"
	"fmt"
	"strings"

	"bookcurator/internal/book"
)

const (
	searchMaxResults = 6
	searchLanguage   = "ko"

	// Substituted when the completion service yields no text.
	fallbackNotice = "추천 응답을 생성하지 못했어요. 잠시 후 다시 시도해 주세요."
)

type Result struct {
	Text  string
	Books []book.Book
}

type Service struct {
	books      BookSearcher
	completion CompletionClient
}

func NewService(books BookSearcher, completion CompletionClient) *Service {
	return &Service{books: books, completion: completion}
}

// Recommend runs the chat pipeline: normalize the message into a catalog
// query, fetch candidates (a catalog failure just means zero candidates),
// then ask the completion service for a recommendation grounded on them.
// The two outbound calls are strictly sequential; the prompt depends on the
// catalog result.
func (s *Service) Recommend(ctx context.Context, message string) (Result, error) {
	query := NormalizeQuery(message)
	candidates := s.books.Search(ctx, query, book.SearchOptions{
		MaxResults: searchMaxResults,
		Language:   searchLanguage,
	})

	system, user := BuildPrompt(message, candidates)
	text, err := s.completion.Complete(ctx, system, user)
	if err != nil {
		return Result{}, fmt.Errorf("completion call: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		text = fallbackNotice
	}
	return Result{Text: text, Books: candidates}, nil
}
