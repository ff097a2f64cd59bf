package recommend

import (
	"fmt"
	"strings"

	"bookcurator/internal/book"
)

const systemPrompt = `당신은 한국어 도서 큐레이션 어시스턴트입니다.
사용자의 취향/분위기/목적을 파악하고 2~3권의 책을 추천하세요.
각 책의 핵심 분위기, 줄거리, 어울리는 독자 유형을 짧게 설명하고 따뜻한 톤을 유지하세요.`

const (
	defaultQuery      = "bestseller"
	maxQueryLen       = 180
	maxCandidates     = 3
	maxSnippetDescLen = 160

	noAuthorMarker    = "저자 미상"
	noCandidateMarker = "현재 참고할 도서 데이터가 없습니다. 일반적인 추천을 생성하세요."
)

// NormalizeQuery turns a raw user utterance into a catalog query: trimmed,
// internal whitespace runs collapsed to single spaces, capped at 180
// characters. An empty result falls back to a fixed default query.
func NormalizeQuery(raw string) string {
	q := strings.Join(strings.Fields(raw), " ")
	q = truncateRunes(q, maxQueryLen)
	if q == "" {
		return defaultQuery
	}
	return q
}

// BuildPrompt assembles the two-message prompt for the completion service:
// the fixed curator persona plus a user block carrying the raw utterance and
// up to three one-line candidate snippets. With no candidates the block
// carries an explicit marker asking for a general recommendation instead.
func BuildPrompt(userMessage string, candidates []book.Book) (system, user string) {
	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}

	snippets := make([]string, 0, len(candidates))
	for i, b := range candidates {
		authors := noAuthorMarker
		if len(b.Authors) > 0 {
			authors = strings.Join(b.Authors, ", ")
		}
		snippets = append(snippets, fmt.Sprintf("%d. %s (%s) - %s",
			i+1, b.Title, authors, truncateRunes(b.Description, maxSnippetDescLen)))
	}

	parts := []string{"사용자 요청: " + userMessage}
	if len(snippets) > 0 {
		parts = append(parts, "참고 가능한 후보 도서:\n"+strings.Join(snippets, "\n"))
	} else {
		parts = append(parts, noCandidateMarker)
	}

	return systemPrompt, strings.Join(parts, "\n\n")
}

// truncateRunes caps s at n characters, not bytes. Korean text would be
// mangled by a byte slice.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
