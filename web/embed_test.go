package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	handler := Handler()

	tests := []struct {
		name     string
		path     string
		status   int
		contains string
	}{
		{"home", "/", http.StatusOK, "나만의 도서 관리 서비스"},
		{"search page", "/search", http.StatusOK, "도서 검색"},
		{"chat page", "/chat", http.StatusOK, "AI 도서 추천 챗봇"},
		{"book detail page", "/books/abc123", http.StatusOK, "검색 결과로 돌아가기"},
		{"stylesheet", "/style.css", http.StatusOK, "chat-log"},
		{"unknown path", "/nope", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.status, w.Code)
			if tt.contains != "" {
				assert.Contains(t, w.Body.String(), tt.contains)
			}
		})
	}
}
