package book

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"bookcurator/internal/httpx"
)

const (
	defaultSearchResults = 10
	maxSearchResults     = 40 // volumes API ceiling
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// Search handles GET /api/books/search
// @Summary Search the book catalog
// @Description Search Google Books volumes by free-text query
// @Tags books
// @Produce json
// @Param q query string true "Search query"
// @Param max_results query int false "Result cap" default(10)
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /api/books/search [get]
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "검색어를 입력해 주세요.", nil)
		return
	}

	maxResults, _ := strconv.Atoi(r.URL.Query().Get("max_results"))
	if maxResults <= 0 || maxResults > maxSearchResults {
		maxResults = defaultSearchResults
	}

	books := h.svc.Search(r.Context(), query, SearchOptions{MaxResults: maxResults})

	httpx.JSONSuccess(w, books, map[string]any{
		"query": query,
		"count": len(books),
	})
}

// Get handles GET /api/books/{id}
// @Summary Get a single book
// @Description Retrieve volume details by Google Books volume id
// @Tags books
// @Produce json
// @Param id path string true "Volume id"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /api/books/{id} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "도서 id가 필요합니다.", nil)
		return
	}

	b, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "요청하신 도서를 찾을 수 없습니다.", nil)
			return
		}
		log.Printf("book detail fetch failed: id=%s error=%v", id, err)
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "도서 정보를 불러오지 못했어요.", nil)
		return
	}

	httpx.JSONSuccess(w, b, nil)
}
