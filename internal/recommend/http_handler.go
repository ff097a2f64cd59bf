package recommend

import (
	"encoding/json"
	"log"
	"net/http"

	"bookcurator/internal/book"
	"bookcurator/internal/httpx"
)

const (
	msgInvalidInput  = "찾고 싶은 책에 대해 먼저 말씀해 주세요."
	msgMisconfigured = "OPENAI_API_KEY가 서버에 설정되어 있지 않습니다."
	msgFailed        = "추천 과정에서 문제가 발생했어요. 다시 시도해 주세요."
)

type chatRequest struct {
	Message string `json:"message" validate:"required,notblank"`
}

type chatResponse struct {
	Response string      `json:"response"`
	Books    []book.Book `json:"books"`
}

type chatError struct {
	Error string `json:"error"`
}

type HTTPHandler struct {
	svc           *Service
	completionKey string
}

// NewHTTPHandler wires the chat endpoint. completionKey is the completion
// service credential; when empty every request fails with a configuration
// error before any outbound call.
func NewHTTPHandler(svc *Service, completionKey string) *HTTPHandler {
	return &HTTPHandler{svc: svc, completionKey: completionKey}
}

// Chat handles POST /api/chat
// @Summary Chat book recommendation
// @Description Forward a user message through catalog lookup and the completion service
// @Tags chat
// @Accept json
// @Produce json
// @Param body body chatRequest true "User message"
// @Success 200 {object} chatResponse
// @Failure 400 {object} chatError
// @Failure 500 {object} chatError
// @Router /api/chat [post]
func (h *HTTPHandler) Chat(w http.ResponseWriter, r *http.Request) {
	// Checked before reading the body: a missing credential is a deployment
	// problem, not a request problem.
	if h.completionKey == "" {
		httpx.JSON(w, http.StatusInternalServerError, chatError{Error: msgMisconfigured})
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSON(w, http.StatusBadRequest, chatError{Error: msgInvalidInput})
		return
	}
	if err := validate.Struct(req); err != nil {
		httpx.JSON(w, http.StatusBadRequest, chatError{Error: msgInvalidInput})
		return
	}

	result, err := h.svc.Recommend(r.Context(), req.Message)
	if err != nil {
		// Internal detail stays in the log; the client gets a generic notice.
		log.Printf("chat recommendation failed: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
		httpx.JSON(w, http.StatusInternalServerError, chatError{Error: msgFailed})
		return
	}

	httpx.JSON(w, http.StatusOK, chatResponse{
		Response: result.Text,
		Books:    result.Books,
	})
}
