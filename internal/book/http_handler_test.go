package book

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookcurator/internal/platform/googlebooks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHTTPHandler_Search(t *testing.T) {
	t.Run("missing query is rejected", func(t *testing.T) {
		client := new(mockVolumesClient)
		handler := NewHTTPHandler(NewService(client))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/books/search", nil)

		handler.Search(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		client.AssertNotCalled(t, "Search")
	})

	t.Run("success with results", func(t *testing.T) {
		client := new(mockVolumesClient)
		client.On("Search", mock.Anything, "한강", mock.Anything).Return(&googlebooks.VolumesResponse{
			Items: []googlebooks.Volume{{ID: "a", VolumeInfo: googlebooks.VolumeInfo{Title: "소년이 온다"}}},
		}, nil)
		handler := NewHTTPHandler(NewService(client))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/books/search?q=%ED%95%9C%EA%B0%95", nil)

		handler.Search(w, r)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success bool   `json:"success"`
			Data    []Book `json:"data"`
			Meta    struct {
				Query string `json:"query"`
				Count int    `json:"count"`
			} `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "소년이 온다", resp.Data[0].Title)
		assert.Equal(t, "한강", resp.Meta.Query)
		assert.Equal(t, 1, resp.Meta.Count)
	})

	t.Run("catalog failure still returns 200 with empty list", func(t *testing.T) {
		client := new(mockVolumesClient)
		client.On("Search", mock.Anything, "q", mock.Anything).Return(nil, assert.AnError)
		handler := NewHTTPHandler(NewService(client))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/books/search?q=q", nil)

		handler.Search(w, r)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data []Book `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Empty(t, resp.Data)
	})
}

func TestHTTPHandler_Get(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := new(mockVolumesClient)
		client.On("GetVolume", mock.Anything, "vol-1").Return(&googlebooks.Volume{
			ID:         "vol-1",
			VolumeInfo: googlebooks.VolumeInfo{Title: "어떤 책"},
		}, nil)
		handler := NewHTTPHandler(NewService(client))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/books/vol-1", nil)
		r.SetPathValue("id", "vol-1")

		handler.Get(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing volume is 404", func(t *testing.T) {
		client := new(mockVolumesClient)
		client.On("GetVolume", mock.Anything, "missing").Return(nil, googlebooks.ErrNotFound)
		handler := NewHTTPHandler(NewService(client))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/books/missing", nil)
		r.SetPathValue("id", "missing")

		handler.Get(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "요청하신 도서를 찾을 수 없습니다.")
	})

	t.Run("upstream failure is 500", func(t *testing.T) {
		client := new(mockVolumesClient)
		client.On("GetVolume", mock.Anything, "vol-1").Return(nil, assert.AnError)
		handler := NewHTTPHandler(NewService(client))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/books/vol-1", nil)
		r.SetPathValue("id", "vol-1")

		handler.Get(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
