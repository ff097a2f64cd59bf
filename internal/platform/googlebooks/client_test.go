package googlebooks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	// High rps and zero retries keep tests fast.
	return NewClient(baseURL, "test-key", 1000, 0)
}

func TestClient_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("encodes all query parameters", func(t *testing.T) {
		var got map[string]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			got = map[string]string{
				"q":            q.Get("q"),
				"printType":    q.Get("printType"),
				"maxResults":   q.Get("maxResults"),
				"langRestrict": q.Get("langRestrict"),
				"key":          q.Get("key"),
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"totalItems":0}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).Search(ctx, "잔잔한 에세이 & more", SearchOptions{
			MaxResults:   6,
			LangRestrict: "ko",
		})
		require.NoError(t, err)

		assert.Equal(t, "잔잔한 에세이 & more", got["q"])
		assert.Equal(t, "books", got["printType"])
		assert.Equal(t, "6", got["maxResults"])
		assert.Equal(t, "ko", got["langRestrict"])
		assert.Equal(t, "test-key", got["key"])
	})

	t.Run("decodes items", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"totalItems": 1,
				"items": [{
					"id": "abc123",
					"volumeInfo": {
						"title": "어떤 책",
						"authors": ["김작가"],
						"imageLinks": {"thumbnail": "http://img/t.jpg"},
						"pageCount": 320
					}
				}]
			}`))
		}))
		defer server.Close()

		res, err := newTestClient(server.URL).Search(ctx, "어떤 책", SearchOptions{})
		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "abc123", res.Items[0].ID)
		assert.Equal(t, "어떤 책", res.Items[0].VolumeInfo.Title)
		assert.Equal(t, []string{"김작가"}, res.Items[0].VolumeInfo.Authors)
		assert.Equal(t, 320, res.Items[0].VolumeInfo.PageCount)
	})

	t.Run("non-success status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).Search(ctx, "anything", SearchOptions{})
		assert.Error(t, err)
	})
}

func TestClient_GetVolume(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/volumes/abc123", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"abc123","volumeInfo":{"title":"어떤 책"}}`))
		}))
		defer server.Close()

		v, err := newTestClient(server.URL).GetVolume(ctx, "abc123")
		require.NoError(t, err)
		assert.Equal(t, "abc123", v.ID)
		assert.Equal(t, "어떤 책", v.VolumeInfo.Title)
	})

	t.Run("404 maps to ErrNotFound", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).GetVolume(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
