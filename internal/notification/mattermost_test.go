package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMattermostClient_Post(t *testing.T) {
	t.Run("attachment with color", func(t *testing.T) {
		var got mattermostPost
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v4/posts", r.URL.Path)
			assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusCreated)
		}))
		defer srv.Close()

		err := NewMattermostClient(srv.URL, "token-1").Post(context.Background(), "chan-1", "hello", colorApproved)

		require.NoError(t, err)
		assert.Equal(t, "chan-1", got.ChannelID)
		assert.Empty(t, got.Message)
		require.Len(t, got.Props.Attachments, 1)
		assert.Equal(t, "hello", got.Props.Attachments[0].Text)
		assert.Equal(t, colorApproved, got.Props.Attachments[0].Color)
	})

	t.Run("plain message", func(t *testing.T) {
		var got mattermostPost
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		}))
		defer srv.Close()

		require.NoError(t, NewMattermostClient(srv.URL, "t").Post(context.Background(), "chan-1", "hi", ""))
		assert.Equal(t, "hi", got.Message)
	})

	t.Run("api error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"id":"api.context.permissions.app_error"}`))
		}))
		defer srv.Close()

		err := NewMattermostClient(srv.URL, "t").Post(context.Background(), "chan-1", "hi", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "403")
	})
}
