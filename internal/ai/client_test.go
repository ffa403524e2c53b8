package ai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	return NewClient(Config{
		APIKey:         "test-key",
		BaseURL:        baseURL,
		Model:          "gpt-4o-mini",
		RequestTimeout: 5 * time.Second,
		MaxInputChars:  100,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func completionReply(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(b)
}

func TestExtractFromTextHappyPath(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_, _ = w.Write([]byte(completionReply(
			`{"policy":{"policy_number":"AXA-001","insurer_name":"AXA"},` +
				`"contractor":{"first_name":"Ana","last_name":"García"}}`,
		)))
	}))
	defer srv.Close()

	ex, err := testClient(t, srv.URL).ExtractFromText(context.Background(), "texto de la póliza")
	require.NoError(t, err)
	assert.Equal(t, "AXA-001", ex.Policy.PolicyNumber)
	assert.Equal(t, "Ana", ex.Contractor.FirstName)
	assert.Equal(t, "gpt-4o-mini", gotBody["model"])
}

func TestExtractFromTextCapsInput(t *testing.T) {
	var userContent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Messages, 2)
		userContent = body.Messages[1].Content
		_, _ = w.Write([]byte(completionReply(`{}`)))
	}))
	defer srv.Close()

	long := strings.Repeat("a", 10_000)
	_, err := testClient(t, srv.URL).ExtractFromText(context.Background(), long)
	require.NoError(t, err)
	// MaxInputChars=100: the document excerpt inside the prompt is capped.
	assert.NotContains(t, userContent, strings.Repeat("a", 101))
}

func TestExtractFromTextProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := testClient(t, srv.URL).ExtractFromText(context.Background(), "texto")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExtractionFailed))
}

func TestExtractFromTextEmptyCompletion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := testClient(t, srv.URL).ExtractFromText(context.Background(), "texto")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExtractionFailed))
}

func TestUploadFileReturnsHandle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/files", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1 << 20))
		assert.Equal(t, "user_data", r.FormValue("purpose"))
		_, _ = w.Write([]byte(`{"id":"file-abc"}`))
	}))
	defer srv.Close()

	dir := t.TempDir()
	path := dir + "/doc.pdf"
	require.NoError(t, writeFile(path, "%PDF-1.4 contenido"))

	id, err := testClient(t, srv.URL).UploadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "file-abc", id)
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
