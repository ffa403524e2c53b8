package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrExtractionFailed wraps every transport or provider failure. Callers
// treat them all the same way: mark the import failed with the message.
var ErrExtractionFailed = errors.New("extracción fallida")

// Config for the extraction model backend.
type Config struct {
	APIKey         string        // if empty, falls back to env OPENAI_API_KEY
	BaseURL        string        // default https://api.openai.com/v1
	Model          string        // e.g. "gpt-4o-mini"
	Temperature    float32       // 0..2
	RequestTimeout time.Duration // whole-request timeout
	ConnectTimeout time.Duration // dial timeout
	MaxInputChars  int           // text cap before send, default 16000
}

type Client struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 45 * time.Second
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 10 * time.Second
	}
	if cfg.MaxInputChars <= 0 {
		cfg.MaxInputChars = 16000
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Timeout: cfg.RequestTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: cfg.ConnectTimeout}).DialContext,
			},
		},
		log: logger,
	}
}

// ExtractFromText submits document text and returns the normalized
// extraction. Input is trimmed and capped at MaxInputChars to bound cost.
func (c *Client) ExtractFromText(ctx context.Context, text string) (Extraction, error) {
	rid := uuid.New().String()
	start := time.Now()

	text = strings.TrimSpace(text)
	if len(text) > c.cfg.MaxInputChars {
		text = text[:c.cfg.MaxInputChars]
	}

	c.log.Info("ai.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(text),
	)

	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"messages": []map[string]any{
			{"role": "system", "content": buildSystemPrompt()},
			{"role": "user", "content": buildUserPrompt(text)},
		},
	}

	content, err := c.chat(ctx, body)
	if err != nil {
		c.log.Error("ai.extract.failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return Extraction{}, err
	}

	ex, err := ParseResponse(content)
	if err != nil {
		c.log.Error("ai.extract.parse_failed",
			"req_id", rid, "error", err, "content_len", len(content),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return Extraction{}, err
	}

	c.log.Info("ai.extract.ok",
		"req_id", rid,
		"policy_number", ex.Policy.PolicyNumber,
		"insurer", ex.Policy.InsurerName,
		"beneficiaries", len(ex.Beneficiaries),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return ex, nil
}

// UploadFile stores a source document with the provider and returns the
// opaque file handle to reference in a later analysis call.
func (c *Client) UploadFile(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("purpose", "user_data"); err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/files"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	raw, err := c.do(req)
	if err != nil {
		return "", err
	}
	var out struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &out); err != nil || out.ID == "" {
		return "", fmt.Errorf("%w: files endpoint returned no id", ErrExtractionFailed)
	}
	c.log.Info("ai.upload.ok", "file_id", out.ID, "path", filepath.Base(path))
	return out.ID, nil
}

// ExtractFromFiles runs the same extraction over previously uploaded file
// handles, for documents whose text cannot be pulled locally.
func (c *Client) ExtractFromFiles(ctx context.Context, fileIDs []string) (Extraction, error) {
	if len(fileIDs) == 0 {
		return Extraction{}, fmt.Errorf("%w: no file handles", ErrExtractionFailed)
	}

	parts := make([]map[string]any, 0, len(fileIDs)+1)
	for _, id := range fileIDs {
		parts = append(parts, map[string]any{
			"type": "file",
			"file": map[string]any{"file_id": id},
		})
	}
	parts = append(parts, map[string]any{
		"type": "text",
		"text": "Extract the policy data from the attached document(s).\n\nJSON Schema:\n" + SchemaJSON(),
	})

	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"messages": []map[string]any{
			{"role": "system", "content": buildSystemPrompt()},
			{"role": "user", "content": parts},
		},
	}

	content, err := c.chat(ctx, body)
	if err != nil {
		return Extraction{}, err
	}
	return ParseResponse(content)
}

// chat posts a chat-completions body and returns choices[0].message.content.
func (c *Client) chat(ctx context.Context, body map[string]any) (string, error) {
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	b, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %v", ErrExtractionFailed, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	raw, err := c.do(req)
	if err != nil {
		return "", err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrExtractionFailed, err)
	}
	if len(cc.Choices) == 0 || strings.TrimSpace(cc.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("%w: empty completion", ErrExtractionFailed)
	}
	return cc.Choices[0].Message.Content, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			c.log.Warn("ai response body close error", "error", cerr)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d: %s", ErrExtractionFailed, resp.StatusCode, truncate(buf.String(), 1024))
	}
	return buf.Bytes(), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
