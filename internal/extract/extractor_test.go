package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insurtech-mx/polizas-crm/internal/common"
)

// fakeRunner dispatches on the command name. A nil handler simulates a
// missing binary.
type fakeRunner struct {
	handlers map[string]func(args ...string) (string, error)
	calls    []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, name)
	h, ok := f.handlers[name]
	if !ok || h == nil {
		return nil, nil, exec.ErrNotFound
	}
	out, err := h(args...)
	if err != nil {
		return nil, []byte(err.Error()), err
	}
	return []byte(out), nil, nil
}

func newTestExtractor(t *testing.T, r Runner) *Extractor {
	t.Helper()
	e := NewExtractor(Config{MinTextLength: 20}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.runner = r
	return e
}

func TestExtractTextUsesPDFTextLayer(t *testing.T) {
	longText := strings.Repeat("póliza de seguros ", 10)
	r := &fakeRunner{handlers: map[string]func(...string) (string, error){
		"pdftotext": func(...string) (string, error) { return longText, nil },
	}}
	e := newTestExtractor(t, r)

	got, err := e.ExtractText(context.Background(), "/tmp/doc.pdf", "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(longText), got)
	assert.Equal(t, []string{"pdftotext"}, r.calls, "OCR must not run when the text layer is long enough")
}

func TestExtractTextFallsBackToOCRWhenTextLayerShort(t *testing.T) {
	r := &fakeRunner{handlers: map[string]func(...string) (string, error){
		"pdftotext": func(...string) (string, error) { return "x", nil },
		"pdftoppm": func(args ...string) (string, error) {
			// last arg is the output prefix; emit two fake pages
			prefix := args[len(args)-1]
			for i := 1; i <= 2; i++ {
				if err := os.WriteFile(fmt.Sprintf("%s-%d.png", prefix, i), []byte("png"), 0o644); err != nil {
					return "", err
				}
			}
			return "", nil
		},
		"tesseract": func(args ...string) (string, error) {
			return "texto de " + filepath.Base(args[0]), nil
		},
	}}
	e := newTestExtractor(t, r)

	got, err := e.ExtractText(context.Background(), "/tmp/scan.pdf", "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "texto de page-1.png\n\ntexto de page-2.png", got)
}

func TestExtractTextImageGoesStraightToOCR(t *testing.T) {
	r := &fakeRunner{handlers: map[string]func(...string) (string, error){
		"tesseract": func(...string) (string, error) { return "texto OCR", nil },
	}}
	e := newTestExtractor(t, r)

	got, err := e.ExtractText(context.Background(), "/tmp/scan.jpg", "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "texto OCR", got)
	assert.NotContains(t, r.calls, "pdftotext")
}

func TestExtractTextRejectsUnsupportedMIME(t *testing.T) {
	e := newTestExtractor(t, &fakeRunner{})
	_, err := e.ExtractText(context.Background(), "/tmp/doc.docx", "application/msword")
	assert.Error(t, err)
}

func TestMissingPdftotextFallsBackToOCR(t *testing.T) {
	// pdftotext absent entirely: the text layer step yields "" and the OCR
	// path still runs.
	r := &fakeRunner{handlers: map[string]func(...string) (string, error){
		"pdftoppm": func(args ...string) (string, error) {
			prefix := args[len(args)-1]
			return "", os.WriteFile(prefix+"-1.png", []byte("png"), 0o644)
		},
		"tesseract": func(...string) (string, error) { return "rescatado por OCR", nil },
	}}
	e := newTestExtractor(t, r)

	got, err := e.ExtractText(context.Background(), "/tmp/doc.pdf", "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "rescatado por OCR", got)
}

func TestMissingTesseractIsConfigurationError(t *testing.T) {
	r := &fakeRunner{handlers: map[string]func(...string) (string, error){}}
	e := newTestExtractor(t, r)

	_, err := e.ExtractText(context.Background(), "/tmp/scan.png", "image/png")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrOCRNotConfigured))
}

func TestMissingPdftoppmIsConfigurationError(t *testing.T) {
	r := &fakeRunner{handlers: map[string]func(...string) (string, error){
		"pdftotext": func(...string) (string, error) { return "", nil },
	}}
	e := newTestExtractor(t, r)

	_, err := e.ExtractText(context.Background(), "/tmp/scan.pdf", "application/pdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrOCRNotConfigured))
}

func TestPDFOCRSkipsFailedPages(t *testing.T) {
	var page int
	r := &fakeRunner{handlers: map[string]func(...string) (string, error){
		"pdftoppm": func(args ...string) (string, error) {
			prefix := args[len(args)-1]
			for i := 1; i <= 3; i++ {
				if err := os.WriteFile(fmt.Sprintf("%s-%d.png", prefix, i), []byte("png"), 0o644); err != nil {
					return "", err
				}
			}
			return "", nil
		},
		"tesseract": func(args ...string) (string, error) {
			page++
			if page == 2 {
				return "", errors.New("tesseract crashed")
			}
			return fmt.Sprintf("página %d", page), nil
		},
	}}
	e := newTestExtractor(t, r)

	got, err := e.OCR(context.Background(), "/tmp/scan.pdf", "PDF")
	require.NoError(t, err)
	assert.Equal(t, "página 1\n\npágina 3", got)
}
