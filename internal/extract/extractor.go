package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/insurtech-mx/polizas-crm/constants"
	"github.com/insurtech-mx/polizas-crm/internal/common"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "spa"
	DPI           int    // rasterization DPI for scanned PDFs, default 300
	MaxPages      int    // 0 = no limit

	// Below MinTextLength characters the native PDF text layer is treated
	// as "no text" and the OCR fallback runs.
	MinTextLength int
}

// Extractor turns a document file into plain text. It never touches the
// import record; callers own all persistence.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "spa"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if cfg.MinTextLength <= 0 {
		cfg.MinTextLength = 80
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// ExtractText runs the primary text-layer extractor and, when that yields
// nothing usable, the OCR fallback. An empty result with a nil error means
// "this document has no text" — the caller decides what that implies.
// A missing OCR binary is a configuration error (common.ErrOCRNotConfigured),
// not a "no text" outcome.
func (e *Extractor) ExtractText(ctx context.Context, path, mimeType string) (string, error) {
	format := constants.MapMIMEToFormat(mimeType)
	switch format {
	case constants.PDF:
		txt, err := e.PDFText(ctx, path)
		if err != nil {
			return "", err
		}
		if len(txt) >= e.cfg.MinTextLength {
			return txt, nil
		}
		e.logger.Debug("pdf text layer too short, falling back to ocr",
			"path", path, "text_len", len(txt))
		return e.OCR(ctx, path, constants.PDF)
	case constants.IMAGE:
		return e.OCR(ctx, path, constants.IMAGE)
	default:
		return "", fmt.Errorf("unsupported mime type: %q", mimeType)
	}
}

// PDFText extracts the native text layer of a PDF. Returns "" (no error)
// when the document has no text layer or when pdftotext itself is not
// installed — the OCR fallback covers both.
func (e *Extractor) PDFText(ctx context.Context, path string) (string, error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			e.logger.Warn("pdftotext not installed, skipping text layer", "path", path)
			return "", nil
		}
		return "", fmt.Errorf("pdftotext: %w (%s)", err, truncate(string(errb), 512))
	}
	return strings.TrimSpace(string(out)), nil
}

func (e *Extractor) tesseractOCR(ctx context.Context, path string) (string, error) {
	// tesseract <file> stdout -l <lang>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, path, "stdout", "-l", e.cfg.TesseractLang)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: falta el binario %q", common.ErrOCRNotConfigured, e.cfg.Tesseract)
		}
		return "", fmt.Errorf("tesseract: %w (%s)", err, truncate(string(errb), 512))
	}
	return strings.TrimSpace(string(out)), nil
}
