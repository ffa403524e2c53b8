package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/insurtech-mx/polizas-crm/constants"
	"github.com/insurtech-mx/polizas-crm/internal/common"
)

// OCR runs optical character recognition over the document. PDFs are
// rasterized page by page; images go straight to tesseract. Temporary page
// files are removed on every path, success or failure.
func (e *Extractor) OCR(ctx context.Context, path, format string) (string, error) {
	switch format {
	case constants.IMAGE:
		return e.tesseractOCR(ctx, path)
	case constants.PDF:
		return e.pdfOCR(ctx, path)
	default:
		return "", fmt.Errorf("unsupported format: %q", format)
	}
}

func (e *Extractor) pdfOCR(ctx context.Context, path string) (string, error) {
	tmpDir, err := os.MkdirTemp("", "pai-pages-*")
	if err != nil {
		return "", err
	}
	defer func(dir string) {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			e.logger.Warn("failed to remove temp dir", "dir", dir, "error", rmErr)
		}
	}(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: falta el binario %q", common.ErrOCRNotConfigured, e.cfg.Pdftoppm)
		}
		return "", fmt.Errorf("pdftoppm: %w (%s)", err, truncate(string(errb), 512))
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("pdftoppm produced no images")
	}

	var b strings.Builder
	for _, img := range matches {
		txt, err := e.tesseractOCR(ctx, img)
		if err != nil {
			// a missing binary aborts the whole run; per-page noise does not
			if errors.Is(err, common.ErrOCRNotConfigured) {
				return "", err
			}
			e.logger.Warn("ocr page failed", "page", filepath.Base(img), "error", err)
			continue
		}
		if txt == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(txt)
	}
	return b.String(), nil
}
