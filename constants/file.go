package constants

import "strings"

// Formats for the source document of a policy import.
const (
	PDF   = "PDF"
	IMAGE = "IMAGE"
)

// FileFormats holds the allowed file formats for imported policy documents.
var FileFormats = []string{PDF, IMAGE}

// AllowedMIMETypes holds the MIME types accepted on upload.
var AllowedMIMETypes = map[string]struct{}{
	"application/pdf": {},
	"image/jpeg":      {},
	"image/png":       {},
	"image/tiff":      {},
}

// MapMIMEToFormat maps a MIME type to PDF | IMAGE. Returns "" for anything else.
func MapMIMEToFormat(mimeType string) string {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.Index(mt, ";"); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	switch {
	case mt == "application/pdf":
		return PDF
	case strings.HasPrefix(mt, "image/"):
		return IMAGE
	default:
		return ""
	}
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
