package kb

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// LoadPDF extracts plain text from an uploaded PDF. Each non-empty page
// becomes one Upload named after the file and page number. Pages that
// fail text extraction are skipped rather than failing the whole file.
func LoadPDF(path string) ([]Upload, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var uploads []Upload

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		uploads = append(uploads, Upload{
			Name:    fmt.Sprintf("%s (hal. %d)", base, i),
			Content: text,
			Source:  "pdf",
		})
	}

	if len(uploads) == 0 {
		return nil, ErrEmptyDocument
	}
	return uploads, nil
}
