package kb

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadXLSX extracts uploaded spreadsheet content. Each sheet becomes one
// Upload; the first row is treated as a header and prefixed onto every
// data cell so row content stays self-describing after flattening.
func LoadXLSX(path string) ([]Upload, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening XLSX: %w", err)
	}
	defer f.Close()

	var uploads []Upload
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil || len(rows) == 0 {
			continue
		}

		var header []string
		var content strings.Builder
		for i, row := range rows {
			if i == 0 && len(rows) > 1 {
				header = row
				continue
			}
			content.WriteString(joinRow(header, row))
			content.WriteByte('\n')
		}

		text := strings.TrimSpace(content.String())
		if text == "" {
			continue
		}
		uploads = append(uploads, Upload{
			Name:    sheet,
			Content: text,
			Source:  "xlsx",
		})
	}

	if len(uploads) == 0 {
		return nil, ErrEmptyDocument
	}
	return uploads, nil
}

// joinRow renders one spreadsheet row as "header: cell" pairs, falling
// back to bare cells when no header row exists.
func joinRow(header, row []string) string {
	parts := make([]string, 0, len(row))
	for i, cell := range row {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		if i < len(header) && strings.TrimSpace(header[i]) != "" {
			parts = append(parts, strings.TrimSpace(header[i])+": "+cell)
		} else {
			parts = append(parts, cell)
		}
	}
	return strings.Join(parts, "; ")
}
