package excel

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Grid is the raw cell matrix of the first worksheet. Rows returned by
// excelize are ragged: trailing empty cells are trimmed, so all access
// goes through CellAt.
type Grid [][]string

// OpenGrid reads the first worksheet of an xlsx payload into a grid.
func OpenGrid(data []byte) (Grid, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return Grid(rows), nil
}

func CellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// FoldCell lower-cases and strips accents relevant to the RestoTrack
// header vocabulary so keyword containment is accent-insensitive.
func FoldCell(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	replacer := strings.NewReplacer(
		"é", "e", "è", "e", "ê", "e", "ë", "e",
		"à", "a", "â", "a",
		"î", "i", "ï", "i",
		"ô", "o", "û", "u", "ù", "u",
		"ç", "c",
	)
	return replacer.Replace(text)
}
