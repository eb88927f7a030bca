package parser

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"io"

	"github.com/ukaji3/sheet2i18n/pkg/sheet2i18n/models"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ExtractCSV reads a CSV document into CellRows, the same shape ExtractCells
// produces for a sheet. Rows may have differing field counts. A row is
// numbered by the line its record starts on, so blank lines and multi-line
// quoted fields keep later rows aligned with the file.
func ExtractCSV(r io.Reader, area *models.CellRange) ([]models.CellRow, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		if _, err := br.Discard(len(utf8BOM)); err != nil {
			return nil, err
		}
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var (
		records [][]string
		lines   []int
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		records = append(records, rec)
		lines = append(lines, line)
	}
	return collectRows(records, lines, area), nil
}
