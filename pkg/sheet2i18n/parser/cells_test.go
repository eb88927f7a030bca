package parser

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/sheet2i18n/pkg/sheet2i18n/models"
	"github.com/xuri/excelize/v2"
)

func TestExtractCells(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "key")
	f.SetCellValue(sheetName, "B1", " en ")
	f.SetCellValue(sheetName, "A2", "hello")
	f.SetCellValue(sheetName, "B2", "Hello  ")
	f.SetCellValue(sheetName, "A4", "count")
	f.SetCellValue(sheetName, "B4", 100)

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	rows, err := ExtractCells(f2, sheetName, nil)
	if err != nil {
		t.Fatalf("ExtractCells failed: %v", err)
	}

	want := []models.CellRow{
		{R: 1, C: []string{"key", "en"}},
		{R: 2, C: []string{"hello", "Hello"}},
		{R: 4, C: []string{"count", "100"}},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractCellsMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := ExtractCells(f, "Nope", nil); err == nil {
		t.Errorf("expected error for missing sheet")
	}
}

func TestCollectRowsArea(t *testing.T) {
	raw := [][]string{
		{"title", "", ""},
		{"", "key", "en", "junk"},
		{"", "a", "A", "x"},
		{"", "b", "B"},
	}
	area := &models.CellRange{R1: 2, C1: 2, R2: 3, C2: 3}

	got := collectRows(raw, nil, area)
	want := []models.CellRow{
		{R: 2, C: []string{"", "key", "en"}},
		{R: 3, C: []string{"", "a", "A"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractCSV(t *testing.T) {
	input := "\xEF\xBB\xBFkey,en,fr\nhello, Hello ,Bonjour\n,,\nbye,Bye\n"

	rows, err := ExtractCSV(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("ExtractCSV failed: %v", err)
	}

	want := []models.CellRow{
		{R: 1, C: []string{"key", "en", "fr"}},
		{R: 2, C: []string{"hello", "Hello", "Bonjour"}},
		{R: 4, C: []string{"bye", "Bye"}},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractCSVMalformed(t *testing.T) {
	if _, err := ExtractCSV(strings.NewReader("key,en\n\"unterminated,x\n"), nil); err == nil {
		t.Errorf("expected error for malformed CSV")
	}
}

func TestExtractCSVLineNumbers(t *testing.T) {
	input := "key,en\n\na,\"first\nsecond\"\nb,B\n"

	rows, err := ExtractCSV(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("ExtractCSV failed: %v", err)
	}

	want := []models.CellRow{
		{R: 1, C: []string{"key", "en"}},
		{R: 3, C: []string{"a", "first\nsecond"}},
		{R: 5, C: []string{"b", "B"}},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractCSVRangeWithBlankLine(t *testing.T) {
	input := "key,en\n\na,A\nb,B\n"

	rows, err := ExtractCSV(strings.NewReader(input), &models.CellRange{R1: 1, C1: 1, R2: 3, C2: 2})
	if err != nil {
		t.Fatalf("ExtractCSV failed: %v", err)
	}

	want := []models.CellRow{
		{R: 1, C: []string{"key", "en"}},
		{R: 3, C: []string{"a", "A"}},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}
