package sheet2i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ukaji3/sheet2i18n/pkg/sheet2i18n/models"
	"github.com/ukaji3/sheet2i18n/pkg/sheet2i18n/output"
	"github.com/ukaji3/sheet2i18n/pkg/sheet2i18n/parser"
	"github.com/xuri/excelize/v2"
)

// Convert reads the spreadsheet at inputPath and writes its translations as
// JSON to outputPath. Nothing is written unless the whole input converts, and
// the output and catalogs are only replaced once all of them were staged.
func Convert(inputPath, outputPath string, opts Options) error {
	log := opts.logger()

	table, err := Read(inputPath, opts)
	if err != nil {
		return err
	}

	data, err := output.ToJSON(table, opts.jsonOptions())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	files := []output.File{{Path: outputPath, Data: data}}
	var catalogs []output.Catalog
	if opts.CatalogDir != "" {
		catalogs, err = output.RenderCatalogs(opts.CatalogDir, table, opts.CatalogFormat)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
		}
		for _, c := range catalogs {
			files = append(files, c.File())
		}
	}

	if err := output.WriteAll(files...); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	for _, c := range catalogs {
		log.Debug("catalog written", "locale", c.Locale, "path", c.Path, "messages", c.Messages)
	}

	log.Info("translations written",
		"output", outputPath,
		"keys", table.Len(),
		"locales", len(table.Locales),
		"rows", table.Stats.Rows,
		"skipped", table.Stats.Skipped,
		"duplicates", table.Stats.Duplicates,
		"catalogs", len(catalogs),
	)
	return nil
}

// Read reads a translation table from a spreadsheet.
func Read(path string, opts Options) (*models.TranslationTable, error) {
	log := opts.logger()

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrFileNotFound, path)
	}

	sheetName := opts.Sheet
	var area *models.CellRange
	if opts.Range != "" {
		rangeSheet, a, err := parser.ParseRange(opts.Range)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
		}
		if rangeSheet != "" {
			sheetName = rangeSheet
		}
		area = a
	}

	rows, err := readRows(path, sheetName, area)
	if err != nil {
		return nil, err
	}

	if bounds, ok := parser.DataBounds(rows); ok {
		log.Debug("data range detected", "path", path, "range", parser.RangeString(bounds))
	}

	headerIdx := parser.HeaderRow(rows)
	if headerIdx < 0 {
		return nil, fmt.Errorf("%w: %s: no header row", ErrInvalidFormat, path)
	}

	header, err := parser.ParseHeader(rows[headerIdx], parser.HeaderOptions{
		KeyColumn:     opts.KeyColumn,
		IgnoreColumns: opts.IgnoreColumns,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidFormat, path, err)
	}
	log.Debug("header parsed",
		"row", header.R,
		"key_column", header.KeyCol+1,
		"context_column", header.ContextCol+1,
		"locales", header.LocaleNames(),
	)

	table := models.NewTranslationTable(header.LocaleNames())
	for _, row := range rows[headerIdx+1:] {
		tr := header.Translation(row, opts.SkipEmpty)
		if tr.Key == "" {
			table.Skip()
			log.Debug("skipping row without key", "row", row.R)
			continue
		}
		if prev, replaced := table.Set(tr); replaced {
			log.Warn("duplicate key, later row wins", "key", tr.Key, "row", tr.R, "previous_row", prev.R)
		}
	}

	return table, nil
}

// readRows loads the non-empty rows of the selected sheet, or of the CSV document.
func readRows(path, sheetName string, area *models.CellRange) ([]models.CellRow, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()

		rows, err := parser.ExtractCSV(f, area)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidFormat, path, err)
		}
		return rows, nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidFormat, path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if sheetName == "" {
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: %s: workbook has no sheets", ErrInvalidFormat, path)
		}
		sheetName = sheets[0]
	} else if !slices.Contains(sheets, sheetName) {
		return nil, fmt.Errorf("%w: %s: sheet %q not found", ErrInvalidFormat, path, sheetName)
	}

	rows, err := parser.ExtractCells(f, sheetName, area)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: sheet %q: %w", ErrInvalidFormat, path, sheetName, err)
	}
	return rows, nil
}
