package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/sheet2i18n/pkg/sheet2i18n/models"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"
)

// KeyColumnNames are the header names accepted as the key column when no
// explicit name is configured, in order of preference.
var KeyColumnNames = []string{"key", "id", "msgid"}

// ContextColumnNames are the header names recognized as the context column.
var ContextColumnNames = []string{"context", "category", "description", "comment", "note", "notes"}

var (
	// ErrMissingKeyColumn indicates no header names the key column.
	ErrMissingKeyColumn = errors.New("missing key column")
	// ErrNoLocales indicates the header has no locale columns.
	ErrNoLocales = errors.New("no locale columns")
	// ErrInvalidLocale indicates a header is not a BCP 47 language tag.
	ErrInvalidLocale = errors.New("invalid locale")
	// ErrDuplicateLocale indicates two headers name the same locale.
	ErrDuplicateLocale = errors.New("duplicate locale")
)

// HeaderError describes a problem with one header column.
type HeaderError struct {
	Column string // column letter, e.g. "C"
	Name   string // header text
	Err    error
}

func (e *HeaderError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("header: %v", e.Err)
	}
	return fmt.Sprintf("header column %s (%q): %v", e.Column, e.Name, e.Err)
}

func (e *HeaderError) Unwrap() error {
	return e.Err
}

// HeaderOptions controls how header names map to columns.
type HeaderOptions struct {
	// KeyColumn names the key column. Empty means KeyColumnNames.
	KeyColumn string
	// IgnoreColumns lists header names that are neither key, context nor locale.
	IgnoreColumns []string
}

// LocaleColumn maps a sheet column to a canonical locale.
type LocaleColumn struct {
	// Col is the 0-based column index.
	Col int
	// Name is the header text as written in the sheet.
	Name string
	// Locale is the canonical BCP 47 tag.
	Locale string
}

// Header is the parsed header row.
type Header struct {
	// R is the header row index (1-based).
	R int
	// KeyCol is the 0-based key column index.
	KeyCol int
	// ContextCol is the 0-based context column index, or -1.
	ContextCol int
	// Locales lists locale columns in sheet order.
	Locales []LocaleColumn
}

// ParseHeader maps the cells of a header row to key, context and locale columns.
func ParseHeader(row models.CellRow, opts HeaderOptions) (*Header, error) {
	names := make([]string, len(row.C))
	for i, v := range row.C {
		names[i] = strings.ToLower(strings.TrimSpace(v))
	}

	keyCol := -1
	if opts.KeyColumn != "" {
		keyCol = indexOf(names, strings.ToLower(strings.TrimSpace(opts.KeyColumn)))
	} else {
		for _, candidate := range KeyColumnNames {
			if keyCol = indexOf(names, candidate); keyCol >= 0 {
				break
			}
		}
	}
	if keyCol < 0 {
		return nil, &HeaderError{Err: ErrMissingKeyColumn}
	}

	contextCol := -1
	for _, candidate := range ContextColumnNames {
		if idx := indexOf(names, candidate); idx >= 0 && idx != keyCol {
			contextCol = idx
			break
		}
	}

	ignored := make(map[string]bool, len(opts.IgnoreColumns))
	for _, name := range opts.IgnoreColumns {
		ignored[strings.ToLower(strings.TrimSpace(name))] = true
	}

	h := &Header{R: row.R, KeyCol: keyCol, ContextCol: contextCol}
	seen := make(map[string]string)
	for col, name := range names {
		if name == "" || col == keyCol || col == contextCol || ignored[name] || isContextName(name) {
			continue
		}
		letter, _ := excelize.ColumnNumberToName(col + 1)

		tag, err := language.Parse(row.C[col])
		if err != nil {
			return nil, &HeaderError{Column: letter, Name: row.C[col], Err: fmt.Errorf("%w: %v", ErrInvalidLocale, err)}
		}
		locale := tag.String()
		if prev, ok := seen[locale]; ok {
			return nil, &HeaderError{Column: letter, Name: row.C[col], Err: fmt.Errorf("%w %s (also column %s)", ErrDuplicateLocale, locale, prev)}
		}
		seen[locale] = letter
		h.Locales = append(h.Locales, LocaleColumn{Col: col, Name: row.C[col], Locale: locale})
	}

	if len(h.Locales) == 0 {
		return nil, &HeaderError{Err: ErrNoLocales}
	}
	return h, nil
}

// LocaleNames returns the canonical locales in column order.
func (h *Header) LocaleNames() []string {
	result := make([]string, len(h.Locales))
	for i, lc := range h.Locales {
		result[i] = lc.Locale
	}
	return result
}

// Translation maps a data row through the header. Empty values are
// omitted when skipEmpty is set.
func (h *Header) Translation(row models.CellRow, skipEmpty bool) models.TranslationRow {
	tr := models.TranslationRow{
		R:      row.R,
		Key:    row.Cell(h.KeyCol),
		Values: make(map[string]string, len(h.Locales)),
	}
	if h.ContextCol >= 0 {
		tr.Context = row.Cell(h.ContextCol)
	}
	for _, lc := range h.Locales {
		v := row.Cell(lc.Col)
		if v == "" && skipEmpty {
			continue
		}
		tr.Values[lc.Locale] = v
	}
	return tr
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

func isContextName(name string) bool {
	return indexOf(ContextColumnNames, name) >= 0
}
