package models

// TableStats counts what happened to data rows while a table was built.
type TableStats struct {
	// Rows is the number of data rows read below the header.
	Rows int `json:"rows"`
	// Skipped is the number of rows dropped for an empty key.
	Skipped int `json:"skipped"`
	// Duplicates is the number of rows that replaced an earlier row with the same key.
	Duplicates int `json:"duplicates"`
}

// TranslationTable maps translation keys to per-locale text.
// Keys keep the order of their first appearance; locales keep header order.
type TranslationTable struct {
	// Locales lists the locale columns in header order.
	Locales []string
	// Stats holds row counters.
	Stats TableStats

	keys []string
	rows map[string]TranslationRow
}

// NewTranslationTable creates an empty table for the given locales.
func NewTranslationTable(locales []string) *TranslationTable {
	return &TranslationTable{
		Locales: append([]string(nil), locales...),
		rows:    make(map[string]TranslationRow),
	}
}

// Set stores row under its key. A duplicate key replaces the earlier row
// but keeps the earlier position. It returns the replaced row, if any.
func (t *TranslationTable) Set(row TranslationRow) (TranslationRow, bool) {
	t.Stats.Rows++
	prev, exists := t.rows[row.Key]
	if exists {
		t.Stats.Duplicates++
	} else {
		t.keys = append(t.keys, row.Key)
	}
	t.rows[row.Key] = row
	return prev, exists
}

// Skip records a data row that produced no entry.
func (t *TranslationTable) Skip() {
	t.Stats.Rows++
	t.Stats.Skipped++
}

// Len returns the number of unique keys.
func (t *TranslationTable) Len() int {
	return len(t.keys)
}

// Keys returns the keys in source order.
func (t *TranslationTable) Keys() []string {
	return append([]string(nil), t.keys...)
}

// Get returns the row stored for key.
func (t *TranslationTable) Get(key string) (TranslationRow, bool) {
	row, ok := t.rows[key]
	return row, ok
}

// Rows returns the stored rows in key order.
func (t *TranslationTable) Rows() []TranslationRow {
	result := make([]TranslationRow, 0, len(t.keys))
	for _, k := range t.keys {
		result = append(result, t.rows[k])
	}
	return result
}

// Value returns the text for key in locale.
func (t *TranslationTable) Value(key, locale string) (string, bool) {
	row, ok := t.rows[key]
	if !ok {
		return "", false
	}
	v, ok := row.Values[locale]
	return v, ok
}
