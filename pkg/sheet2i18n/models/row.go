package models

// TranslationRow represents one translation entry read from a sheet row.
type TranslationRow struct {
	// R is the source row index (1-based).
	R int `json:"r"`
	// Key is the translation key.
	Key string `json:"key"`
	// Context is the optional context/category text.
	Context string `json:"context,omitempty"`
	// Values maps locale to translated text.
	Values map[string]string `json:"values"`
}
