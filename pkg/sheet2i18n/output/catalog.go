package output

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"github.com/ukaji3/sheet2i18n/pkg/sheet2i18n/models"
	"golang.org/x/text/language"
)

// Catalog formats.
const (
	CatalogJSON = "json"
	CatalogTOML = "toml"
)

// ErrCatalogRejected indicates go-i18n cannot load a generated catalog as intended.
var ErrCatalogRejected = errors.New("catalog rejected")

// Catalog is one rendered per-locale message file.
type Catalog struct {
	// Locale is the catalog's locale.
	Locale string
	// Path is the file path the catalog is written to.
	Path string
	// Messages is the number of messages in the catalog.
	Messages int
	// Data is the encoded catalog.
	Data []byte
}

// RenderCatalogs builds one go-i18n message file per locale. Empty
// translations are left out; rows with context become
// {"description": context, "other": text} messages.
func RenderCatalogs(dir string, table *models.TranslationTable, format string) ([]Catalog, error) {
	if format == "" {
		format = CatalogJSON
	}
	if format != CatalogJSON && format != CatalogTOML {
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc(CatalogTOML, toml.Unmarshal)

	var catalogs []Catalog
	for _, locale := range table.Locales {
		path := filepath.Join(dir, locale+"."+format)

		var (
			data []byte
			n    int
			err  error
		)
		if format == CatalogTOML {
			data, n, err = renderTOML(table, locale)
		} else {
			data, n, err = renderJSON(table, locale)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", path, err)
		}

		mf, err := bundle.ParseMessageFileBytes(data, path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrCatalogRejected, path, err)
		}
		if len(mf.Messages) != n {
			return nil, fmt.Errorf("%w: %s: go-i18n loaded %d of %d messages (keys may clash with reserved names such as \"other\" or \"description\")",
				ErrCatalogRejected, path, len(mf.Messages), n)
		}

		catalogs = append(catalogs, Catalog{Locale: locale, Path: path, Messages: n, Data: data})
	}
	return catalogs, nil
}

// File returns the catalog as a File for WriteAll.
func (c Catalog) File() File {
	return File{Path: c.Path, Data: c.Data}
}

func renderJSON(table *models.TranslationTable, locale string) ([]byte, int, error) {
	root := newObject()
	for _, row := range table.Rows() {
		text := row.Values[locale]
		if text == "" {
			continue
		}
		if row.Context == "" {
			root.set(row.Key, text)
			continue
		}
		msg := newObject()
		msg.set("description", row.Context)
		msg.set("other", text)
		root.set(row.Key, msg)
	}
	data, err := root.render()
	return data, len(root.keys), err
}

func renderTOML(table *models.TranslationTable, locale string) ([]byte, int, error) {
	doc := make(map[string]any)
	for _, row := range table.Rows() {
		text := row.Values[locale]
		if text == "" {
			continue
		}
		if row.Context == "" {
			doc[row.Key] = text
			continue
		}
		doc[row.Key] = map[string]string{"description": row.Context, "other": text}
	}
	data, err := toml.Marshal(doc)
	return data, len(doc), err
}
