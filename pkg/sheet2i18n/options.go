// Package sheet2i18n converts translation spreadsheets into JSON documents.
package sheet2i18n

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ukaji3/sheet2i18n/pkg/sheet2i18n/output"
)

// Layout represents the shape of the JSON document.
type Layout string

const (
	// LayoutKey nests locales under each key: {"hello": {"en": "Hello"}}.
	LayoutKey Layout = "key"
	// LayoutLocale nests keys under each locale: {"en": {"hello": "Hello"}}.
	LayoutLocale Layout = "locale"
)

// ParseLayout validates a layout name. Empty means LayoutKey.
func ParseLayout(s string) (Layout, error) {
	switch Layout(s) {
	case "", LayoutKey:
		return LayoutKey, nil
	case LayoutLocale:
		return LayoutLocale, nil
	default:
		return "", fmt.Errorf("invalid layout: %s (must be key or locale)", s)
	}
}

// ParseCatalogFormat validates a catalog format name. Empty means json.
func ParseCatalogFormat(s string) (string, error) {
	switch s {
	case "", output.CatalogJSON:
		return output.CatalogJSON, nil
	case output.CatalogTOML:
		return output.CatalogTOML, nil
	default:
		return "", fmt.Errorf("invalid catalog format: %s (must be json or toml)", s)
	}
}

// Options configures conversion behavior.
type Options struct {
	// Sheet selects the worksheet. Empty means the first sheet.
	Sheet string
	// Range restricts reading to a cell range such as A1:D200 or 'Sheet'!$A$1:$D$200.
	Range string
	// KeyColumn names the key column header. Empty accepts key, id or msgid.
	KeyColumn string
	// IgnoreColumns lists header names that are not locales.
	IgnoreColumns []string
	// SkipEmpty omits empty translations from the output.
	SkipEmpty bool
	// Layout selects the document shape.
	Layout Layout
	// NestKeys splits keys on "." into nested objects.
	NestKeys bool
	// CatalogDir, when set, also receives one go-i18n catalog per locale.
	CatalogDir string
	// CatalogFormat is json (default) or toml.
	CatalogFormat string
	// Logger receives progress logs. If nil, logs are discarded.
	Logger *slog.Logger
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		Layout:        LayoutKey,
		CatalogFormat: output.CatalogJSON,
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (o Options) jsonOptions() output.JSONOptions {
	return output.JSONOptions{
		ByLocale: o.Layout == LayoutLocale,
		NestKeys: o.NestKeys,
	}
}
