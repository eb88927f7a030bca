package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Default paths used when the command runs without flags.
const (
	DefaultInput  = "TB.xlsx"
	DefaultOutput = "exportCode/translations.json"
)

// Flags holds all command-line flag values
type Flags struct {
	CfgFile       string
	Input         string
	Output        string
	Sheet         string
	Range         string
	KeyColumn     string
	IgnoreColumns []string
	Layout        string
	NestKeys      bool
	SkipEmpty     bool
	CatalogDir    string
	CatalogFormat string
	Verbose       bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Input:         DefaultInput,
		Output:        DefaultOutput,
		Layout:        "key",
		CatalogFormat: "json",
	}
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is ./.sheet2i18n.yaml or $HOME/.sheet2i18n.yaml)")

	cmd.Flags().StringVarP(&flags.Input, "input", "i", flags.Input, "Input spreadsheet (.xlsx, .xlsm or .csv)")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", flags.Output, "Output JSON file")
	cmd.Flags().StringVar(&flags.Sheet, "sheet", "", "Worksheet name (default: first sheet)")
	cmd.Flags().StringVar(&flags.Range, "range", "", "Cell range to read, e.g. A1:D200 or 'Sheet1'!$A$1:$D$200")
	cmd.Flags().StringVar(&flags.KeyColumn, "key-column", "", "Header of the key column (default: key, id or msgid)")
	cmd.Flags().StringSliceVar(&flags.IgnoreColumns, "ignore-column", nil, "Header to ignore (repeatable)")
	cmd.Flags().StringVar(&flags.Layout, "layout", flags.Layout, "Output layout: key or locale")
	cmd.Flags().BoolVar(&flags.NestKeys, "nest-keys", false, "Split keys on '.' into nested objects")
	cmd.Flags().BoolVar(&flags.SkipEmpty, "skip-empty", false, "Leave out empty translations")
	cmd.Flags().StringVar(&flags.CatalogDir, "catalog-dir", "", "Also write one go-i18n catalog per locale into this directory")
	cmd.Flags().StringVar(&flags.CatalogFormat, "catalog-format", flags.CatalogFormat, "Catalog format: json or toml")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")
}

// flagKeys maps viper keys to the local flags bound to them.
var flagKeys = map[string]string{
	"input":          "input",
	"output":         "output",
	"sheet":          "sheet",
	"range":          "range",
	"key_column":     "key-column",
	"ignore_column":  "ignore-column",
	"layout":         "layout",
	"nest_keys":      "nest-keys",
	"skip_empty":     "skip-empty",
	"catalog_dir":    "catalog-dir",
	"catalog_format": "catalog-format",
	"verbose":        "verbose",
}

// bindFlags exposes every local flag to viper under its name with '-' replaced by '_'.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var errs []error
	for key, name := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			errs = append(errs, fmt.Errorf("bind flag %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}
