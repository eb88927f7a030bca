// Package main provides the CLI entry point for sheet2i18n.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ukaji3/sheet2i18n/pkg/sheet2i18n"
)

var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	flags := NewFlags()
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "sheet2i18n",
		Short: "Convert a translation spreadsheet to JSON",
		Long: `sheet2i18n reads a spreadsheet of translation strings (.xlsx or .csv)
whose header row names a key column and one column per locale, and writes
the translations as a JSON document.

Examples:
  sheet2i18n                                   # TB.xlsx -> exportCode/translations.json
  sheet2i18n -i strings.xlsx -o i18n.json
  sheet2i18n -i strings.csv --layout locale --nest-keys
  sheet2i18n --catalog-dir locales --catalog-format toml`,
		Args:         cobra.NoArgs,
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return initConfig(v, flags.CfgFile)
	}
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return run(cmd, v)
	}

	setupFlags(rootCmd, flags)
	if err := bindFlags(rootCmd, v); err != nil {
		panic(err)
	}

	return rootCmd
}

func run(cmd *cobra.Command, v *viper.Viper) error {
	logger := newLogger(cmd.ErrOrStderr(), v.GetBool("verbose"))

	layout, err := sheet2i18n.ParseLayout(v.GetString("layout"))
	if err != nil {
		return err
	}

	catalogFormat, err := sheet2i18n.ParseCatalogFormat(v.GetString("catalog_format"))
	if err != nil {
		return err
	}

	opts := sheet2i18n.Options{
		Sheet:         v.GetString("sheet"),
		Range:         v.GetString("range"),
		KeyColumn:     v.GetString("key_column"),
		IgnoreColumns: v.GetStringSlice("ignore_column"),
		SkipEmpty:     v.GetBool("skip_empty"),
		Layout:        layout,
		NestKeys:      v.GetBool("nest_keys"),
		CatalogDir:    v.GetString("catalog_dir"),
		CatalogFormat: catalogFormat,
		Logger:        logger,
	}

	inputPath := v.GetString("input")
	outputPath := v.GetString("output")
	logger.Debug("converting", "input", inputPath, "output", outputPath, "layout", layout)

	if err := sheet2i18n.Convert(inputPath, outputPath, opts); err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
