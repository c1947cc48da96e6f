package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docsite/internal/search"
)

var extractCmd = &cobra.Command{
	Use:   "extract-search",
	Short: "Extract the search index from every page",
	Long: `Renders every guide and reference page, splits it into sections by heading,
and writes the result as indented JSON to search_output
(.data/search-content.json by default). Any failure aborts with a non-zero exit.`,
	Args: cobra.NoArgs,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	s, err := newSite(cfg)
	if err != nil {
		return err
	}

	ex := &search.Extractor{Site: s, References: newReferences(cfg, log, nil), Logger: log}
	pages, err := ex.Extract(context.Background())
	if err != nil {
		return fmt.Errorf("extracting search data: %w", err)
	}
	if err := search.WriteFile(cfg.SearchOutput, pages); err != nil {
		return err
	}

	log.Info("search index written", "path", cfg.SearchOutput, "pages", len(pages))
	return nil
}
