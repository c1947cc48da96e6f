package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docsite/internal/progress"
	"github.com/ziadkadry99/docsite/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the guide pages to a static directory",
	Long:  `Renders every content page to <output>/<route>/index.html together with the stylesheet and client script.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to output_dir from config)")
	buildCmd.Flags().Int("concurrency", site.DefaultConcurrency, "pages rendered in parallel")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputDir = out
	}
	log := newLogger(cfg)

	s, err := newSite(cfg)
	if err != nil {
		return err
	}

	concurrency, _ := cmd.Flags().GetInt("concurrency")
	b := &site.Builder{
		Site:        s,
		OutputDir:   cfg.OutputDir,
		Reporter:    progress.NewReporter(),
		Concurrency: concurrency,
	}
	n, err := b.Build(context.Background())
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	log.Debug("site built", "pages", n, "output", cfg.OutputDir)
	fmt.Fprintf(cmd.OutOrStdout(), "Static site generated: %s (%d pages)\n", cfg.OutputDir, n)
	return nil
}
