package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "docsite",
	Short: "Documentation website with guides, API references and search",
	Long: `docsite serves Markdown guides and API reference pages generated from
TypeDoc JSON behind a collapsible sidebar, renders the guides to a static
directory, and extracts a JSON search index from every page.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".docsite.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
