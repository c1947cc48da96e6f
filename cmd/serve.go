package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docsite/internal/metrics"
	"github.com/ziadkadry99/docsite/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the documentation website",
	Long: `Starts an HTTP server rendering guide pages from the content directory and
reference pages from the configured TypeDoc sources. Reference documents are
fetched on first use and refetched once the revalidation window has passed.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides config)")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	serveCmd.Flags().Bool("allow-all-origins", false, "allow cross-origin requests from any origin")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Port = port
	}
	log := newLogger(cfg)

	s, err := newSite(cfg)
	if err != nil {
		return err
	}
	m := metrics.New()
	refs := newReferences(cfg, log, m)

	allowAll, _ := cmd.Flags().GetBool("allow-all-origins")
	srv := server.New(server.Config{
		Port:        cfg.Port,
		SearchIndex: cfg.SearchOutput,
		AllowAll:    allowAll,
	}, s, refs, m, log)

	log.Info("site loaded", "pages", s.Content.Len(), "references", len(cfg.References))

	if open, _ := cmd.Flags().GetBool("open"); open {
		openBrowser(fmt.Sprintf("http://localhost:%d", cfg.Port))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx)
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var c *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		c = exec.Command("open", url)
	case "windows":
		c = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		c = exec.Command("xdg-open", url)
	}
	_ = c.Start()
}
