// Package cli wires the cobra command tree for the perplexity-mcp binary.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IngLP/PerplexitySearchMCP/internal/adapters/driven/config/file"
	"github.com/IngLP/PerplexitySearchMCP/internal/adapters/driven/provider/perplexity"
	"github.com/IngLP/PerplexitySearchMCP/internal/core/ports/driving"
	"github.com/IngLP/PerplexitySearchMCP/internal/core/services"
	"github.com/IngLP/PerplexitySearchMCP/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	cfgPath string
	verbose bool

	// searchService is the wired pipeline. Tests may pre-seed it.
	searchService driving.SearchService
)

var rootCmd = &cobra.Command{
	Use:   "perplexity-mcp",
	Short: "Perplexity web search over the Model Context Protocol",
	Long: `perplexity-mcp exposes Perplexity web search as an MCP tool.

The PERPLEXITY_API_KEY environment variable must hold a valid API key.
Optional settings live in ~/.perplexity-mcp/config.toml.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.Setup(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config.toml (default ~/.perplexity-mcp/config.toml)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initSearchService builds the provider client and core service from the
// config file and environment. The result is cached for the process.
func initSearchService() (driving.SearchService, error) {
	if searchService != nil {
		return searchService, nil
	}

	path := cfgPath
	if path == "" {
		defaultPath, err := file.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("resolving config path: %w", err)
		}
		path = defaultPath
	}

	cfg, err := file.Load(path)
	if err != nil {
		return nil, err
	}

	client, err := perplexity.NewClientFromEnv(perplexity.Config{
		BaseURL:           cfg.Provider.BaseURL,
		RequestsPerSecond: cfg.Provider.RequestsPerSecond,
		BurstSize:         cfg.Provider.BurstSize,
		NoRateLimit:       cfg.Provider.RequestsPerSecond < 0,
	})
	if err != nil {
		return nil, err
	}

	searchService = services.NewSearchService(client, cfg.Timeout())
	return searchService, nil
}
