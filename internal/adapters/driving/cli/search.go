package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IngLP/PerplexitySearchMCP/internal/core/domain"
)

var (
	searchLimit   int
	searchJSON    bool
	searchDomains []string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Run a one-shot Perplexity search",
	Long: `Runs a single web search through the same validated, bounded,
retried pipeline the MCP tool uses, and prints the results.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().StringArrayVar(&searchDomains, "domain", nil, "restrict results to a hostname (repeatable)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	svc, err := initSearchService()
	if err != nil {
		return err
	}

	var filter []string
	if len(searchDomains) > 0 {
		filter = searchDomains
	}

	results, err := svc.Search(cmd.Context(), query, &searchLimit, filter)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}

	return outputSearchTable(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	data, err := json.MarshalIndent(map[string]any{"results": results}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		title := results[i].Title
		if title == "" {
			title = "(untitled)"
		}
		cmd.Printf("[%d] %s\n", i+1, title)
		cmd.Printf("    %s\n", results[i].URL)
		if results[i].Snippet != "" {
			cmd.Printf("    %s\n", results[i].Snippet)
		}
		if results[i].LastUpdate != "" {
			cmd.Printf("    Last update: %s\n", results[i].LastUpdate)
		}
		cmd.Println()
	}
	return nil
}
