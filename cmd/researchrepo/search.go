package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/manuaishika/researchrepo/internal/api"
	"github.com/manuaishika/researchrepo/internal/debuglog"
	"github.com/manuaishika/researchrepo/internal/display"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Run a one-shot search and print the results",
	Long: `Search queries the backend once and prints video explanations and code
implementations for the query, rendered as formatted markdown. Suited for
scripting or a quick lookup without entering the interactive interface.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		defer debuglog.Close()

		query := strings.TrimSpace(strings.Join(args, " "))
		if query == "" {
			return fmt.Errorf("query cannot be empty")
		}

		category, _ := cmd.Flags().GetString("category")
		if category == "All" {
			category = ""
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
		defer cancel()

		client := api.NewClient(cfg)
		result, err := client.Search(ctx, query, category)
		if err != nil {
			return fmt.Errorf("%s", api.UserMessage(err, display.MsgGenericFailure))
		}

		var doc strings.Builder
		doc.WriteString("# Results for " + query + "\n\n")
		doc.WriteString(display.Markdown(display.Videos(result.Videos), "Video Explanations"))
		doc.WriteString("\n")
		doc.WriteString(display.Markdown(display.Repos(result.Repos), "Code Implementations"))

		plain, _ := cmd.Flags().GetBool("plain")
		if plain {
			fmt.Print(doc.String())
			return nil
		}

		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			fmt.Print(doc.String())
			return nil
		}

		rendered, err := r.Render(doc.String())
		if err != nil {
			fmt.Print(doc.String())
			return nil
		}

		fmt.Print(rendered)
		return nil
	},
}

func init() {
	searchCmd.Flags().String("category", "", "restrict results to a category")
	searchCmd.Flags().Bool("plain", false, "print raw markdown without terminal styling")

	rootCmd.AddCommand(searchCmd)
}
