package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pobsd/internal/application/commands"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search games",
	Long: `Search games by name, developer or publisher.

Results are ranked by relevance using fuzzy matching.

Examples:
  pobsd-cli search celeste
  pobsd-cli search "double fine"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		searchCmd := commands.NewSearchCommand(cat, args[0])
		results, err := searchCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(out, "No results found")
			return nil
		}

		for _, r := range results {
			fmt.Fprintf(out, "%d %s", r.Game.ID, r.Game.Name)
			if r.Game.Dev != "" {
				fmt.Fprintf(out, " [%s]", r.Game.Dev)
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
