package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"pobsd/internal/application/commands"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <game-id>",
	Short: "Show a game",
	Long: `Show every field of a game, in database form or as JSON.

Examples:
  pobsd-cli show 42
  pobsd-cli show 42 --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		showCmd := commands.NewShowCommand(cat, args[0])
		game, err := showCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if showJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(game)
		}

		fmt.Fprintln(out, game.String())
		for _, link := range game.StoreLinks() {
			fmt.Fprintf(out, "  %-12s %s\n", link.Kind, link.URL)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "print the game as JSON")
}
