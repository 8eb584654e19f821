package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pobsd/internal/application/commands"
)

var listCmd = &cobra.Command{
	Use:   "list [attribute]",
	Short: "List games or attribute values",
	Long: `Without arguments, list every game by name. With an attribute, list its
distinct values with the number of games having each.

Attributes: engine, runtime, genre, tag, year, dev, pub.

Examples:
  pobsd-cli list
  pobsd-cli list engines
  pobsd-cli list year`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		if len(args) == 0 {
			listCmd := commands.NewListGamesCommand(cat)
			games, err := listCmd.Execute(ctx)
			if err != nil {
				return err
			}
			printGames(cmd.OutOrStdout(), games)
			return nil
		}

		listCmd := commands.NewListItemsCommand(cat, args[0])
		items, err := listCmd.Execute(ctx)
		if err != nil {
			return err
		}

		for _, i := range items.Items {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d)\n", i.Name, i.Count())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
