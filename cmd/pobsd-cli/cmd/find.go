package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pobsd/internal/application/commands"
	"pobsd/internal/catalog"
	"pobsd/internal/domain"
)

var findCmd = &cobra.Command{
	Use:   "find <attribute> <value>",
	Short: "Find games by exact attribute value",
	Long: `List the games having exactly the given value. The attribute is one of
name, engine, runtime, genre, tag, year, dev or pub.

Examples:
  pobsd-cli find engine Godot
  pobsd-cli find genre "Turn-based strategy"
  pobsd-cli find name Celeste`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		findCmd := commands.NewFindCommand(cat, args[0], args[1])
		res, err := findCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}

		printGames(cmd.OutOrStdout(), res)
		return nil
	},
}

var (
	filterFlags catalog.Filter
	filterAny   bool
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter games by substring patterns",
	Long: `List the games matching case-insensitive substring patterns. By default
a game must match every pattern given; with --any one is enough.

Examples:
  pobsd-cli filter --engine unity --year 201
  pobsd-cli filter --any --dev "zachtronics" --pub "zachtronics"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		filterCmd := commands.NewFilterCommand(cat, filterFlags, filterAny)
		res, err := filterCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}

		printGames(cmd.OutOrStdout(), res)
		return nil
	},
}

func printGames(w io.Writer, res catalog.QueryResult[*domain.Game]) {
	if res.Count == 0 {
		fmt.Fprintln(w, "No games found")
		return
	}
	for _, g := range res.Items {
		if g.Year != "" {
			fmt.Fprintf(w, "%d %s (%s)\n", g.ID, g.Name, g.Year)
		} else {
			fmt.Fprintf(w, "%d %s\n", g.ID, g.Name)
		}
	}
}

func init() {
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(filterCmd)

	filterCmd.Flags().StringVar(&filterFlags.Name, "name", "", "pattern for the game name")
	filterCmd.Flags().StringVar(&filterFlags.Engine, "engine", "", "pattern for the engine")
	filterCmd.Flags().StringVar(&filterFlags.Runtime, "runtime", "", "pattern for the runtime")
	filterCmd.Flags().StringVar(&filterFlags.Genre, "genre", "", "pattern for any genre")
	filterCmd.Flags().StringVar(&filterFlags.Tag, "tag", "", "pattern for any tag")
	filterCmd.Flags().StringVar(&filterFlags.Year, "year", "", "pattern for the year")
	filterCmd.Flags().StringVar(&filterFlags.Dev, "dev", "", "pattern for the developer")
	filterCmd.Flags().StringVar(&filterFlags.Publisher, "pub", "", "pattern for the publisher")
	filterCmd.Flags().BoolVar(&filterAny, "any", false, "match games matching at least one pattern")
}
