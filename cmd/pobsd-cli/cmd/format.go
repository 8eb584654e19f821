package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"pobsd/internal/application/commands"
)

var (
	formatNormalizeDates bool
	formatSortByName     bool
	formatOutput         string
)

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Print the database in canonical form",
	Long: `Re-render every game of the database with its sixteen fields in order.
Ignored lines are dropped from the output.

Examples:
  pobsd-cli format > openbsd-games.db.new
  pobsd-cli format --normalize-dates --sort-name -o openbsd-games.db.new`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var w io.Writer = cmd.OutOrStdout()
		if formatOutput != "" {
			f, createErr := os.Create(formatOutput)
			if createErr != nil {
				return fmt.Errorf("failed to create output file: %w", createErr)
			}
			defer func() {
				if cerr := f.Close(); cerr != nil && err == nil {
					err = cerr
				}
			}()
			w = f
		}

		formatCmd := commands.NewFormatCommand(GetSource(), GetMode())
		formatCmd.NormalizeDates = formatNormalizeDates
		formatCmd.SortByName = formatSortByName

		res, err := formatCmd.Execute(cmd.Context(), w)
		if err != nil {
			return err
		}
		if res.HasErrors() {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", res.Err())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatCmd)
	formatCmd.Flags().BoolVar(&formatNormalizeDates, "normalize-dates", false, "write dates as YYYY-MM-DD")
	formatCmd.Flags().BoolVar(&formatSortByName, "sort-name", false, "order games by name instead of database order")
	formatCmd.Flags().StringVarP(&formatOutput, "output", "o", "", "write to a file instead of standard output")
}
