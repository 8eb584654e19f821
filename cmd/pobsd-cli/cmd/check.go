package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pobsd/internal/application/commands"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the database for malformed lines",
	Long: `Parse the whole database and report every line that was ignored,
field names that are not part of the format, and games listed twice.

Exits with a non-zero status when a line was ignored.

Examples:
  pobsd-cli check
  pobsd-cli check --strict -d ./openbsd-games.db`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		checkCmd := commands.NewCheckCommand(GetSource(), GetMode())
		report, err := checkCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %d games, %d lines (%s)\n", report.Source, report.Games, report.Lines, report.Mode)
		for _, line := range report.BadLines {
			fmt.Fprintf(out, "line %d: ignored\n", line)
		}
		for _, u := range report.Unknown {
			fmt.Fprintf(out, "line %d: unknown field %q\n", u.Line, u.Field.Left)
		}
		for _, name := range report.Duplicates {
			fmt.Fprintf(out, "duplicate game: %s\n", name)
		}

		if !report.OK() {
			if report.Halted {
				return fmt.Errorf("database is malformed: stopped at line %d", report.BadLines[len(report.BadLines)-1])
			}
			return fmt.Errorf("database is malformed: %d line(s) ignored", len(report.BadLines))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
