package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conduit-lang/cldispatch/internal/cli/ui"
)

// NewStatsCommand creates the stats command
func NewStatsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show call statistics stored in the configured sink",
		Long: `Read the call counts and cumulative times that "cldispatch serve" flushed
to the SQL or Redis sink named in stats.sink.

Examples:
  cldispatch stats
  cldispatch stats --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), ui.ConfigError(err.Error(), noColor(cmd)))
				return err
			}

			store, err := openStore(cmd.Context(), cfg.Stats)
			if err != nil {
				return err
			}
			defer store.Close()

			stats, err := store.Read(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeIndentedJSON(cmd, stats)
			}

			table := ui.NewTable(cmd.OutOrStdout(), noColor(cmd), "IMPLEMENTATION", "ENTRY POINT", "CALLS", "TOTAL", "AVERAGE")
			for _, st := range stats {
				table.AddRow(st.Implementation, st.EntryPoint, fmt.Sprint(st.Calls), st.Duration.String(), st.Average().String())
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
