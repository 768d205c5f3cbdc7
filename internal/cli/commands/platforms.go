package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conduit-lang/cldispatch/internal/cli/ui"
	"github.com/conduit-lang/cldispatch/internal/inspect"
)

// NewPlatformsCommand creates the platforms command
func NewPlatformsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "platforms",
		Short: "Attach the configured drivers and list their platforms",
		Long: `Attach every driver from the configuration, enumerate platforms the way
an application would, and print what each platform reports about itself.

Examples:
  cldispatch platforms
  cldispatch platforms --json
  CLDISPATCH_LOADER_LAYERS=calltrace CLDISPATCH_LOG_LEVEL=debug cldispatch platforms`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), ui.ConfigError(err.Error(), noColor(cmd)))
				return err
			}

			s, err := openSession(cmd.Context(), cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			platforms, err := inspect.DescribePlatforms(s.loader)
			if err != nil {
				return err
			}
			if asJSON {
				return writeIndentedJSON(cmd, platforms)
			}

			out := cmd.OutOrStdout()
			table := ui.NewTable(out, noColor(cmd), "HANDLE", "NAME", "VENDOR", "VERSION")
			for _, p := range platforms {
				table.AddRow(p.Handle, p.Name, p.Vendor, p.Version)
			}
			table.Render()
			fmt.Fprintf(out, "\n%d platforms from %d implementations\n", len(platforms), len(s.loader.Implementations()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
