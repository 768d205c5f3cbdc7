package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/conduit-lang/cldispatch/internal/cli/ui"
	"github.com/conduit-lang/cldispatch/internal/inspect"
)

// NewTokenCommand creates the token command
func NewTokenCommand() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the inspect server",
		Long: `Sign a token with server.auth_secret. Clients pass it as
"Authorization: Bearer <token>" or, for the stats stream, as ?token=.

Examples:
  cldispatch token
  cldispatch token --subject dashboard --ttl 1h`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), ui.ConfigError(err.Error(), noColor(cmd)))
				return err
			}
			if ttl < 0 {
				return errors.New("--ttl cannot be negative")
			}

			auth, err := inspect.NewTokenAuth(cfg.Server.AuthSecret, ttl)
			if err != nil {
				return fmt.Errorf("%w (set server.auth_secret)", err)
			}
			token, err := auth.Issue(subject)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "cldispatch", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime (0 for no expiry)")
	return cmd
}
