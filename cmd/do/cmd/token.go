package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/templui/healthjournal/internal/config"
	"github.com/templui/healthjournal/internal/service"
)

// TokenCmd issues a bearer token for local testing against the API.
func TokenCmd() *cobra.Command {
	var userID string
	var expiry time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for a user id",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID == "" {
				return errors.New("--user is required")
			}

			cfg := config.Load()
			if expiry == 0 {
				expiry = cfg.JWTExpiry
			}

			token, expiresAt, err := service.NewAuthService(cfg.JWTSecret, expiry).IssueToken(userID)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", expiresAt.Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User id to put in the token")
	cmd.Flags().DurationVar(&expiry, "expiry", 0, "Token lifetime (default: JWT_EXPIRY)")

	return cmd
}
