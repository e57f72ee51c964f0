package admin

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/lrsproject/lrs/internal/infrastructure/auth"
)

type issuedSession struct {
	Cookie    string    `yaml:"cookie"`
	Token     string    `yaml:"token"`
	ExpiresAt time.Time `yaml:"expires_at"`
}

func newSessionCommand() *cobra.Command {
	var env string

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage user sessions",
	}
	addEnvFlag(cmd, &env)

	var (
		tenantID   uint
		externalID string
	)
	issue := &cobra.Command{
		Use:   "issue",
		Short: "Sign a session token for the /user/me routes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(env, func(rt *runtime) error {
				session := rt.cfg.Auth.Session
				token, expiresAt, err := auth.NewSessionService(session.Secret, session.ExpHours).Issue(tenantID, externalID)
				if err != nil {
					return err
				}
				return writeYAML(cmd.OutOrStdout(), issuedSession{
					Cookie:    session.CookieName,
					Token:     token,
					ExpiresAt: expiresAt,
				})
			})
		},
	}
	issue.Flags().UintVar(&tenantID, "tenant-id", 0, "Tenant of the user (required)")
	issue.Flags().StringVar(&externalID, "external-id", "", "External id of the user (required)")
	_ = issue.MarkFlagRequired("tenant-id")
	_ = issue.MarkFlagRequired("external-id")

	cmd.AddCommand(issue)
	return cmd
}
