// Package admin provides the operator commands that provision tenants and
// credentials and issue user sessions.
package admin

import (
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lrsproject/lrs/internal/infrastructure/config"
	"github.com/lrsproject/lrs/internal/infrastructure/database"
	"github.com/lrsproject/lrs/internal/interfaces/cli/bootstrap"
	"github.com/lrsproject/lrs/internal/shared/logger"
	"github.com/lrsproject/lrs/internal/shared/services/sanitize"
)

// NewCommands returns the tenant, credential and session command trees.
// They share the --env flag.
func NewCommands() []*cobra.Command {
	return []*cobra.Command{
		newTenantCommand(),
		newCredentialCommand(),
		newSessionCommand(),
	}
}

type runtime struct {
	cfg       *config.Config
	log       logger.Interface
	sanitizer sanitize.Sanitizer
}

// withRuntime bootstraps the process around fn and closes the database
// afterwards.
func withRuntime(env string, fn func(rt *runtime) error) error {
	cfg, log, err := bootstrap.Init(env)
	if err != nil {
		return err
	}
	defer database.Close()

	return fn(&runtime{cfg: cfg, log: log, sanitizer: sanitize.NewSanitizer()})
}

func addEnvFlag(cmd *cobra.Command, env *string) {
	cmd.PersistentFlags().StringVarP(env, "env", "e", "development", "Environment (development, test, production)")
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
