package admin

import (
	"github.com/spf13/cobra"

	"github.com/lrsproject/lrs/internal/application/admin/dto"
	"github.com/lrsproject/lrs/internal/application/admin/usecases"
	"github.com/lrsproject/lrs/internal/infrastructure/auth"
	"github.com/lrsproject/lrs/internal/infrastructure/database"
	"github.com/lrsproject/lrs/internal/infrastructure/repository"
)

func newCredentialCommand() *cobra.Command {
	var env string

	cmd := &cobra.Command{
		Use:   "credential",
		Short: "Manage API credentials",
	}
	addEnvFlag(cmd, &env)

	cmd.AddCommand(newCredentialCreateCommand(&env), newCredentialListCommand(&env))
	return cmd
}

func newCredentialCreateCommand(env *string) *cobra.Command {
	var (
		req      dto.CreateCredentialRequest
		tenantID uint
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Issue a key and secret",
		Long: `Issue a new credential. The secret is printed once and cannot be
recovered afterwards. Omit --tenant-id to create a global credential.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("tenant-id") {
				req.TenantID = &tenantID
			}

			return withRuntime(*env, func(rt *runtime) error {
				gdb := database.Get()
				uc := usecases.NewCreateCredentialUseCase(
					repository.NewCredentialRepository(gdb),
					repository.NewTenantRepository(gdb),
					auth.NewBcryptSecretHasher(rt.cfg.Auth.Password.BcryptCost),
					rt.sanitizer,
					rt.log,
				)
				issued, err := uc.Execute(cmd.Context(), req)
				if err != nil {
					return err
				}
				return writeYAML(cmd.OutOrStdout(), issued)
			})
		},
	}

	cmd.Flags().StringVarP(&req.Name, "name", "n", "", "Credential name (required)")
	cmd.Flags().StringVar(&req.Description, "description", "", "What the credential's data is used for")
	cmd.Flags().UintVar(&tenantID, "tenant-id", 0, "Tenant the credential belongs to")
	cmd.Flags().BoolVar(&req.Read, "read", false, "Allow reads")
	cmd.Flags().BoolVar(&req.Write, "write", false, "Allow statement writes and sharing changes")
	cmd.Flags().BoolVar(&req.Datashare, "datashare", false, "List the credential in users' data uses")
	cmd.Flags().BoolVar(&req.Anonymous, "anonymous", false, "Mark the credential as consuming anonymized data")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCredentialListCommand(env *string) *cobra.Command {
	var tenantID uint

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter *uint
			if cmd.Flags().Changed("tenant-id") {
				filter = &tenantID
			}

			return withRuntime(*env, func(rt *runtime) error {
				uc := usecases.NewListCredentialsUseCase(repository.NewCredentialRepository(database.Get()), rt.log)
				credentials, err := uc.Execute(cmd.Context(), filter)
				if err != nil {
					return err
				}
				return writeYAML(cmd.OutOrStdout(), credentials)
			})
		},
	}

	cmd.Flags().UintVar(&tenantID, "tenant-id", 0, "Only list credentials of this tenant")
	return cmd
}
