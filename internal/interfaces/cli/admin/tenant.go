package admin

import (
	"github.com/spf13/cobra"

	"github.com/lrsproject/lrs/internal/application/admin/dto"
	"github.com/lrsproject/lrs/internal/application/admin/usecases"
	"github.com/lrsproject/lrs/internal/infrastructure/database"
	"github.com/lrsproject/lrs/internal/infrastructure/repository"
)

func newTenantCommand() *cobra.Command {
	var env string

	cmd := &cobra.Command{
		Use:   "tenant",
		Short: "Manage tenants",
	}
	addEnvFlag(cmd, &env)

	var name string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a tenant",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(env, func(rt *runtime) error {
				uc := usecases.NewCreateTenantUseCase(repository.NewTenantRepository(database.Get()), rt.sanitizer, rt.log)
				created, err := uc.Execute(cmd.Context(), dto.CreateTenantRequest{Name: name})
				if err != nil {
					return err
				}
				return writeYAML(cmd.OutOrStdout(), created)
			})
		},
	}
	create.Flags().StringVarP(&name, "name", "n", "", "Tenant name (required)")
	_ = create.MarkFlagRequired("name")

	list := &cobra.Command{
		Use:   "list",
		Short: "List tenants",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(env, func(rt *runtime) error {
				uc := usecases.NewListTenantsUseCase(repository.NewTenantRepository(database.Get()), rt.log)
				tenants, err := uc.Execute(cmd.Context())
				if err != nil {
					return err
				}
				return writeYAML(cmd.OutOrStdout(), tenants)
			})
		},
	}

	cmd.AddCommand(create, list)
	return cmd
}
