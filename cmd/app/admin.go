package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietanh2810/eventpass-api/internal/repository"
	"github.com/vietanh2810/eventpass-api/internal/repository/dao"
	"github.com/vietanh2810/eventpass-api/internal/service"
)

func adminCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage dashboard administrators",
	}

	cmd.AddCommand(adminCreateCmd(configPath))

	return cmd
}

func adminCreateCmd(configPath *string) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an administrator account",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := setup(*configPath)
			if err != nil {
				return err
			}

			database, err := openDatabase(conf)
			if err != nil {
				return err
			}

			svc := service.NewAuthService(repository.NewAdminRepository(dao.NewAdminDAO(database)))
			admin, err := svc.CreateAdmin(cmd.Context(), username, password)
			if err != nil {
				return fmt.Errorf("svc.CreateAdmin -> %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created admin %q (id %d)\n", admin.Username, admin.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "admin username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "admin password (10+ chars with a letter, a digit and a symbol)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
