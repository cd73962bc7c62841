package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vietanh2810/eventpass-api/internal/db"
)

func migrateCmd(configPath *string) *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "migrate [up|down]",
		Short: "Apply or roll back the postgres schema migrations",
		Long: `Apply or roll back the embedded SQL migrations.

Examples:
  eventpass migrate up
  eventpass migrate down --steps 1`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := setup(*configPath)
			if err != nil {
				return err
			}
			dsn := databaseURL(conf)

			switch args[0] {
			case "up":
				err = db.MigrateUp(dsn)
			case "down":
				err = db.MigrateDown(dsn, steps)
			}
			if err != nil {
				return fmt.Errorf("migrate %s -> %w", args[0], err)
			}

			zap.L().Info("migrate command finished", zap.String("direction", args[0]))
			return nil
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	return cmd
}
