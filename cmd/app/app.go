package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vietanh2810/eventpass-api/internal/config"
	"github.com/vietanh2810/eventpass-api/internal/db"
	"github.com/vietanh2810/eventpass-api/internal/logger"
	"github.com/vietanh2810/eventpass-api/internal/repository/dao"
)

const defaultConfigPath = "./cmd/app/config.yml"

var Version = "dev"

// Execute runs the eventpass command tree; with no subcommand it serves the API.
func Execute() error {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "eventpass",
		Short:         "EventPass - event registration, payments and door check-in",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Start(configPath)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to the YAML config file")

	rootCmd.AddCommand(serveCmd(&configPath))
	rootCmd.AddCommand(migrateCmd(&configPath))
	rootCmd.AddCommand(adminCmd(&configPath))
	rootCmd.AddCommand(seedCmd(&configPath))
	rootCmd.AddCommand(scanCmd(&configPath))

	return rootCmd.Execute()
}

func setup(configPath string) (*config.AppConfig, error) {
	conf, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return nil, fmt.Errorf("failed to initialize logger -> %w", err)
	}

	return conf, nil
}

// databaseURL prefers DATABASE_URL over the postgres section.
func databaseURL(conf *config.AppConfig) string {
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		return dbURL
	}
	return conf.Postgres.DSN()
}

// openDatabase connects to the configured store and brings its schema up to
// date when auto_migrate is on. SQLite files get their schema from gorm.
func openDatabase(conf *config.AppConfig) (*gorm.DB, error) {
	if conf.SQLite != nil && conf.SQLite.Path != "" {
		sqliteDB, err := db.OpenSQLite(conf.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database -> %w", err)
		}
		if err = dao.InitTables(sqliteDB); err != nil {
			return nil, fmt.Errorf("failed to initialize tables -> %w", err)
		}
		zap.L().Info("using sqlite database", zap.String("path", conf.SQLite.Path))
		return sqliteDB, nil
	}

	dsn := databaseURL(conf)
	if conf.Postgres.AutoMigrate {
		if err := db.MigrateUp(dsn); err != nil {
			return nil, fmt.Errorf("failed to migrate database -> %w", err)
		}
	}

	postgresDB, err := db.OpenPostgresWithURL(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database -> %w", err)
	}

	return postgresDB, nil
}
