package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/shared/logger"
)

func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Reconcile the database schema",
		Long:  `Bring the database schema up to date without starting the server. Safe to run repeatedly; steps that already hold are skipped.`,
		RunE:  run,
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Open(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close(db)

	reconciler := database.NewReconciler(db, logger.NewLogger())
	if err := reconciler.Run(cmd.Context()); err != nil {
		return fmt.Errorf("schema reconciliation failed: %w", err)
	}

	logger.Info("schema reconciliation completed")
	return nil
}
