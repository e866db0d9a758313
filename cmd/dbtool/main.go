package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"route-roster-service/internal/adapters/repositories"
	"route-roster-service/internal/config"
	"route-roster-service/internal/platform/db"
	"route-roster-service/internal/platform/logger"
	"route-roster-service/internal/services"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	log     = logger.New("dbtool")
)

var rootCmd = &cobra.Command{
	Use:          "dbtool",
	Short:        "Database maintenance for the roster service",
	SilenceUsage: true,
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Create the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), func(ctx context.Context, cfg *config.Config, conn *sql.DB) error {
			log.Infof("schema ready")
			return nil
		})
	},
}

var checklistCmd = &cobra.Command{
	Use:   "checklist",
	Short: "Add missing catalog items to the inspection checklist",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), func(ctx context.Context, cfg *config.Config, conn *sql.DB) error {
			repo := repositories.NewSQLInspectionRepository(conn, cfg.Storage.Backend)
			added, err := services.InitializeChecklist(ctx, repo, time.Now())
			if err != nil {
				return err
			}
			log.Infof("checklist ready, %d items added", added)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import <movements.json>",
	Short: "Import sign ledger movements from a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), func(ctx context.Context, cfg *config.Config, conn *sql.DB) error {
			repo := repositories.NewSQLMovementRepository(conn, cfg.Storage.Backend)
			n, err := repositories.SeedMovementsFromJSON(ctx, repo, args[0], cfg.Signs.UnitCost)
			if err != nil {
				return err
			}
			log.Infof("imported %d movements", n)
			return nil
		})
	},
}

func init() {
	def := os.Getenv("CONFIG_PATH")
	if def == "" {
		def = "config.yaml"
	}
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", def, "configuration file")
	rootCmd.AddCommand(schemaCmd, checklistCmd, importCmd)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Infof("no .env file found, using environment variables")
	}

	if err := rootCmd.Execute(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

// withDB opens the configured database, makes sure the schema exists and
// runs fn.
func withDB(ctx context.Context, fn func(context.Context, *config.Config, *sql.DB) error) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	conn, err := db.Open(cfg.Storage.Backend, cfg.Storage.DSN())
	if err != nil {
		return err
	}
	defer conn.Close()

	log.Debugf("initializing database schema backend=%s", cfg.Storage.Backend)
	if err := repositories.InitSchema(ctx, conn, cfg.Storage.Backend); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}

	return fn(ctx, cfg, conn)
}
