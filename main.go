package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rpupo63/portfolio-site/config"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio site and admin panel",
	Long: `Serves the public portfolio site, its JSON API and the admin panel.

Available commands:
  serve            - Start the HTTP server
  migrate          - Create or update the database tables
  create-admin     - Create a user with the admin role
  generate-models  - Generate gorm query helpers from the models
  column-report    - Report database columns missing from the models`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		c, err := config.Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c
		setupLogging(cfg)
		return nil
	},
}

// cfg is loaded once before any command runs.
var cfg map[string]string

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(createAdminCmd)
	rootCmd.AddCommand(generateModelsCmd)
	rootCmd.AddCommand(columnReportCmd)
}

// setupLogging configures the global zerolog logger from LOG_LEVEL and
// LOG_FORMAT.
func setupLogging(c map[string]string) {
	level, err := zerolog.ParseLevel(strings.ToLower(config.GetString(c, "LOG_LEVEL", "info")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if config.GetString(c, "LOG_FORMAT", "console") == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
