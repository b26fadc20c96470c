package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-site/api"
	"github.com/rpupo63/portfolio-site/auth"
	"github.com/rpupo63/portfolio-site/database"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rpupo63/portfolio-site/portfolio"
	"github.com/rpupo63/portfolio-site/services"
	"github.com/rpupo63/portfolio-site/storage"
)

const shutdownTimeout = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	RunE: func(cmd *cobra.Command, _ []string) error {
		db, err := database.Open(cfg)
		if err != nil {
			return err
		}
		if err := database.Migrate(db); err != nil {
			return err
		}
		log.Info().Msg("database migrated")
		return nil
	},
}

var (
	adminEmail    string
	adminPassword string
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create a user with the admin role",
	RunE: func(cmd *cobra.Command, _ []string) error {
		db, err := database.Open(cfg)
		if err != nil {
			return err
		}
		user, err := auth.CreateAdmin(cmd.Context(), database.New(db).UserRepo(), adminEmail, adminPassword)
		if err != nil {
			return err
		}
		log.Info().Str("userID", user.ID.String()).Str("email", user.Email).Msg("admin created")
		return nil
	},
}

var modelsOutPath string

var generateModelsCmd = &cobra.Command{
	Use:   "generate-models",
	Short: "Generate gorm query helpers from the models",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDB(func(db *gorm.DB) error {
			return models.GenerateModels(db, modelsOutPath)
		})
	},
}

var columnReportCmd = &cobra.Command{
	Use:   "column-report",
	Short: "Report database columns missing from the models",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDB(models.PrintColumnReport)
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "Admin e-mail address")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "Admin password (at least 8 characters)")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")

	generateModelsCmd.Flags().StringVar(&modelsOutPath, "out", "./database/query", "Output directory for generated code")
}

func withDB(fn func(db *gorm.DB) error) error {
	db, err := database.Open(cfg)
	if err != nil {
		return err
	}
	return fn(db)
}

func runServe(cmd *cobra.Command, _ []string) error {
	db, err := database.Open(cfg)
	if err != nil {
		return err
	}
	currentDB := database.New(db)

	buckets, err := storage.NewBuckets(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}

	server, err := api.NewServer(cfg, api.Dependencies{
		Stores: portfolio.Stores{
			Settings:    currentDB.SiteSettingsRepo(),
			Projects:    currentDB.ProjectRepo(),
			CaseStudies: currentDB.CaseStudyRepo(),
			Messages:    currentDB.ContactMessageRepo(),
		},
		Users:   currentDB.UserRepo(),
		Buckets: buckets,
		Mailer:  services.NewMailer(cfg),
	})
	if err != nil {
		return fmt.Errorf("initialize server: %w", err)
	}

	errChannel := make(chan error, 2)

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(shutdownTimeout)
	return nil
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
