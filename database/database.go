package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	"github.com/rpupo63/portfolio-site/config"
	"github.com/rpupo63/portfolio-site/models"
)

type Database struct {
	siteSettingsRepo   *SiteSettingsRepo
	projectRepo        *ProjectRepo
	caseStudyRepo      *CaseStudyRepo
	contactMessageRepo *ContactMessageRepo
	userRepo           *UserRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		siteSettingsRepo:   NewSiteSettingsRepo(db),
		projectRepo:        NewProjectRepo(db),
		caseStudyRepo:      NewCaseStudyRepo(db),
		contactMessageRepo: NewContactMessageRepo(db),
		userRepo:           NewUserRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) SiteSettingsRepo() *SiteSettingsRepo {
	return d.siteSettingsRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) CaseStudyRepo() *CaseStudyRepo {
	return d.caseStudyRepo
}

func (d Database) ContactMessageRepo() *ContactMessageRepo {
	return d.contactMessageRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

// Open connects to PostgreSQL using DATABASE_URL. When DB_REPLICA_URL is set,
// reads are routed to the replica through dbresolver.
func Open(c map[string]string) (*gorm.DB, error) {
	dsn := config.GetString(c, "DATABASE_URL", "")
	if dsn == "" {
		return nil, errors.New("DATABASE_URL must be set")
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Duration(config.GetInt(c, "DB_SLOW_QUERY_SECONDS", 10)) * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if replica := config.GetString(c, "DB_REPLICA_URL", ""); replica != "" {
		err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{postgres.New(postgres.Config{
				DSN:                  replica,
				PreferSimpleProtocol: true,
			})},
			Policy: dbresolver.RandomPolicy{},
		}))
		if err != nil {
			return nil, fmt.Errorf("register read replica: %w", err)
		}
	}

	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return nil, fmt.Errorf("test database connection: %w", err)
	}

	return db, nil
}

// Migrate creates or updates every table the site uses.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error; err != nil {
		return fmt.Errorf("enable pgcrypto: %w", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
