package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/blognest/backend/api"
	"github.com/blognest/backend/auth"
	"github.com/blognest/backend/config"
	"github.com/blognest/backend/database"
	"github.com/blognest/backend/services"
	"github.com/blognest/backend/storage"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	cfg := config.New()

	connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		config.GetString(cfg, "DB_HOST", "localhost"),
		config.GetString(cfg, "DB_USER", "postgres"),
		config.GetString(cfg, "DB_PASSWORD", ""),
		config.GetString(cfg, "DB_NAME", "blognest"),
		config.GetString(cfg, "DB_PORT", "5432"),
		config.GetString(cfg, "DB_SSLMODE", "disable"),
	)

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
		fmt.Printf("Error enabling uuid-ossp extension: %v\n", err)
		os.Exit(1)
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		fmt.Printf("Error testing database connection: %v\n", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		fmt.Printf("Error migrating database: %v\n", err)
		os.Exit(1)
	}

	currentDB := database.New(db)

	tokens, err := auth.NewTokenService(
		config.GetString(cfg, "JWT_SECRET", ""),
		time.Duration(config.GetInt(cfg, "TOKEN_TTL_MINUTES", 0))*time.Minute,
	)
	if err != nil {
		fmt.Printf("Error initializing token service: %v\n", err)
		os.Exit(1)
	}

	store, err := newImageStore(cfg)
	if err != nil {
		fmt.Printf("Error initializing image storage: %v\n", err)
		os.Exit(1)
	}
	images := services.NewImageService(store)

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB, tokens, images)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// newImageStore picks S3 when a bucket is configured, local disk otherwise.
func newImageStore(cfg map[string]string) (storage.Store, error) {
	if bucket := config.GetString(cfg, "AWS_S3_BUCKET", ""); bucket != "" {
		return storage.NewS3Store(context.Background(), bucket, config.GetString(cfg, "AWS_S3_PREFIX", "blogs"))
	}

	uploadDir := config.GetString(cfg, "UPLOAD_DIR", filepath.Join(os.TempDir(), "uploads", "blogs"))
	return storage.NewLocalStore(uploadDir)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
