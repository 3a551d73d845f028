package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/deepthansh-m/WhisperNet/api/feed"
	"github.com/deepthansh-m/WhisperNet/api/location"
	"github.com/deepthansh-m/WhisperNet/api/repositories"
	"github.com/deepthansh-m/WhisperNet/api/router"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "pgx"
	}
	dsn := os.Getenv("DB_SOURCE")
	if dsn == "" {
		log.Fatal("DB_SOURCE is not set")
	}
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Robust retry: wait up to ~60s for DB to be ready
	if err := waitForDB(db, 60*time.Second); err != nil {
		log.Fatalf("cannot ping database after retries: %v", err)
	}

	changes := repositories.NewChangeFeed()
	var userRepo repositories.UserRepository
	var postRepo repositories.PostRepository

	switch driver {
	case "pgx":
		if err := repositories.InitPostgresSchema(db); err != nil {
			log.Fatalf("schema init failed: %v", err)
		}
		userRepo = repositories.NewUserRepository(db)
		postRepo = repositories.NewPostRepository(db, changes)
	case "sqlite3":
		if err := repositories.InitSQLiteSchema(db); err != nil {
			log.Fatalf("schema init failed: %v", err)
		}
		userRepo = repositories.NewSQLiteUserRepository(db)
		postRepo = repositories.NewSQLitePostRepository(db, changes)
	default:
		log.Fatalf("unsupported DB_DRIVER: %s", driver)
	}

	log.Printf("Connected to %s database", driver)

	watcher := feed.NewWatcher(postRepo, changes, 5*time.Second)
	fixes := location.NewCache()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Server running on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, router.CreateRouter(userRepo, postRepo, userRepo, watcher, fixes)))
}

// waitForDB attempts to Ping the DB with exponential backoff until the timeout elapses.
func waitForDB(db *sql.DB, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	backoff := 500 * time.Millisecond
	for {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := db.PingContext(ctx)
		cancel()
		if err == nil {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("timeout waiting for DB: %w", err)
		}
		log.Printf("Waiting for database... (%v)\n", err)
		time.Sleep(backoff)
		if backoff < 5*time.Second {
			backoff *= 2
		}
	}
}
