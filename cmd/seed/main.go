// Seed creates the first admin user. Run once after setting up the environment:
//
//	ADMIN_EMAIL=you@example.com ADMIN_PASSWORD=... ADMIN_NAME="Your Name" go run ./cmd/seed
//
// Safe to re-run: it skips when the email already exists.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/jyokubov/portfolio/config"
	"github.com/jyokubov/portfolio/models"
	"github.com/jyokubov/portfolio/store"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	email := flag.String("email", os.Getenv("ADMIN_EMAIL"), "admin email")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password")
	name := flag.String("name", os.Getenv("ADMIN_NAME"), "admin display name")
	flag.Parse()

	if *email == "" || *password == "" || *name == "" {
		log.Fatal("email, password, and name are required (flags or ADMIN_EMAIL/ADMIN_PASSWORD/ADMIN_NAME)")
	}
	if len(*password) < 6 {
		log.Fatal("password must be at least 6 characters")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := store.NewMongoDB(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatal("mongodb:", err)
	}
	defer func() {
		if err := db.Disconnect(context.Background()); err != nil {
			log.Println("mongodb disconnect:", err)
		}
	}()
	if err := db.EnsureIndexes(ctx); err != nil {
		log.Fatal("mongodb indexes:", err)
	}

	existing, err := db.AdminByEmail(ctx, *email)
	if err != nil {
		log.Fatal("lookup:", err)
	}
	if existing != nil {
		log.Printf("admin %q already exists, skipping", *email)
		return
	}

	// Hashing is explicit here, not a store side effect
	hash, err := bcrypt.GenerateFromPassword([]byte(*password), 12)
	if err != nil {
		log.Fatal("bcrypt:", err)
	}
	now := time.Now().UTC()
	id, err := db.CreateAdmin(ctx, &models.Admin{
		Email:     *email,
		Password:  string(hash),
		Name:      *name,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		log.Fatal("create admin:", err)
	}
	log.Printf("admin created: %s (%s) — you can now log in at /admin/login", *email, id.Hex())
}
