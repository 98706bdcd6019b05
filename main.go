package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/jyokubov/portfolio/config"
	"github.com/jyokubov/portfolio/handlers"
	"github.com/jyokubov/portfolio/middleware"
	"github.com/jyokubov/portfolio/service"
	"github.com/jyokubov/portfolio/store"
	"github.com/jyokubov/portfolio/web"
)

func main() {
	_ = godotenv.Load()
	config.ValidateEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config:", err)
	}

	ctx := context.Background()
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

	images := newImageStore(ctx, cfg)
	if images == nil {
		log.Println("warning: no image storage configured; uploads will fail")
	}

	var sender handlers.MessageSender
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != "" {
		sender = service.NewTelegramClient(cfg.TelegramBotToken, cfg.TelegramChatID)
	} else {
		log.Println("warning: TELEGRAM_BOT_TOKEN / TELEGRAM_CHAT_ID not set; contact form will fail")
	}

	authHandler := &handlers.AuthHandler{
		DB:        db,
		JWTSecret: cfg.JWTSecret,
		Secure:    cfg.IsProduction(),
	}
	projectsHandler := &handlers.ProjectsHandler{DB: db}
	aboutHandler := &handlers.AboutHandler{DB: db}
	contactHandler := &handlers.ContactHandler{Sender: sender}
	uploadHandler := &handlers.UploadHandler{
		Images:   images,
		MaxBytes: cfg.MaxUploadBytes(),
	}

	renderer, err := web.NewRenderer(db, cfg.SiteURL, cfg.JWTSecret)
	if err != nil {
		log.Fatal("templates:", err)
	}

	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/logout", authHandler.Logout)
		r.Get("/auth/me", authHandler.Me)

		r.Get("/projects", projectsHandler.List)
		r.Get("/projects/{id}", projectsHandler.Get)
		r.Get("/about", aboutHandler.Get)
		r.Post("/contact", contactHandler.Submit)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWTSecret))
			r.Post("/projects", projectsHandler.Create)
			r.Patch("/projects/{id}", projectsHandler.Update)
			r.Delete("/projects/{id}", projectsHandler.Delete)
			r.Patch("/about", aboutHandler.Update)
			r.Post("/upload", uploadHandler.Upload)
		})
	})

	renderer.Routes(r)

	server := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		log.Println("server listening on :" + cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("shutdown:", err)
	}
}

func newImageStore(ctx context.Context, cfg *config.Config) service.ImageStore {
	switch cfg.StorageBackend {
	case "s3":
		if cfg.S3Bucket == "" {
			return nil
		}
		s3Service, err := service.NewS3Service(ctx, cfg.S3Bucket, cfg.S3Region, cfg.S3Endpoint,
			cfg.S3AccessKeyID, cfg.S3SecretKey, cfg.S3PublicBaseURL)
		if err != nil {
			log.Fatal("s3:", err)
		}
		return s3Service
	default:
		if cfg.CloudinaryCloudName == "" {
			return nil
		}
		cld, err := service.NewCloudinaryService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			log.Fatal("cloudinary:", err)
		}
		return cld
	}
}
