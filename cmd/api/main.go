// cmd/api/main.go
// Main entry point: bootstraps all components and starts the server.

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/orbitcampus/orbit-backend/internal/auth"
	"github.com/orbitcampus/orbit-backend/internal/common/database"
	"github.com/orbitcampus/orbit-backend/internal/common/utils"
	"github.com/orbitcampus/orbit-backend/internal/config"
	"github.com/orbitcampus/orbit-backend/internal/cosmic"
	"github.com/orbitcampus/orbit-backend/internal/matching"
	"github.com/orbitcampus/orbit-backend/internal/notification"
	"github.com/orbitcampus/orbit-backend/internal/profile"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	log.Println("========================================")
	log.Println("🪐 Starting Orbit Cosmic Matchmaking API")
	log.Println("========================================")

	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️  No .env file found (%v), using environment variables", err)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("❌ Configuration validation failed: ", err)
	}

	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Failed to connect to PostgreSQL: ", err)
	}
	defer db.Close()
	log.Println("✅ Connected to PostgreSQL")

	if err := runMigrations(db); err != nil {
		log.Fatal("❌ Migrations failed: ", err)
	}
	log.Println("✅ Database schema up to date")

	// Redis is optional: without it the verification code flow is skipped
	// and the matching run lock falls back to in-process only.
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Printf("⚠️  Redis unavailable (%v), continuing without it", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
			log.Println("✅ Connected to Redis")
		}
	}

	// Notification providers
	var emailProvider notification.EmailProvider
	switch cfg.EmailProvider {
	case "sendgrid":
		emailProvider = notification.NewSendGridEmailProvider(cfg.SendGridAPIKey, cfg.EmailFrom)
	case "smtp":
		emailProvider = notification.NewSMTPEmailProvider(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.EmailFrom)
	default:
		emailProvider = notification.NewMockEmailProvider()
	}

	var smsProvider notification.SMSProvider
	if cfg.SMSProvider == "twilio" {
		smsProvider = notification.NewTwilioSMSProvider(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)
	} else {
		smsProvider = notification.NewMockSMSProvider()
	}

	// Repositories and services
	userRepo := profile.NewPostgresRepository(db)
	matchRepo := matching.NewPostgresRepository(db)

	notificationService := notification.NewService(emailProvider, smsProvider, userRepo)

	profileService := profile.NewService(userRepo, profile.NewSunOnlyChartService())
	profileHandler := profile.NewHandler(profileService)

	authService := auth.NewService(userRepo, redisClient, notificationService, &auth.Config{
		JWTSecret:           cfg.JWTSecret,
		AccessTokenExpiry:   cfg.AccessTokenExpiry,
		BCryptCost:          cfg.BCryptCost,
		AllowedEmailDomains: cfg.AllowedEmailDomains,
		VerificationExpiry:  cfg.VerificationExpiry,
	})
	authHandler := auth.NewHandler(authService)
	authMiddleware := auth.NewMiddleware(authService)

	// Match descriptions come from Gemini when a key is configured and a
	// local template generator otherwise.
	var describer matching.Describer
	if cfg.GeminiAPIKey != "" {
		gemini, err := cosmic.NewGeminiDescriber(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Printf("⚠️  Gemini unavailable (%v), using template descriptions", err)
			describer = cosmic.NewTemplateDescriber()
		} else {
			describer = gemini
			log.Println("✅ Gemini description generation enabled")
		}
	} else {
		describer = cosmic.NewTemplateDescriber()
	}

	matchingService := matching.NewService(
		matchRepo, profileService, profileService, describer,
		notificationService, redisClient, cfg.MatchRevealDate,
	)
	matchingHandler := matching.NewHandler(matchingService, cfg.AdminSecret)

	// Reveal scheduler
	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()
	go matching.NewRevealScheduler(matchingService, cfg.MatchRevealDate).Start(schedulerCtx)

	// Router
	router := mux.NewRouter()
	router.Use(loggingMiddleware)
	router.Use(corsMiddleware)

	router.HandleFunc("/health", healthHandler).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	auth.RegisterRoutes(router, authHandler)
	profile.RegisterRoutes(router, profileHandler, authMiddleware.Authenticate)
	matching.RegisterRoutes(router, matchingHandler, authMiddleware.Authenticate)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server listening on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Server failed: ", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	stopScheduler()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("❌ Forced shutdown: ", err)
	}

	log.Println("👋 Server stopped")
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "orbit-backend",
	})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.RequestURI, time.Since(start))
	})
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// runMigrations creates the schema if it does not exist yet. The app owns
// its schema; there is no external migration tool in the deployment.
func runMigrations(db *sqlx.DB) error {
	schema := `
    CREATE TABLE IF NOT EXISTS users (
        id BIGSERIAL PRIMARY KEY,
        email TEXT NOT NULL UNIQUE,
        password_hash TEXT,
        is_guest BOOLEAN NOT NULL DEFAULT FALSE,
        name TEXT NOT NULL DEFAULT '',
        dob DATE,
        birth_time TEXT,
        birth_location TEXT,
        phone TEXT,
        instagram TEXT,
        hobbies TEXT[] NOT NULL DEFAULT '{}',
        year TEXT,
        vibe_answers JSONB NOT NULL DEFAULT '{}',
        looking_for TEXT,
        gender TEXT,
        interested_in TEXT[] NOT NULL DEFAULT '{}',
        sun_sign TEXT,
        moon_sign TEXT,
        rising_sign TEXT,
        school TEXT NOT NULL DEFAULT '',
        onboarding_complete BOOLEAN NOT NULL DEFAULT FALSE,
        email_verified BOOLEAN NOT NULL DEFAULT FALSE,
        created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
        updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
    );

    CREATE TABLE IF NOT EXISTS matches (
        id BIGSERIAL PRIMARY KEY,
        user1_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
        user2_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
        compatibility_score INTEGER NOT NULL,
        astro_breakdown JSONB NOT NULL DEFAULT '{}',
        cosmic_description TEXT NOT NULL DEFAULT '',
        match_type TEXT NOT NULL DEFAULT 'valentine',
        revealed BOOLEAN NOT NULL DEFAULT FALSE,
        reveal_at TIMESTAMPTZ,
        created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
    );

    CREATE INDEX IF NOT EXISTS idx_matches_user1 ON matches(user1_id);
    CREATE INDEX IF NOT EXISTS idx_matches_user2 ON matches(user2_id);
    CREATE INDEX IF NOT EXISTS idx_users_onboarded ON users(onboarding_complete) WHERE onboarding_complete = TRUE;
    `

	_, err := db.Exec(schema)
	return err
}
