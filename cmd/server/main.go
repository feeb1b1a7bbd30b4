package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/ledgerlens/insights/internal/insights"
	"github.com/ledgerlens/insights/internal/logger"
	"github.com/ledgerlens/insights/internal/service"
	"github.com/ledgerlens/insights/internal/store"
)

func main() {
	// Best effort: a missing .env just means env vars come from the shell.
	_ = godotenv.Load()

	log := logger.New()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8111"
	}

	ctx := context.Background()
	useMemoryStore := os.Getenv("USE_MEMORY_STORE") == "true" || os.Getenv("ENV") == "local"

	var dismissals store.DismissalStore
	if useMemoryStore {
		log.Info().Msg("using in-memory dismissal store for local development")
		dismissals = store.NewMemoryStore()
	} else {
		projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
		if projectID == "" {
			log.Fatal().Msg("GOOGLE_CLOUD_PROJECT is required unless USE_MEMORY_STORE=true")
		}
		client, err := firestore.NewClient(ctx, projectID)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create Firestore client")
		}
		defer client.Close()
		dismissals = store.NewFirestoreStore(client, os.Getenv("DISMISSALS_COLLECTION"))
	}

	svc := service.NewInsightService(insights.New(), dismissals, log)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:1234",
			"http://127.0.0.1:1234",
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		AllowCredentials: true,
	})
	handler := c.Handler(svc.Handler())

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: h2c.NewHandler(handler, &http2.Server{}),
	}

	log.Info().Str("port", port).Msg("starting insight server")
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
