package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ehon-app/ehon/internal/config"
	"github.com/ehon-app/ehon/internal/handlers"
	"github.com/ehon-app/ehon/internal/provider"
	"github.com/ehon-app/ehon/internal/services"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Local .env is optional; the host environment always applies.
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("No .env file loaded")
	}

	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Info().Msg("Starting ehon server")

	client := provider.NewClient(cfg)

	speechService := services.NewSpeechService(client, cfg.SpeechVoice)
	coverService := services.NewCoverService(client, cfg.StaticDir)

	h := handlers.NewHandler(speechService, coverService, client, cfg.HasKey())

	r := mux.NewRouter()
	r.HandleFunc("/", h.Index).Methods("GET")
	r.HandleFunc("/select", h.Select).Methods("GET")
	r.HandleFunc("/story", h.Story).Methods("GET")
	r.HandleFunc("/story_end", h.StoryEnd).Methods("GET")
	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/tts", h.TTS).Methods("POST")
	r.HandleFunc("/api/generate_cover", h.GenerateCover).Methods("POST")
	r.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))),
	)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // generation calls block for the provider round-trip
	}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	}
	log.Info().Msg("Server exited")
}
