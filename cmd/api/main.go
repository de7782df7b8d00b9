package main

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/louisfh66/card-roulette/internal/config"
	"github.com/louisfh66/card-roulette/internal/domain"
	"github.com/louisfh66/card-roulette/internal/http-server/handlers/bet/clear"
	"github.com/louisfh66/card-roulette/internal/http-server/handlers/bet/place"
	"github.com/louisfh66/card-roulette/internal/http-server/handlers/event"
	"github.com/louisfh66/card-roulette/internal/http-server/handlers/round/deal"
	"github.com/louisfh66/card-roulette/internal/http-server/handlers/session/create"
	"github.com/louisfh66/card-roulette/internal/http-server/handlers/session/reset"
	"github.com/louisfh66/card-roulette/internal/http-server/handlers/session/state"
	"github.com/louisfh66/card-roulette/internal/http-server/middleware/logger"
	"github.com/louisfh66/card-roulette/internal/job"
	"github.com/louisfh66/card-roulette/internal/lib/logger/handler/slogpretty"
	"github.com/louisfh66/card-roulette/internal/lib/logger/sl"
	"github.com/louisfh66/card-roulette/internal/repository"
	"github.com/pusher/pusher-http-go/v5"
	"golang.org/x/exp/slog"
	"net/http"
	"os"
	"time"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting server...", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	deck := domain.BuildDeck()
	shuffler := domain.NewShuffler()

	sessionRepo := repository.NewSessionRepository(cfg.Game.SessionTTL, 10*time.Minute)

	publisher := setupPublisher(cfg, log)

	dispatcher := job.NewDispatcher(64)

	pool := job.NewWorkerPool(1, dispatcher.Queue())
	pool.Start()

	createSession := create.NewCreate(log, sessionRepo, deck, shuffler, cfg.Game)
	sessionState := state.NewState(log, sessionRepo, cfg.Game)
	sessionReset := reset.NewReset(log, sessionRepo, publisher)
	betPlace := place_bet.NewBet(log, sessionRepo, publisher, cfg.Game)
	betClear := clear_bet.NewClear(log, sessionRepo, publisher)
	dealRound := deal.NewDeal(log, sessionRepo, publisher, dispatcher, cfg.Game)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(logger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Post("/session", createSession.New())
	router.Get("/session/{uuid}", sessionState.New())
	router.Post("/session/{uuid}/bet", betPlace.New())
	router.Post("/session/{uuid}/bet/clear", betClear.New())
	router.Post("/session/{uuid}/deal", dealRound.New())
	router.Post("/session/{uuid}/reset", sessionReset.New())

	log.Info("Server started", slog.String("address", cfg.Address))

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	if err := srv.ListenAndServe(); err != nil {
		log.Error("Server failed", sl.Err(err))
	}

	log.Error("Server stopped")
}

func setupPublisher(cfg *config.Config, log *slog.Logger) event.Publisher {
	if cfg.Pusher.Enabled() {
		client := &pusher.Client{
			AppID:   cfg.Pusher.AppID,
			Key:     cfg.Pusher.Key,
			Secret:  cfg.Pusher.Secret,
			Cluster: cfg.Pusher.Cluster,
			Secure:  cfg.Pusher.Secure,
		}

		log.Info("publishing events through pusher", slog.String("cluster", cfg.Pusher.Cluster))

		return event.NewPusherPublisher(log, client)
	}

	conn, _, err := websocket.DefaultDialer.Dial(cfg.WSServer.PublishURL, nil)
	if err != nil {
		log.Error("failed to connect to ws server, events disabled", sl.Err(err))

		return event.NopPublisher{}
	}

	log.Info("publishing events to ws server", slog.String("url", cfg.WSServer.PublishURL))

	return event.NewWSPublisher(log, conn)
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlogLogger()
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlogLogger() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewPrettyHandler(os.Stdout)

	return slog.New(handler)
}
