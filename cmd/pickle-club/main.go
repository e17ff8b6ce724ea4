package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pickleClub/internal/client/backend"
	"pickleClub/internal/config"
	"pickleClub/internal/http-server/handlers/health"
	"pickleClub/internal/http-server/handlers/page/contact"
	"pickleClub/internal/http-server/handlers/page/home"
	"pickleClub/internal/http-server/handlers/page/quickBook"
	"pickleClub/internal/http-server/handlers/page/slots"
	"pickleClub/internal/http-server/middleware/mwlogger"
	"pickleClub/internal/http-server/middleware/ratelimit"
	"pickleClub/internal/lib/logger/handlers/slogpretty"
	"pickleClub/internal/lib/logger/sl"
	"pickleClub/internal/metrics"
	"pickleClub/internal/storage"
	"pickleClub/internal/storage/postgres"
	"pickleClub/internal/view/page"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const purgeInterval = time.Hour

type journal interface {
	quickBook.SubmissionSaver
	contact.SubmissionSaver
}

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting pickle club", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	metrics.Register()

	var (
		saver journal = storage.Discard{}
		db    *postgres.Storage
		err   error
	)

	if cfg.Database.Enabled {
		db, err = postgres.InitDB(&cfg.Database)
		if err != nil {
			log.Error("failed to init storage", sl.Err(err))
			os.Exit(1)
		}
		saver = db
	} else {
		log.Info("submission journal disabled")
	}

	client := backend.New(cfg.Backend.URL, cfg.Backend.Timeout)
	site := page.NewSite(log, client, page.NewContent(cfg.Club), time.Now)

	limiter := ratelimit.New(log, cfg.RateLimit)
	router := newRouter(log, cfg.HTTPServer, site, saver, limiter)

	log.Info("starting server",
		slog.String("address", cfg.HTTPServer.Address),
		slog.String("backend", cfg.Backend.URL),
	)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	done := make(chan struct{})
	go sweepLimiter(log, limiter, done)
	if db != nil {
		go purgeJournal(log, db, cfg.Database.Retention, done)
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))
	close(done)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.Timeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if db == nil {
		return
	}

	if err = db.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

type pageSite interface {
	home.PageMounter
	quickBook.PageBuilder
}

func newRouter(log *slog.Logger, cfg config.HTTPServer, site pageSite, saver journal, limiter *ratelimit.Limiter) *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	if cfg.TrustProxy {
		router.Use(middleware.RealIP)
	}
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	fs := http.FileServer(http.Dir("./static/"))
	router.Handle("/static/*", http.StripPrefix("/static/", fs))

	router.Get("/", home.New(log, site))
	router.Get("/slots", slots.New(log, site))

	router.Group(func(r chi.Router) {
		r.Use(limiter.Middleware)

		r.Post("/book", quickBook.New(log, site, saver))
		r.Post("/contact", contact.New(log, site, saver))
	})

	router.Get("/healthz", health.New())
	router.Handle("/metrics", promhttp.Handler())

	return router
}

// sweepLimiter drops idle rate limiter buckets until done is closed.
func sweepLimiter(log *slog.Logger, limiter *ratelimit.Limiter, done <-chan struct{}) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := limiter.Sweep(time.Now()); n > 0 {
				log.Debug("rate limiter swept", slog.Int("removed", n))
			}
		case <-done:
			return
		}
	}
}

// purgeJournal drops journal entries older than retention until done is closed.
func purgeJournal(log *slog.Logger, db *postgres.Storage, retention time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			n, err := db.DeleteSubmissionsBefore(context.Background(), time.Now().Add(-retention))
			if err != nil {
				log.Error("failed to purge submissions", sl.Err(err))
				continue
			}
			if n > 0 {
				log.Info("purged old submissions", slog.Int64("count", n))
			}
		case <-done:
			return
		}
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
