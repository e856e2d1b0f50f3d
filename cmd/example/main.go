// Command example serves a token endpoint that signs users in with a Facebook
// authorization code posted by a client app.
//
//	FACEBOOK_CLIENT_ID=... FACEBOOK_CLIENT_SECRET=... go run ./cmd/example
//	go run ./cmd/example -env facebook.env
//	curl -X POST localhost:8080/auth/facebook/token -d code=AQB...
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/authcode"
	"github.com/dmitrymomot/authcode/pkg/config"
	"github.com/dmitrymomot/authcode/pkg/logger"
)

type serverConfig struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	Env             string        `env:"APP_ENV" envDefault:"development"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

func main() {
	envFile := flag.String("env", "", "optional .env file loaded before the environment is parsed")
	flag.Parse()

	if *envFile != "" {
		if err := config.LoadEnv(*envFile); err != nil {
			slog.Error("cannot load env file", logger.Error(err))
			os.Exit(1)
		}
	}

	var srvCfg serverConfig
	config.MustLoad(&srvCfg)

	log := logger.New(
		logger.WithEnvironment(srvCfg.Env, "authcode-example"),
		logger.WithContextExtractors(requestIDExtractor),
	)
	slog.SetDefault(log)

	if err := run(srvCfg, log); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(srvCfg serverConfig, log *slog.Logger) error {
	var fbCfg authcode.Config
	if err := config.Load(&fbCfg); err != nil {
		return err
	}

	users := newUserStore()
	strategy, err := authcode.New(fbCfg,
		authcode.Verify[*user](users.verify),
		authcode.WithLogger(log),
	)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              srvCfg.Addr,
		Handler:           routes(strategy, log),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), srvCfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func routes(strategy *authcode.Strategy[*user], log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/auth/facebook", func(w http.ResponseWriter, r *http.Request) {
		state := middleware.GetReqID(r.Context())
		http.Redirect(w, r, strategy.AuthCodeURL(state, r.URL.Query().Get("redirect_uri")), http.StatusFound)
	})

	r.With(authcode.Middleware(strategy,
		authcode.WithFailureHandler(func(w http.ResponseWriter, r *http.Request, info any) {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"error": failureMessage(info)})
		}),
		authcode.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			log.ErrorContext(r.Context(), "facebook sign-in failed", logger.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "internal error"})
		}),
	)).Post("/auth/facebook/token", func(w http.ResponseWriter, r *http.Request) {
		u, _ := authcode.UserFromContext[*user](r.Context())
		log.InfoContext(r.Context(), "signed in", logger.UserID(u.ID), slog.Bool("new", authcode.InfoFromContext(r.Context()) == infoRegistered))
		writeJSON(w, http.StatusOK, u)
	})

	return r
}

func failureMessage(info any) string {
	switch v := info.(type) {
	case nil:
		return "authentication failed"
	case error:
		return v.Error()
	case string:
		return v
	default:
		return "authentication failed"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func requestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id := middleware.GetReqID(ctx); id != "" {
		return logger.RequestID(id), true
	}
	return slog.Attr{}, false
}
