package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"

	xlog "github.com/3-lines-studio/greetsite/internal/log"
)

type RouterConfig struct {
	Greet  http.Handler
	Site   http.Handler
	Logger zerolog.Logger

	// RateLimitRPS caps /api requests per client IP; zero disables it.
	RateLimitRPS int
}

// NewRouter mounts the greeting API under /api and falls through to the
// site for everything else.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(xlog.RequestID)
	r.Use(xlog.Middleware(cfg.Logger))

	r.Route("/api", func(api chi.Router) {
		if cfg.RateLimitRPS > 0 {
			api.Use(httprate.Limit(
				cfg.RateLimitRPS,
				time.Second,
				httprate.WithKeyFuncs(httprate.KeyByIP),
				httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
					http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				}),
			))
		}
		api.Method(http.MethodGet, "/greet", cfg.Greet)
		api.NotFound(http.NotFound)
	})

	r.NotFound(cfg.Site.ServeHTTP)
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return r
}
