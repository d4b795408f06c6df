package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"conandweb/internal/delivery/http/controllers"
	"conandweb/internal/delivery/http/middleware"
	"conandweb/internal/domain"
	"conandweb/internal/locale"
)

// RouterConfig carries everything the router wires together.
type RouterConfig struct {
	Logger         *slog.Logger
	Resolver       *locale.Resolver
	Verifier       domain.TokenVerifier
	Pages          *controllers.PageController
	Contact        *controllers.ContactController
	Admin          *controllers.AdminController
	Health         *controllers.HealthController
	StaticDir      string
	AllowedOrigins []string
}

// NewRouter initializes the HTTP router with all application routes and wraps it in the
// middleware chain: request id, access log, CORS, then locale resolution.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	// Pages, routed by canonical path after the locale prefix is stripped
	mux.HandleFunc("GET /{$}", cfg.Pages.Home)
	mux.HandleFunc("GET /about", cfg.Pages.About)
	mux.HandleFunc("GET /gallery", cfg.Pages.Gallery)
	mux.HandleFunc("GET /ev/{year}/{slug}", cfg.Pages.Event)
	mux.HandleFunc("GET /api/layout", cfg.Pages.Layout)

	// Contact relay
	mux.HandleFunc("POST /api/contact", cfg.Contact.Submit)

	// Operator surface
	requireEditor := middleware.RequireRole(cfg.Verifier, domain.RoleAdmin, domain.RoleEditor)
	mux.HandleFunc("POST /api/admin/login", cfg.Admin.Login)
	mux.HandleFunc("POST /api/admin/cache/purge", requireEditor(cfg.Admin.PurgeCache))

	mux.HandleFunc("GET /healthz", cfg.Health.Health)

	// Static images, including the gallery directory
	if cfg.StaticDir != "" {
		mux.Handle("GET /img/", http.FileServer(http.Dir(cfg.StaticDir)))
	}

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	mux.HandleFunc("/", cfg.Pages.NotFound)

	var handler http.Handler = mux
	handler = middleware.Locale(cfg.Resolver, handler)
	handler = middleware.CORS(cfg.AllowedOrigins, handler)
	handler = middleware.LoggingMiddleware(cfg.Logger, handler)
	handler = middleware.RequestID(handler)
	return handler
}
