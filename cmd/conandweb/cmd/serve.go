package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	_ "conandweb/docs"
	"conandweb/internal/adapters/auth"
	"conandweb/internal/adapters/email"
	"conandweb/internal/adapters/gallery"
	"conandweb/internal/adapters/recaptcha"
	delivery "conandweb/internal/delivery/http"
	"conandweb/internal/delivery/http/controllers"
	"conandweb/internal/domain"
	"conandweb/internal/i18n"
	"conandweb/internal/locale"
	"conandweb/internal/repository/cache"
	"conandweb/internal/repository/postgres"
	"conandweb/internal/services"
)

// jwtIssuer is the iss claim of operator tokens.
const jwtIssuer = "conandweb"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Serves the page view models, the contact relay, the admin API, static images
and the Swagger UI. Stops gracefully on SIGINT or SIGTERM.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	cfg, logger := a.cfg, a.logger

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := a.openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	catalog, err := i18n.Load(cfg.DefaultLocale, cfg.Locales)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}
	resolver := locale.NewResolver(cfg.DefaultLocale, cfg.Locales, locale.DefaultIgnorePrefixes)

	// Repositories, optionally behind the Redis read-through cache
	mediaRepo := postgres.NewMediaRepository(db)
	eventRepo := postgres.NewEventRepository(db, cfg.DefaultLocale)
	sponsorRepo := postgres.NewSponsorRepository(db)
	settingsRepo := postgres.NewSettingsRepository(db, mediaRepo, cfg.DefaultLocale)
	var purger domain.CachePurger = cache.NopPurger{}
	if cfg.RedisURL != "" {
		store, err := cache.NewRedisStore(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn("content cache disabled", "err", err)
		} else {
			defer store.Close()
			eventRepo = cache.NewEventRepository(eventRepo, store, cfg.CacheTTL, logger)
			sponsorRepo = cache.NewSponsorRepository(sponsorRepo, store, cfg.CacheTTL, logger)
			settingsRepo = cache.NewSettingsRepository(settingsRepo, store, cfg.CacheTTL, logger)
			purger = cache.NewPurger(store)
			logger.Info("content cache enabled", "ttl", cfg.CacheTTL.String())
		}
	}

	// Services
	content := services.NewContentService(eventRepo, sponsorRepo, settingsRepo, cfg.RequestTimeout)
	pages := services.NewPageService(content, catalog, resolver,
		gallery.NewDirLister(cfg.GalleryDir, gallery.DefaultURLPrefix),
		services.PageConfig{
			SiteName:         cfg.SiteName,
			ContactEmail:     cfg.ContactEmail,
			RecaptchaSiteKey: cfg.RecaptchaSiteKey,
		}, logger)

	contactCfg := services.ContactConfig{
		SiteName:     cfg.SiteName,
		ContactEmail: cfg.ContactEmail,
		MinScore:     cfg.RecaptchaMinScore,
		Renderer:     email.NewTemplateRenderer(),
	}
	if cfg.RecaptchaSecretKey != "" {
		contactCfg.Verifier = recaptcha.NewVerifier(&http.Client{Timeout: 10 * time.Second}, "", cfg.RecaptchaSecretKey)
	} else {
		logger.Warn("RECAPTCHA_SECRET_KEY not set, contact form bot verification disabled")
	}
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.MailFromEmail,
		FromName:    cfg.MailFromName,
		Mailjet:     email.MailjetConfig{APIKey: cfg.MailjetAPIKey, APISecret: cfg.MailjetAPISecret},
		SES: email.SESConfig{
			Region:             cfg.SESRegion,
			AccessKeyID:        cfg.SESAccessKeyID,
			SecretAccessKey:    cfg.SESSecretKey,
			InsecureSkipVerify: cfg.SESInsecureTLS,
		},
	})
	switch {
	case errors.Is(err, domain.ErrEmailNotConfigured):
		logger.Warn("email delivery not configured, contact form will answer 500", "err", err)
	case err != nil:
		return fmt.Errorf("create mailer: %w", err)
	default:
		contactCfg.Mailer = mailer
	}
	contact := services.NewContactService(contactCfg)

	jwt := auth.NewJWT(cfg.JWTSecret, jwtIssuer)
	authSvc := services.NewAuthService(postgres.NewUserRepository(db), auth.NewBcryptHasher(bcrypt.DefaultCost), jwt, cfg.JWTExpiry, cfg.RequestTimeout)

	router := delivery.NewRouter(delivery.RouterConfig{
		Logger:         logger,
		Resolver:       resolver,
		Verifier:       jwt,
		Pages:          controllers.NewPageController(logger, pages, resolver),
		Contact:        controllers.NewContactController(logger, contact),
		Admin:          controllers.NewAdminController(logger, authSvc, purger),
		Health:         controllers.NewHealthController(logger, db),
		StaticDir:      cfg.StaticDir,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment, "default_locale", string(cfg.DefaultLocale))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	logger.Info("server exited gracefully")
	return nil
}
