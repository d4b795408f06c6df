package services

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"conandweb/internal/domain"
	"conandweb/internal/i18n"
	"conandweb/internal/viewmodel"
)

// ContentReader is the read side of the content repository adapter.
type ContentReader interface {
	UpcomingEvents(ctx context.Context, locale domain.Locale) ([]*domain.Event, error)
	PastEvents(ctx context.Context, locale domain.Locale) ([]*domain.Event, error)
	AllEvents(ctx context.Context, locale domain.Locale) ([]*domain.Event, error)
	EventBySlug(ctx context.Context, year, slug string, locale domain.Locale) (*domain.Event, error)
	GlobalSponsors(ctx context.Context) ([]*domain.Sponsor, error)
	SiteSettings(ctx context.Context, locale domain.Locale) (*domain.SiteSettings, error)
	Translations(ctx context.Context, locale domain.Locale) (domain.Translations, error)
}

// GalleryLister lists the public URLs of the gallery images in display order.
type GalleryLister interface {
	List(ctx context.Context) ([]string, error)
}

// PageConfig holds the configured fallbacks shown when site settings are missing.
type PageConfig struct {
	SiteName         string
	ContactEmail     string
	RecaptchaSiteKey string
}

// PageService builds page view models. Every read a page needs is issued concurrently;
// a failed read is logged and replaced by its empty value so the page still renders.
type PageService struct {
	content ContentReader
	catalog *i18n.Catalog
	links   viewmodel.Linker
	gallery GalleryLister
	cfg     PageConfig
	logger  *slog.Logger
}

func NewPageService(content ContentReader, catalog *i18n.Catalog, links viewmodel.Linker, gallery GalleryLister, cfg PageConfig, logger *slog.Logger) *PageService {
	return &PageService{
		content: content,
		catalog: catalog,
		links:   links,
		gallery: gallery,
		cfg:     cfg,
		logger:  logger,
	}
}

// degrade returns the result of read, or the zero value after logging a failure.
func degrade[T any](ctx context.Context, logger *slog.Logger, what string, read func() (T, error)) T {
	v, err := read()
	if err != nil {
		logger.WarnContext(ctx, "content unavailable", "read", what, "err", err)
		var zero T
		return zero
	}
	return v
}

// chrome is the content shared by every page.
type chrome struct {
	settings *domain.SiteSettings
	overlay  domain.Translations
	events   []*domain.Event
	sponsors []*domain.Sponsor
}

func (s *PageService) fetchChrome(ctx context.Context, g *errgroup.Group, l domain.Locale) *chrome {
	c := &chrome{}
	g.Go(func() error {
		c.settings = degrade(ctx, s.logger, "site settings", func() (*domain.SiteSettings, error) {
			return s.content.SiteSettings(ctx, l)
		})
		return nil
	})
	g.Go(func() error {
		c.overlay = degrade(ctx, s.logger, "translations", func() (domain.Translations, error) {
			return s.content.Translations(ctx, l)
		})
		return nil
	})
	g.Go(func() error {
		c.events = degrade(ctx, s.logger, "all events", func() ([]*domain.Event, error) {
			return s.content.AllEvents(ctx, l)
		})
		return nil
	})
	g.Go(func() error {
		c.sponsors = degrade(ctx, s.logger, "global sponsors", func() ([]*domain.Sponsor, error) {
			return s.content.GlobalSponsors(ctx)
		})
		return nil
	})
	return c
}

func (s *PageService) layout(c *chrome, tr viewmodel.Translator, canonical string) viewmodel.Layout {
	return viewmodel.BuildLayout(viewmodel.LayoutInput{
		SiteName:       s.cfg.SiteName,
		Settings:       c.settings,
		Events:         c.events,
		GlobalSponsors: c.sponsors,
		CanonicalPath:  canonical,
	}, tr, s.links)
}

// Layout returns the navigation and footer for canonical.
func (s *PageService) Layout(ctx context.Context, l domain.Locale, canonical string) viewmodel.Layout {
	var g errgroup.Group
	c := s.fetchChrome(ctx, &g, l)
	_ = g.Wait()
	return s.layout(c, s.catalog.Localizer(l, c.overlay), canonical)
}

func (s *PageService) Home(ctx context.Context, l domain.Locale) viewmodel.Page[viewmodel.HomePage] {
	var g errgroup.Group
	c := s.fetchChrome(ctx, &g, l)
	var upcoming, past []*domain.Event
	g.Go(func() error {
		upcoming = degrade(ctx, s.logger, "upcoming events", func() ([]*domain.Event, error) {
			return s.content.UpcomingEvents(ctx, l)
		})
		return nil
	})
	g.Go(func() error {
		past = degrade(ctx, s.logger, "past events", func() ([]*domain.Event, error) {
			return s.content.PastEvents(ctx, l)
		})
		return nil
	})
	_ = g.Wait()

	tr := s.catalog.Localizer(l, c.overlay)
	home := viewmodel.BuildHome(viewmodel.HomeInput{
		SiteName: s.cfg.SiteName,
		Settings: c.settings,
		Upcoming: upcoming,
		Past:     past,
	}, tr, s.links)
	return viewmodel.NewPage("/", s.layout(c, tr, "/"), home, tr, s.links)
}

func (s *PageService) About(ctx context.Context, l domain.Locale) viewmodel.Page[viewmodel.AboutPage] {
	var g errgroup.Group
	c := s.fetchChrome(ctx, &g, l)
	_ = g.Wait()

	tr := s.catalog.Localizer(l, c.overlay)
	about := viewmodel.BuildAbout(viewmodel.AboutInput{
		SiteName:         s.cfg.SiteName,
		ContactEmail:     s.cfg.ContactEmail,
		RecaptchaSiteKey: s.cfg.RecaptchaSiteKey,
		Settings:         c.settings,
	}, tr)
	return viewmodel.NewPage("/about", s.layout(c, tr, "/about"), about, tr, s.links)
}

func (s *PageService) Gallery(ctx context.Context, l domain.Locale) viewmodel.Page[viewmodel.GalleryPage] {
	var g errgroup.Group
	c := s.fetchChrome(ctx, &g, l)
	var images []string
	g.Go(func() error {
		images = degrade(ctx, s.logger, "gallery", func() ([]string, error) {
			return s.gallery.List(ctx)
		})
		return nil
	})
	_ = g.Wait()

	tr := s.catalog.Localizer(l, c.overlay)
	return viewmodel.NewPage("/gallery", s.layout(c, tr, "/gallery"), viewmodel.BuildGallery(images, tr), tr, s.links)
}

// Event returns the detail page of the event at (year, slug). A store failure is logged
// and reported as domain.ErrNotFound like a missing event.
func (s *PageService) Event(ctx context.Context, l domain.Locale, year, slug string) (viewmodel.Page[viewmodel.EventPage], error) {
	var g errgroup.Group
	c := s.fetchChrome(ctx, &g, l)
	var event *domain.Event
	g.Go(func() error {
		var err error
		event, err = s.content.EventBySlug(ctx, year, slug, l)
		return err
	})
	if err := g.Wait(); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.WarnContext(ctx, "content unavailable", "read", "event", "year", year, "slug", slug, "err", err)
		}
		return viewmodel.Page[viewmodel.EventPage]{}, domain.ErrNotFound
	}
	if event == nil {
		return viewmodel.Page[viewmodel.EventPage]{}, domain.ErrNotFound
	}

	tr := s.catalog.Localizer(l, c.overlay)
	canonical := viewmodel.EventPath(year, slug)
	page := viewmodel.BuildEvent(event, c.settings, tr, s.links)
	return viewmodel.NewPage(canonical, s.layout(c, tr, canonical), page, tr, s.links), nil
}
