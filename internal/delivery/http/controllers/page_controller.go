package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"conandweb/internal/delivery/http/helpers"
	"conandweb/internal/delivery/http/middleware"
	"conandweb/internal/domain"
	"conandweb/internal/viewmodel"
)

// PageBuilder builds the page view models served by PageController.
type PageBuilder interface {
	Layout(ctx context.Context, l domain.Locale, canonical string) viewmodel.Layout
	Home(ctx context.Context, l domain.Locale) viewmodel.Page[viewmodel.HomePage]
	About(ctx context.Context, l domain.Locale) viewmodel.Page[viewmodel.AboutPage]
	Gallery(ctx context.Context, l domain.Locale) viewmodel.Page[viewmodel.GalleryPage]
	Event(ctx context.Context, l domain.Locale, year, slug string) (viewmodel.Page[viewmodel.EventPage], error)
}

// LocaleSupport reports which locales the site serves.
type LocaleSupport interface {
	Default() domain.Locale
	Supports(l domain.Locale) bool
}

type PageController struct {
	Logger  *slog.Logger
	Pages   PageBuilder
	Locales LocaleSupport
}

func NewPageController(logger *slog.Logger, pages PageBuilder, locales LocaleSupport) *PageController {
	return &PageController{
		Logger:  logger,
		Pages:   pages,
		Locales: locales,
	}
}

func (c *PageController) locale(r *http.Request) domain.Locale {
	return middleware.LocaleFromContext(r.Context(), c.Locales.Default())
}

// Home godoc
// @Summary Home page
// @Description Hero with next-event countdown, upcoming and past event cards and the community blurb. Prefix the path with /es, /en or /fr for other locales.
// @Tags pages
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the home page view model"
// @Router / [get]
func (c *PageController) Home(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Pages.Home(r.Context(), c.locale(r)))
}

// About godoc
// @Summary About page
// @Description About text, images and contact form captions.
// @Tags pages
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the about page view model"
// @Router /about [get]
func (c *PageController) About(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Pages.About(r.Context(), c.locale(r)))
}

// Gallery godoc
// @Summary Photo gallery
// @Description Gallery image URLs in random order.
// @Tags pages
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the gallery page view model"
// @Router /gallery [get]
func (c *PageController) Gallery(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Pages.Gallery(r.Context(), c.locale(r)))
}

// Event godoc
// @Summary Event detail page
// @Description Event header, speakers, schedule and sponsors by tier.
// @Tags pages
// @Produce json
// @Param year path string true "Event year"
// @Param slug path string true "Event slug"
// @Success 200 {object} helpers.APIResponse "data contains the event page view model"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /ev/{year}/{slug} [get]
func (c *PageController) Event(w http.ResponseWriter, r *http.Request) {
	year, slug := r.PathValue("year"), r.PathValue("slug")
	if year == "" || slug == "" {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		return
	}
	page, err := c.Pages.Event(r.Context(), c.locale(r), year, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, page)
}

// Layout godoc
// @Summary Shared page chrome
// @Description Navigation, language switcher and footer for a locale. Unknown locales fall back to the default.
// @Tags pages
// @Produce json
// @Param locale query string false "Locale code (ca, es, en, fr)"
// @Param path query string false "Canonical path of the current page, for the language switcher"
// @Success 200 {object} helpers.APIResponse "data contains the layout view model"
// @Router /api/layout [get]
func (c *PageController) Layout(w http.ResponseWriter, r *http.Request) {
	l := domain.Locale(r.URL.Query().Get("locale"))
	if !c.Locales.Supports(l) {
		l = c.Locales.Default()
	}
	canonical := r.URL.Query().Get("path")
	if canonical == "" || canonical[0] != '/' {
		canonical = "/"
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Pages.Layout(r.Context(), l, canonical))
}

// NotFound answers unmatched routes with the JSON envelope.
func (c *PageController) NotFound(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "page not found")
}
