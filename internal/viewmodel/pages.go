package viewmodel

import (
	"strconv"
	"time"

	"conandweb/internal/domain"
	"conandweb/internal/i18n"
	"conandweb/internal/locale"
)

// DefaultHeroImages are shown when site settings define no hero images.
var DefaultHeroImages = []string{
	"/img/conand_2_img7_opt.png",
	"/img/conand_2_img8_opt.png",
	"/img/conand_1_img4_opt.png",
	"/img/conand_1_img5_opt.png",
	"/img/conand_1_img6_opt.png",
}

// Default about-page images.
const (
	DefaultAboutImage1 = "/img/conand_0_img1_opt.jpg"
	DefaultAboutImage2 = "/img/conand_0_img2_opt.jpg"
)

// Page wraps a page view model with the shared layout and its localized URLs.
type Page[T any] struct {
	Locale     domain.Locale      `json:"locale"`
	Path       string             `json:"path"`
	Alternates []locale.Alternate `json:"alternates"`
	Layout     Layout             `json:"layout"`
	Content    T                  `json:"content"`
}

// NewPage wraps content for the canonical path.
func NewPage[T any](canonical string, layout Layout, content T, tr Translator, links Linker) Page[T] {
	return Page[T]{
		Locale:     tr.Locale(),
		Path:       links.Prefix(tr.Locale(), canonical),
		Alternates: links.Alternates(canonical),
		Layout:     layout,
		Content:    content,
	}
}

// CountdownLabels are the unit captions of the countdown timer.
type CountdownLabels struct {
	Days    string `json:"days"`
	Hours   string `json:"hours"`
	Minutes string `json:"minutes"`
	Seconds string `json:"seconds"`
	Until   string `json:"until"`
}

// HeroEvent is the countdown block for the next event.
type HeroEvent struct {
	Name          string          `json:"name"`
	Date          time.Time       `json:"date"`
	DateFormatted string          `json:"date_formatted"`
	Countdown     CountdownLabels `json:"countdown"`
	Buttons       []Button        `json:"buttons"`
}

// Hero is the home page header. NextEvent is nil when no upcoming event exists, in which
// case the renderer shows Tagline instead of the countdown.
type Hero struct {
	Images    []Image    `json:"images"`
	Tagline   string     `json:"tagline"`
	NextEvent *HeroEvent `json:"next_event,omitempty"`
}

// SaveTheDate announces the next event's long date.
type SaveTheDate struct {
	Label         string `json:"label"`
	EventName     string `json:"event_name"`
	DateFormatted string `json:"date_formatted"`
}

// HomeAbout is the community blurb on the home page.
type HomeAbout struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	GDGTitle       string `json:"gdg_title"`
	GDGDescription string `json:"gdg_description"`
}

// HomePage is the view model of the landing page.
type HomePage struct {
	Hero          Hero         `json:"hero"`
	SaveTheDate   *SaveTheDate `json:"save_the_date,omitempty"`
	UpcomingTitle string       `json:"upcoming_title"`
	Upcoming      []EventCard  `json:"upcoming"`
	PastTitle     string       `json:"past_title"`
	Past          []EventCard  `json:"past"`
	About         HomeAbout    `json:"about"`
}

// HomeInput is the content the home page is built from. Any field may be empty.
type HomeInput struct {
	SiteName string
	Settings *domain.SiteSettings
	Upcoming []*domain.Event
	Past     []*domain.Event
}

// BuildHome assembles the home page.
func BuildHome(in HomeInput, tr Translator, links Linker) HomePage {
	siteName := in.SiteName
	if in.Settings != nil && in.Settings.SiteName != "" {
		siteName = in.Settings.SiteName
	}
	page := HomePage{
		Hero:          buildHero(in, siteName, tr),
		UpcomingTitle: tr.T("home.nextEvent"),
		Upcoming:      EventCards(in.Upcoming, tr, links),
		PastTitle:     tr.T("event.pastEvent"),
		Past:          EventCards(in.Past, tr, links),
		About: HomeAbout{
			Title:          tr.T("home.whatIsConand"),
			Description:    tr.T("home.conandDescription"),
			GDGTitle:       tr.T("home.gdgTitle"),
			GDGDescription: tr.T("home.gdgDescription"),
		},
	}
	if next := NextEvent(in.Upcoming); next != nil {
		page.SaveTheDate = &SaveTheDate{
			Label:         tr.T("home.saveTheDate"),
			EventName:     next.Name,
			DateFormatted: tr.FormatDate(next.Date, i18n.DateLong),
		}
	}
	return page
}

func buildHero(in HomeInput, siteName string, tr Translator) Hero {
	hero := Hero{Tagline: tr.T("home.tagline")}
	if in.Settings != nil && in.Settings.SiteDescription != "" {
		hero.Tagline = in.Settings.SiteDescription
	}
	if in.Settings != nil {
		for _, m := range in.Settings.HeroImages {
			hero.Images = append(hero.Images, NewImage(m, siteName))
		}
	}
	if len(hero.Images) == 0 {
		for _, url := range DefaultHeroImages {
			hero.Images = append(hero.Images, Image{URL: url, Alt: siteName})
		}
	}

	next := NextEvent(in.Upcoming)
	if next == nil {
		return hero
	}
	buttons := ActionButtons(next, tr)
	if len(buttons) == 0 && in.Settings != nil {
		for _, l := range []domain.Link{in.Settings.HeroPrimaryButton, in.Settings.HeroSecondaryButton} {
			if l.URL != "" {
				buttons = append(buttons, Button{Text: l.Text, URL: l.URL})
			}
		}
	}
	hero.NextEvent = &HeroEvent{
		Name:          next.Name,
		Date:          next.Date,
		DateFormatted: tr.FormatDate(next.Date, i18n.DateLong),
		Countdown: CountdownLabels{
			Days:    tr.T("countdown.days"),
			Hours:   tr.T("countdown.hours"),
			Minutes: tr.T("countdown.minutes"),
			Seconds: tr.T("countdown.seconds"),
			Until:   tr.T("countdown.untilNextEvent"),
		},
		Buttons: buttons,
	}
	return hero
}

// ContactForm holds the captions of the contact form.
type ContactForm struct {
	Title        string            `json:"title"`
	Text         string            `json:"text"`
	Email        string            `json:"email,omitempty"`
	RecaptchaKey string            `json:"recaptcha_site_key,omitempty"`
	Labels       map[string]string `json:"labels"`
}

var contactLabelKeys = []string{
	"name", "email", "subject", "message", "send", "sending", "success", "error",
	"namePlaceholder", "emailPlaceholder", "subjectPlaceholder", "messagePlaceholder",
}

// NewContactForm returns the localized contact form captions.
func NewContactForm(contactEmail, recaptchaSiteKey string, tr Translator) ContactForm {
	labels := make(map[string]string, len(contactLabelKeys))
	for _, k := range contactLabelKeys {
		labels[k] = tr.T("contact." + k)
	}
	return ContactForm{
		Title:        tr.T("home.contactTitle"),
		Text:         tr.T("home.contactText"),
		Email:        contactEmail,
		RecaptchaKey: recaptchaSiteKey,
		Labels:       labels,
	}
}

// AboutPage is the view model of the about page.
type AboutPage struct {
	Title      string      `json:"title"`
	Tagline    string      `json:"tagline"`
	Paragraphs []string    `json:"paragraphs"`
	Image1     Image       `json:"image_1"`
	Image2     Image       `json:"image_2"`
	Contact    ContactForm `json:"contact"`
}

// AboutInput is the content the about page is built from. Settings may be nil.
type AboutInput struct {
	SiteName         string
	ContactEmail     string
	RecaptchaSiteKey string
	Settings         *domain.SiteSettings
}

// BuildAbout assembles the about page. Without stored about text the catalog's
// about.fallback.N paragraphs are used.
func BuildAbout(in AboutInput, tr Translator) AboutPage {
	siteName, contactEmail := in.SiteName, in.ContactEmail
	page := AboutPage{
		Title:   tr.T("home.aboutTitle"),
		Tagline: tr.T("home.tagline"),
		Image1:  Image{URL: DefaultAboutImage1, Alt: siteName},
		Image2:  Image{URL: DefaultAboutImage2, Alt: siteName},
	}
	if s := in.Settings; s != nil {
		if s.SiteName != "" {
			siteName = s.SiteName
		}
		if s.ContactEmail != "" {
			contactEmail = s.ContactEmail
		}
		page.Paragraphs = Paragraphs(PlainText(s.AboutText, ParagraphSeparator))
		if s.AboutImage1 != nil {
			page.Image1 = NewImage(s.AboutImage1, siteName)
		}
		if s.AboutImage2 != nil {
			page.Image2 = NewImage(s.AboutImage2, siteName)
		}
	}
	if len(page.Paragraphs) == 0 {
		page.Paragraphs = fallbackParagraphs(tr)
	}
	page.Contact = NewContactForm(contactEmail, in.RecaptchaSiteKey, tr)
	return page
}

func fallbackParagraphs(tr Translator) []string {
	out := []string{}
	for i := 1; ; i++ {
		key := "about.fallback." + strconv.Itoa(i)
		p := tr.T(key)
		if p == key || p == "" {
			return out
		}
		out = append(out, p)
	}
}

// EventPage is the view model of an event detail page.
type EventPage struct {
	Name          string           `json:"name"`
	Year          string           `json:"year"`
	Slug          string           `json:"slug"`
	Upcoming      bool             `json:"upcoming"`
	StatusLabel   string           `json:"status_label"`
	Date          time.Time        `json:"date"`
	DateFormatted string           `json:"date_formatted"`
	Image         Image            `json:"image"`
	Description   string           `json:"description,omitempty"`
	Buttons       []Button         `json:"buttons"`
	Back          NavLink          `json:"back"`
	SpeakersTitle string           `json:"speakers_title"`
	Speakers      []SpeakerCard    `json:"speakers"`
	ScheduleTitle string           `json:"schedule_title"`
	Schedule      *ScheduleView    `json:"schedule,omitempty"`
	SponsorsTitle string           `json:"sponsors_title"`
	Sponsors      []SponsorSection `json:"sponsors"`
}

// BuildEvent assembles the detail page of e. settings may be nil.
func BuildEvent(e *domain.Event, settings *domain.SiteSettings, tr Translator, links Linker) EventPage {
	return EventPage{
		Name:          e.Name,
		Year:          e.Year,
		Slug:          e.Slug,
		Upcoming:      e.IsUpcoming(),
		StatusLabel:   StatusLabel(e, tr),
		Date:          e.Date,
		DateFormatted: tr.FormatDate(e.Date, i18n.DateLong),
		Image:         Image{URL: MediaURL(e.FeaturedImage), Alt: e.Name},
		Description:   PlainText(e.Description, InlineSeparator),
		Buttons:       ActionButtons(e, tr),
		Back:          NavLink{Label: tr.T("event.back"), Path: links.Prefix(tr.Locale(), "/")},
		SpeakersTitle: tr.T("event.speakers"),
		Speakers:      SpeakerCards(e.Speakers),
		ScheduleTitle: tr.T("event.schedule"),
		Schedule:      BuildSchedule(e.Schedule, tr),
		SponsorsTitle: tr.T("event.sponsorsTitle"),
		Sponsors:      SponsorSections(EffectiveSponsors(e.Sponsors), TierLabels(settings, tr)),
	}
}

// GalleryPage is the view model of the photo gallery.
type GalleryPage struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Empty    string   `json:"empty,omitempty"`
	Images   []string `json:"images"`
}

// BuildGallery assembles the gallery page from already-ordered image URLs.
func BuildGallery(images []string, tr Translator) GalleryPage {
	page := GalleryPage{
		Title:    tr.T("gallery.title"),
		Subtitle: tr.T("gallery.subtitle"),
		Images:   images,
	}
	if page.Images == nil {
		page.Images = []string{}
	}
	if len(page.Images) == 0 {
		page.Empty = tr.T("gallery.empty")
	}
	return page
}
