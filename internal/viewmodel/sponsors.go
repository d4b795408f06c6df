package viewmodel

import "conandweb/internal/domain"

// TierGroup is the sponsors of one tier, in input order.
type TierGroup struct {
	Tier     domain.Tier
	Sponsors []*domain.Sponsor
}

// GroupByTier partitions sponsors into tiers in domain.Tiers order, omitting empty tiers.
// Sponsors with an unknown tier are placed with the least prominent tier so that every
// input sponsor appears exactly once. Nil entries are skipped.
func GroupByTier(sponsors []*domain.Sponsor) []TierGroup {
	buckets := make([][]*domain.Sponsor, len(domain.Tiers))
	last := len(domain.Tiers) - 1
	for _, s := range sponsors {
		if s == nil {
			continue
		}
		rank := s.Tier.Rank()
		if rank > last {
			rank = last
		}
		buckets[rank] = append(buckets[rank], s)
	}
	var groups []TierGroup
	for i, b := range buckets {
		if len(b) > 0 {
			groups = append(groups, TierGroup{Tier: domain.Tiers[i], Sponsors: b})
		}
	}
	return groups
}

// EffectiveSponsors returns the event's sponsors in order with any tier override applied
// to a copy. The stored sponsors are never modified. Entries without a sponsor are skipped.
func EffectiveSponsors(entries []domain.EventSponsor) []*domain.Sponsor {
	out := make([]*domain.Sponsor, 0, len(entries))
	for _, e := range entries {
		if e.Sponsor == nil {
			continue
		}
		s := *e.Sponsor
		if e.TierOverride != "" {
			s.Tier = e.TierOverride
		}
		out = append(out, &s)
	}
	return out
}

// TierLabels returns the display label of every tier: the site-settings label when set,
// the catalog entry tier.<name> otherwise.
func TierLabels(settings *domain.SiteSettings, tr Translator) map[domain.Tier]string {
	labels := make(map[domain.Tier]string, len(domain.Tiers))
	for _, t := range domain.Tiers {
		if settings != nil && settings.SponsorTierLabels[t] != "" {
			labels[t] = settings.SponsorTierLabels[t]
			continue
		}
		labels[t] = tr.T("tier." + string(t))
	}
	return labels
}

// SponsorView is a display-ready sponsor logo.
type SponsorView struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
	Logo Image  `json:"logo"`
}

// SponsorSection is one tier row of a sponsor grid.
type SponsorSection struct {
	Tier     domain.Tier   `json:"tier"`
	Label    string        `json:"label"`
	Sponsors []SponsorView `json:"sponsors"`
}

// SponsorSections groups sponsors by tier and labels each tier.
func SponsorSections(sponsors []*domain.Sponsor, labels map[domain.Tier]string) []SponsorSection {
	groups := GroupByTier(sponsors)
	sections := make([]SponsorSection, 0, len(groups))
	for _, g := range groups {
		label := labels[g.Tier]
		if label == "" {
			label = string(g.Tier)
		}
		sec := SponsorSection{Tier: g.Tier, Label: label, Sponsors: make([]SponsorView, 0, len(g.Sponsors))}
		for _, s := range g.Sponsors {
			sec.Sponsors = append(sec.Sponsors, SponsorView{
				Name: s.Name,
				URL:  s.URL,
				Logo: NewImage(s.Logo, s.Name),
			})
		}
		sections = append(sections, sec)
	}
	return sections
}
