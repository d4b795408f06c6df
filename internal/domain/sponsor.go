package domain

import "context"

// Tier is a sponsor's prominence rank.
type Tier string

// Sponsor tiers, most prominent first.
const (
	TierPlatinum     Tier = "platinum"
	TierGold         Tier = "gold"
	TierSilver       Tier = "silver"
	TierBronze       Tier = "bronze"
	TierCollaborator Tier = "collaborator"
)

// Tiers lists every tier in display order. The order is used both for grouping and for
// visual emphasis.
var Tiers = []Tier{TierPlatinum, TierGold, TierSilver, TierBronze, TierCollaborator}

// IsValid reports whether t is one of Tiers.
func (t Tier) IsValid() bool {
	for _, v := range Tiers {
		if v == t {
			return true
		}
	}
	return false
}

// Rank returns the position of t in Tiers, or len(Tiers) for unknown tiers.
func (t Tier) Rank() int {
	for i, v := range Tiers {
		if v == t {
			return i
		}
	}
	return len(Tiers)
}

// Sponsor is a company supporting the community. IsGlobal sponsors are shown site-wide.
// swagger:model Sponsor
type Sponsor struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Logo     *Media `json:"logo,omitempty"`
	URL      string `json:"url,omitempty"`
	Tier     Tier   `json:"tier"`
	IsGlobal bool   `json:"is_global"`
}

// SponsorRepository defines read access to sponsors.
type SponsorRepository interface {
	ListGlobal(ctx context.Context, limit int) ([]*Sponsor, error)
}
