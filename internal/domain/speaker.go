package domain

// Speaker is a person presenting at one or more events. Speakers are shared between
// events and sessions and are never owned by either.
// swagger:model Speaker
type Speaker struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Title string   `json:"title"`
	Photo *Media   `json:"photo,omitempty"`
	Bio   RichText `json:"bio"`
}

// NewSpeaker returns a new Speaker with the given fields. ID is typically set by the repository on create.
func NewSpeaker(name, title string, photo *Media, bio RichText) *Speaker {
	return &Speaker{
		Name:  name,
		Title: title,
		Photo: photo,
		Bio:   bio,
	}
}
