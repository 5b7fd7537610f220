package model

import (
	"fmt"
	"net/url"
)

// StateChoices is the US state enumeration offered by the venue and artist
// forms. Submitted states must come from this list.
var StateChoices = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MD", "MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH",
	"NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
}

// GenreChoices is the suggestion list shown by the forms. Genres stay
// free-text in the store, so submissions outside this list are accepted.
var GenreChoices = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk",
	"Funk", "Hip-Hop", "Heavy Metal", "Instrumental", "Jazz",
	"Musical Theatre", "Pop", "Punk", "R&B", "Reggae", "Rock n Roll",
	"Soul", "Other",
}

type FormChoices struct {
	States []string `json:"states"`
	Genres []string `json:"genres"`
}

func DefaultFormChoices() FormChoices {
	return FormChoices{States: StateChoices, Genres: GenreChoices}
}

type VenueForm struct {
	Name               string   `form:"name" json:"name"`
	City               string   `form:"city" json:"city"`
	State              string   `form:"state" json:"state"`
	Address            string   `form:"address" json:"address"`
	Phone              string   `form:"phone" json:"phone"`
	Genres             []string `form:"genres" json:"genres"`
	Website            string   `form:"website" json:"website"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link"`
	ImageLink          string   `form:"image_link" json:"image_link"`
	SeekingTalent      bool     `form:"seeking_talent" json:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
}

// VenueFormView pairs a form's current values with its field choices, for
// rendering the empty creation form or the pre-filled edit form.
type VenueFormView struct {
	Form    VenueForm   `json:"form"`
	Choices FormChoices `json:"choices"`
}

func (f VenueForm) Validate() error {
	if f.Name == "" || f.City == "" || f.State == "" {
		return fmt.Errorf("name, city and state are required")
	}
	if !validState(f.State) {
		return fmt.Errorf("unknown state %q", f.State)
	}
	return validateLinks(f.Website, f.FacebookLink, f.ImageLink)
}

// Apply writes every editable field onto v. Edits overwrite the whole record,
// not just changed fields.
func (f VenueForm) Apply(v *Venue) {
	v.Name = f.Name
	v.City = f.City
	v.State = f.State
	v.Address = f.Address
	v.Phone = f.Phone
	v.Genres = Genres(f.Genres)
	v.Website = f.Website
	v.FacebookLink = f.FacebookLink
	v.ImageLink = f.ImageLink
	v.SeekingTalent = f.SeekingTalent
	v.SeekingDescription = f.SeekingDescription
}

func VenueFormFromModel(v Venue) VenueForm {
	return VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		Genres:             []string(v.Genres),
		Website:            v.Website,
		FacebookLink:       v.FacebookLink,
		ImageLink:          v.ImageLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
}

type ArtistForm struct {
	Name               string   `form:"name" json:"name"`
	City               string   `form:"city" json:"city"`
	State              string   `form:"state" json:"state"`
	Phone              string   `form:"phone" json:"phone"`
	Genres             []string `form:"genres" json:"genres"`
	Website            string   `form:"website" json:"website"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link"`
	ImageLink          string   `form:"image_link" json:"image_link"`
	SeekingVenue       bool     `form:"seeking_venue" json:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
}

type ArtistFormView struct {
	Form    ArtistForm  `json:"form"`
	Choices FormChoices `json:"choices"`
}

func (f ArtistForm) Validate() error {
	if f.Name == "" || f.City == "" || f.State == "" {
		return fmt.Errorf("name, city and state are required")
	}
	if !validState(f.State) {
		return fmt.Errorf("unknown state %q", f.State)
	}
	return validateLinks(f.Website, f.FacebookLink, f.ImageLink)
}

func (f ArtistForm) Apply(a *Artist) {
	a.Name = f.Name
	a.City = f.City
	a.State = f.State
	a.Phone = f.Phone
	a.Genres = Genres(f.Genres)
	a.Website = f.Website
	a.FacebookLink = f.FacebookLink
	a.ImageLink = f.ImageLink
	a.SeekingVenue = f.SeekingVenue
	a.SeekingDescription = f.SeekingDescription
}

func ArtistFormFromModel(a Artist) ArtistForm {
	return ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             []string(a.Genres),
		Website:            a.Website,
		FacebookLink:       a.FacebookLink,
		ImageLink:          a.ImageLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}
}

// ShowForm only backs the empty creation form view; show submissions are read
// straight from the raw request fields.
type ShowForm struct {
	ArtistID  string `form:"artist_id" json:"artist_id"`
	VenueID   string `form:"venue_id" json:"venue_id"`
	StartTime string `form:"start_time" json:"start_time"`
}

func validState(s string) bool {
	for _, choice := range StateChoices {
		if s == choice {
			return true
		}
	}
	return false
}

// validateLinks checks that every non-empty link parses as an absolute
// http(s) URL.
func validateLinks(links ...string) error {
	for _, link := range links {
		if link == "" {
			continue
		}
		u, err := url.Parse(link)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("malformed link %q", link)
		}
	}
	return nil
}
