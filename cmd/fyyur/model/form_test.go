package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validVenueForm() VenueForm {
	return VenueForm{
		Name:         "The Musical Hop",
		City:         "San Francisco",
		State:        "CA",
		Address:      "1015 Folsom Street",
		Phone:        "123-123-1234",
		Genres:       []string{"Jazz", "Folk"},
		Website:      "https://themusicalhop.com",
		FacebookLink: "https://www.facebook.com/TheMusicalHop",
		ImageLink:    "https://example.com/hop.jpg",
	}
}

func TestVenueForm_Validate_OK(t *testing.T) {
	assert.NoError(t, validVenueForm().Validate())
}

func TestVenueForm_Validate_RequiredFields(t *testing.T) {
	form := validVenueForm()
	form.Name = ""
	assert.Error(t, form.Validate())

	form = validVenueForm()
	form.City = ""
	assert.Error(t, form.Validate())

	form = validVenueForm()
	form.State = ""
	assert.Error(t, form.Validate())
}

func TestVenueForm_Validate_UnknownState(t *testing.T) {
	form := validVenueForm()
	form.State = "XX"
	assert.Error(t, form.Validate())
}

func TestVenueForm_Validate_MalformedLink(t *testing.T) {
	form := validVenueForm()
	form.Website = "not a url"
	assert.Error(t, form.Validate())

	form = validVenueForm()
	form.FacebookLink = "ftp://example.com/page"
	assert.Error(t, form.Validate())
}

func TestVenueForm_Validate_EmptyLinksAllowed(t *testing.T) {
	form := validVenueForm()
	form.Website = ""
	form.FacebookLink = ""
	form.ImageLink = ""
	assert.NoError(t, form.Validate())
}

func TestVenueForm_Validate_FreeTextGenresAccepted(t *testing.T) {
	form := validVenueForm()
	form.Genres = []string{"Mongolian Throat Metal"}
	assert.NoError(t, form.Validate())
}

func TestVenueForm_Apply_OverwritesEveryField(t *testing.T) {
	venue := Venue{
		ID:                 "v1",
		Name:               "Old Name",
		City:               "Old City",
		State:              "NY",
		Address:            "old address",
		Phone:              "000",
		Genres:             Genres{"Blues"},
		Website:            "https://old.example.com",
		SeekingTalent:      true,
		SeekingDescription: "old pitch",
	}

	form := validVenueForm()
	form.Apply(&venue)

	assert.Equal(t, "v1", venue.ID, "id is not an editable field")
	assert.Equal(t, form.Name, venue.Name)
	assert.Equal(t, form.City, venue.City)
	assert.Equal(t, form.State, venue.State)
	assert.Equal(t, form.Address, venue.Address)
	assert.Equal(t, form.Phone, venue.Phone)
	assert.Equal(t, Genres(form.Genres), venue.Genres)
	assert.Equal(t, form.Website, venue.Website)
	assert.False(t, venue.SeekingTalent, "unchecked box must clear the stored flag")
	assert.Empty(t, venue.SeekingDescription)
}

func TestVenueFormFromModel_RoundTrip(t *testing.T) {
	venue := Venue{ID: "v1"}
	original := validVenueForm()
	original.Apply(&venue)

	assert.Equal(t, original, VenueFormFromModel(venue))
}

func TestArtistForm_Validate(t *testing.T) {
	form := ArtistForm{
		Name:  "Guns N Petals",
		City:  "San Francisco",
		State: "CA",
	}
	assert.NoError(t, form.Validate())

	form.State = "ZZ"
	assert.Error(t, form.Validate())

	form.State = "CA"
	form.ImageLink = "://bad"
	assert.Error(t, form.Validate())
}

func TestArtistForm_Apply_OverwritesEveryField(t *testing.T) {
	artist := Artist{
		ID:           "a1",
		Name:         "Old Act",
		SeekingVenue: true,
	}

	form := ArtistForm{
		Name:   "Guns N Petals",
		City:   "San Francisco",
		State:  "CA",
		Genres: []string{"Rock n Roll"},
	}
	form.Apply(&artist)

	assert.Equal(t, "a1", artist.ID)
	assert.Equal(t, "Guns N Petals", artist.Name)
	assert.Equal(t, Genres{"Rock n Roll"}, artist.Genres)
	assert.False(t, artist.SeekingVenue)
}

func TestDefaultFormChoices(t *testing.T) {
	choices := DefaultFormChoices()
	assert.Contains(t, choices.States, "TX")
	assert.Contains(t, choices.Genres, "Jazz")
}
