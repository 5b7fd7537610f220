package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTableNames(t *testing.T) {
	assert.Equal(t, "venues", (&Venue{}).TableName())
	assert.Equal(t, "artists", (&Artist{}).TableName())
	assert.Equal(t, "shows", (&Show{}).TableName())
}

func TestVenue_JSONFieldNames(t *testing.T) {
	venue := Venue{
		ID:            "v1",
		Name:          "The Musical Hop",
		Genres:        Genres{"Jazz", "Folk"},
		SeekingTalent: true,
	}

	jsonData, err := json.Marshal(venue)
	assert.NoError(t, err)
	assert.Contains(t, string(jsonData), `"id":"v1"`)
	assert.Contains(t, string(jsonData), `"genres":["Jazz","Folk"]`)
	assert.Contains(t, string(jsonData), `"seeking_talent":true`)
	assert.Contains(t, string(jsonData), `"facebook_link"`)
}

func TestShow_JSONHidesJoinedRecords(t *testing.T) {
	show := Show{
		ID:        "s1",
		ArtistID:  "a1",
		VenueID:   "v1",
		StartTime: time.Date(2026, time.June, 15, 19, 30, 0, 0, time.UTC),
		Artist:    &Artist{ID: "a1", Name: "Guns N Petals"},
		Venue:     &Venue{ID: "v1", Name: "The Musical Hop"},
	}

	jsonData, err := json.Marshal(show)
	assert.NoError(t, err)
	assert.Contains(t, string(jsonData), `"artist_id":"a1"`)
	assert.Contains(t, string(jsonData), `"venue_id":"v1"`)
	assert.NotContains(t, string(jsonData), "Guns N Petals", "preloaded records stay out of the raw show JSON")
}
