package model

// CSV row shapes consumed by the seed importer. Genres cells hold a
// pipe-separated list so commas stay free for the CSV itself; shows reference
// their artist and venue by name because ids are generated at import time.

type VenueCSV struct {
	Name               string `csv:"name"`
	City               string `csv:"city"`
	State              string `csv:"state"`
	Address            string `csv:"address"`
	Phone              string `csv:"phone"`
	Genres             string `csv:"genres"`
	Website            string `csv:"website"`
	FacebookLink       string `csv:"facebook_link"`
	ImageLink          string `csv:"image_link"`
	SeekingTalent      bool   `csv:"seeking_talent"`
	SeekingDescription string `csv:"seeking_description"`
}

type ArtistCSV struct {
	Name               string `csv:"name"`
	City               string `csv:"city"`
	State              string `csv:"state"`
	Phone              string `csv:"phone"`
	Genres             string `csv:"genres"`
	Website            string `csv:"website"`
	FacebookLink       string `csv:"facebook_link"`
	ImageLink          string `csv:"image_link"`
	SeekingVenue       bool   `csv:"seeking_venue"`
	SeekingDescription string `csv:"seeking_description"`
}

type ShowCSV struct {
	ArtistName string `csv:"artist_name"`
	VenueName  string `csv:"venue_name"`
	StartTime  string `csv:"start_time"`
}
