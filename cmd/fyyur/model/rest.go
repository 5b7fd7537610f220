package model

type BaseResponse struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
}

// VenueArea is one (city, state) bucket of the venue directory.
type VenueArea struct {
	City   string          `json:"city"`
	State  string          `json:"state"`
	Venues []VenueListItem `json:"venues"`
}

type VenueListItem struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

type ArtistListItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SearchResults struct {
	Count int `json:"count"`
	Data  any `json:"data"`
}

// VenueShowView is one show row on a venue page: the artist side plus the
// formatted start time.
type VenueShowView struct {
	ArtistID        string `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ArtistShowView is one show row on an artist page: the venue side plus the
// formatted start time.
type ArtistShowView struct {
	VenueID        string `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

type VenuePage struct {
	Venue
	PastShows          []VenueShowView `json:"past_shows"`
	UpcomingShows      []VenueShowView `json:"upcoming_shows"`
	PastShowsCount     int             `json:"past_shows_count"`
	UpcomingShowsCount int             `json:"upcoming_shows_count"`
}

type ArtistPage struct {
	Artist
	PastShows          []ArtistShowView `json:"past_shows"`
	UpcomingShows      []ArtistShowView `json:"upcoming_shows"`
	PastShowsCount     int              `json:"past_shows_count"`
	UpcomingShowsCount int              `json:"upcoming_shows_count"`
}

type ShowListItem struct {
	VenueID         string `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        string `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}
