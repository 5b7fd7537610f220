package model

import "time"

// GroupVenuesByArea buckets venues by their (city, state) pair. Buckets keep
// first-seen order; nothing guarantees an alphabetical listing.
// upcomingByVenue maps a venue id to its upcoming-show count.
func GroupVenuesByArea(venues []Venue, upcomingByVenue map[string]int) []VenueArea {
	areas := []VenueArea{}
	index := map[[2]string]int{}
	for _, v := range venues {
		key := [2]string{v.City, v.State}
		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, VenueArea{City: v.City, State: v.State})
		}
		areas[i].Venues = append(areas[i].Venues, VenueListItem{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: upcomingByVenue[v.ID],
		})
	}
	return areas
}

// CountUpcoming counts shows starting strictly after now.
func CountUpcoming(shows []Show, now time.Time) int {
	n := 0
	for _, s := range shows {
		if s.StartTime.After(now) {
			n++
		}
	}
	return n
}

// PartitionShows splits shows into past and upcoming. Only a start time
// strictly after now is upcoming; a show starting exactly at now is past.
func PartitionShows(shows []Show, now time.Time) (past, upcoming []Show) {
	for _, s := range shows {
		if s.StartTime.After(now) {
			upcoming = append(upcoming, s)
		} else {
			past = append(past, s)
		}
	}
	return past, upcoming
}

// BuildVenuePage assembles the venue detail view: the venue's fields plus its
// shows partitioned into past and upcoming. The counts are the partition
// lengths.
func BuildVenuePage(v Venue, shows []Show, now time.Time) VenuePage {
	past, upcoming := PartitionShows(shows, now)
	page := VenuePage{
		Venue:         v,
		PastShows:     []VenueShowView{},
		UpcomingShows: []VenueShowView{},
	}
	for _, s := range past {
		page.PastShows = append(page.PastShows, venueShowView(s))
	}
	for _, s := range upcoming {
		page.UpcomingShows = append(page.UpcomingShows, venueShowView(s))
	}
	page.PastShowsCount = len(page.PastShows)
	page.UpcomingShowsCount = len(page.UpcomingShows)
	return page
}

// BuildArtistPage mirrors BuildVenuePage for an artist's shows, projecting
// the venue side of each show.
func BuildArtistPage(a Artist, shows []Show, now time.Time) ArtistPage {
	past, upcoming := PartitionShows(shows, now)
	page := ArtistPage{
		Artist:        a,
		PastShows:     []ArtistShowView{},
		UpcomingShows: []ArtistShowView{},
	}
	for _, s := range past {
		page.PastShows = append(page.PastShows, artistShowView(s))
	}
	for _, s := range upcoming {
		page.UpcomingShows = append(page.UpcomingShows, artistShowView(s))
	}
	page.PastShowsCount = len(page.PastShows)
	page.UpcomingShowsCount = len(page.UpcomingShows)
	return page
}

// BuildShowList projects joined shows into listing rows. No grouping and no
// past/upcoming split here.
func BuildShowList(shows []Show) []ShowListItem {
	items := []ShowListItem{}
	for _, s := range shows {
		item := ShowListItem{
			VenueID:   s.VenueID,
			ArtistID:  s.ArtistID,
			StartTime: FormatDateTime(s.StartTime, "medium"),
		}
		if s.Venue != nil {
			item.VenueName = s.Venue.Name
		}
		if s.Artist != nil {
			item.ArtistName = s.Artist.Name
			item.ArtistImageLink = s.Artist.ImageLink
		}
		items = append(items, item)
	}
	return items
}

func venueShowView(s Show) VenueShowView {
	view := VenueShowView{
		ArtistID:  s.ArtistID,
		StartTime: FormatDateTime(s.StartTime, "medium"),
	}
	if s.Artist != nil {
		view.ArtistName = s.Artist.Name
		view.ArtistImageLink = s.Artist.ImageLink
	}
	return view
}

func artistShowView(s Show) ArtistShowView {
	view := ArtistShowView{
		VenueID:   s.VenueID,
		StartTime: FormatDateTime(s.StartTime, "medium"),
	}
	if s.Venue != nil {
		view.VenueName = s.Venue.Name
		view.VenueImageLink = s.Venue.ImageLink
	}
	return view
}
