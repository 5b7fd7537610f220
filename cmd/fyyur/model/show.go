package model

import "time"

// Show is a pure join record: it has no meaning unless both referenced
// rows resolve.
type Show struct {
	ID        string    `gorm:"column:id" json:"id"`
	ArtistID  string    `gorm:"column:artist_id" json:"artist_id"`
	VenueID   string    `gorm:"column:venue_id" json:"venue_id"`
	StartTime time.Time `gorm:"column:start_time" json:"start_time"`

	Artist *Artist `gorm:"foreignKey:ArtistID" json:"-"`
	Venue  *Venue  `gorm:"foreignKey:VenueID" json:"-"`
}

func (m *Show) TableName() string {
	return "shows"
}
