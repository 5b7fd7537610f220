package repository

import (
	"context"
	"errors"
	"fyyur-backend/cmd/fyyur/model"

	"gorm.io/gorm"
)

type ShowRepo struct {
	db *gorm.DB
}

func NewShowRepo(db *gorm.DB) *ShowRepo {
	return &ShowRepo{
		db: db,
	}
}

// ListShows returns every show with its artist and venue loaded, for the
// joined show listing.
func (r *ShowRepo) ListShows(ctx context.Context) ([]model.Show, error) {

	var shows []model.Show

	result := r.db.
		WithContext(ctx).
		Preload("Artist").
		Preload("Venue").
		Find(&shows)

	if result.Error != nil {
		return nil, result.Error
	}

	return shows, nil
}

// ListShowsByVenue returns the shows referencing a venue, each with its
// artist loaded for the venue page's show rows.
func (r *ShowRepo) ListShowsByVenue(ctx context.Context, venueID string) ([]model.Show, error) {

	var shows []model.Show

	result := r.db.
		WithContext(ctx).
		Preload("Artist").
		Where("venue_id = ?", venueID).
		Find(&shows)

	if result.Error != nil {
		return nil, result.Error
	}

	return shows, nil
}

// ListShowsByArtist returns the shows referencing an artist, each with its
// venue loaded for the artist page's show rows.
func (r *ShowRepo) ListShowsByArtist(ctx context.Context, artistID string) ([]model.Show, error) {

	var shows []model.Show

	result := r.db.
		WithContext(ctx).
		Preload("Venue").
		Where("artist_id = ?", artistID).
		Find(&shows)

	if result.Error != nil {
		return nil, result.Error
	}

	return shows, nil
}

// CreateShow inserts a show after verifying both referenced rows inside the
// same transaction. A dangling artist or venue id fails the whole unit of
// work.
func (r *ShowRepo) CreateShow(ctx context.Context, show model.Show) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var artist model.Artist
		if err := tx.First(&artist, "id = ?", show.ArtistID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrArtistNotFound
			}
			return err
		}

		var venue model.Venue
		if err := tx.First(&venue, "id = ?", show.VenueID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVenueNotFound
			}
			return err
		}

		return tx.Create(&show).Error
	})
}
