package repository

import (
	"context"
	"errors"
	"fyyur-backend/cmd/fyyur/model"

	"gorm.io/gorm"
)

type VenueRepo struct {
	db *gorm.DB
}

func NewVenueRepo(db *gorm.DB) *VenueRepo {
	return &VenueRepo{
		db: db,
	}
}

func (r *VenueRepo) ListVenues(ctx context.Context) ([]model.Venue, error) {

	var venues []model.Venue

	result := r.db.
		WithContext(ctx).
		Model(&model.Venue{}).
		Find(&venues)

	if result.Error != nil {
		return nil, result.Error
	}

	return venues, nil
}

func (r *VenueRepo) GetVenue(ctx context.Context, id string) (*model.Venue, error) {

	var venue model.Venue

	result := r.db.
		WithContext(ctx).
		First(&venue, "id = ?", id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, result.Error
	}

	return &venue, nil
}

// SearchVenues matches the term as a case-insensitive substring of the venue
// name. An empty term matches every venue.
func (r *VenueRepo) SearchVenues(ctx context.Context, term string) ([]model.Venue, error) {

	var venues []model.Venue

	result := r.db.
		WithContext(ctx).
		Where("name ILIKE ?", "%"+term+"%").
		Find(&venues)

	if result.Error != nil {
		return nil, result.Error
	}

	return venues, nil
}

func (r *VenueRepo) CreateVenue(ctx context.Context, venue model.Venue) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&venue).Error
	})
}

// UpdateVenue overwrites every column of the venue row. The row must exist;
// a missing id fails with ErrVenueNotFound before anything is written.
func (r *VenueRepo) UpdateVenue(ctx context.Context, venue model.Venue) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Venue
		if err := tx.First(&existing, "id = ?", venue.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVenueNotFound
			}
			return err
		}
		return tx.Save(&venue).Error
	})
}

// DeleteVenue removes the venue row. A venue that still has shows cannot be
// deleted; the transaction fails with ErrVenueHasShows and nothing changes.
func (r *VenueRepo) DeleteVenue(ctx context.Context, id string) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var venue model.Venue
		if err := tx.First(&venue, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVenueNotFound
			}
			return err
		}

		var refs int64
		if err := tx.Model(&model.Show{}).Where("venue_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return ErrVenueHasShows
		}

		return tx.Delete(&venue).Error
	})
}
