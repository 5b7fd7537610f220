package repository

import (
	"context"
	"errors"
	"fyyur-backend/cmd/fyyur/model"

	"gorm.io/gorm"
)

type ArtistRepo struct {
	db *gorm.DB
}

func NewArtistRepo(db *gorm.DB) *ArtistRepo {
	return &ArtistRepo{
		db: db,
	}
}

func (r *ArtistRepo) ListArtists(ctx context.Context) ([]model.Artist, error) {

	var artists []model.Artist

	result := r.db.
		WithContext(ctx).
		Model(&model.Artist{}).
		Find(&artists)

	if result.Error != nil {
		return nil, result.Error
	}

	return artists, nil
}

func (r *ArtistRepo) GetArtist(ctx context.Context, id string) (*model.Artist, error) {

	var artist model.Artist

	result := r.db.
		WithContext(ctx).
		First(&artist, "id = ?", id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, result.Error
	}

	return &artist, nil
}

// SearchArtists matches the term as a case-insensitive substring of the
// artist name. An empty term matches every artist.
func (r *ArtistRepo) SearchArtists(ctx context.Context, term string) ([]model.Artist, error) {

	var artists []model.Artist

	result := r.db.
		WithContext(ctx).
		Where("name ILIKE ?", "%"+term+"%").
		Find(&artists)

	if result.Error != nil {
		return nil, result.Error
	}

	return artists, nil
}

func (r *ArtistRepo) CreateArtist(ctx context.Context, artist model.Artist) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&artist).Error
	})
}

// UpdateArtist overwrites every column of the artist row. A missing id fails
// with ErrArtistNotFound before anything is written.
func (r *ArtistRepo) UpdateArtist(ctx context.Context, artist model.Artist) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Artist
		if err := tx.First(&existing, "id = ?", artist.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrArtistNotFound
			}
			return err
		}
		return tx.Save(&artist).Error
	})
}
