package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"fyyur-backend/cmd/fyyur/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func showColumns() []string {
	return []string{"id", "artist_id", "venue_id", "start_time"}
}

func artistColumns() []string {
	return []string{
		"id", "name", "city", "state", "phone", "genres", "website",
		"facebook_link", "image_link", "seeking_venue", "seeking_description",
	}
}

func TestShowRepo_ListShowsByVenue_PreloadsArtist(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer closeMockDB(gormDB)

	repo := NewShowRepo(gormDB)

	start := time.Date(2026, time.June, 15, 19, 30, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "shows" WHERE venue_id = \$1`).
		WithArgs("v1").
		WillReturnRows(sqlmock.NewRows(showColumns()).
			AddRow("s1", "a1", "v1", start))
	mock.ExpectQuery(`SELECT \* FROM "artists"`).
		WillReturnRows(sqlmock.NewRows(artistColumns()).
			AddRow("a1", "Guns N Petals", "San Francisco", "CA", "", "Rock n Roll",
				"", "", "https://example.com/gnp.jpg", false, ""))

	ctx := context.Background()
	shows, err := repo.ListShowsByVenue(ctx, "v1")

	assert.NoError(t, err)
	assert.Len(t, shows, 1)
	assert.Equal(t, "s1", shows[0].ID)
	assert.Equal(t, start, shows[0].StartTime.UTC())
	if assert.NotNil(t, shows[0].Artist) {
		assert.Equal(t, "Guns N Petals", shows[0].Artist.Name)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShowRepo_ListShowsByVenue_Empty(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer closeMockDB(gormDB)

	repo := NewShowRepo(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "shows" WHERE venue_id = \$1`).
		WithArgs("v9").
		WillReturnRows(sqlmock.NewRows(showColumns()))

	ctx := context.Background()
	shows, err := repo.ListShowsByVenue(ctx, "v9")

	assert.NoError(t, err)
	assert.Empty(t, shows)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShowRepo_CreateShow_VerifiesBothReferences(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer closeMockDB(gormDB)

	repo := NewShowRepo(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "artists" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(artistColumns()).
			AddRow("a1", "Guns N Petals", "San Francisco", "CA", "", "", "", "", "", false, ""))
	mock.ExpectQuery(`SELECT \* FROM "venues" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(venueColumns()).
			AddRow("v1", "The Musical Hop", "San Francisco", "CA", "", "", "", "", "", "", false, ""))
	mock.ExpectExec(`INSERT INTO "shows"`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	ctx := context.Background()
	err := repo.CreateShow(ctx, model.Show{
		ID:        "s1",
		ArtistID:  "a1",
		VenueID:   "v1",
		StartTime: time.Now().Add(time.Hour),
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShowRepo_CreateShow_DanglingArtist(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer closeMockDB(gormDB)

	repo := NewShowRepo(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "artists" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(artistColumns()))
	mock.ExpectRollback()

	ctx := context.Background()
	err := repo.CreateShow(ctx, model.Show{
		ID:       "s1",
		ArtistID: "missing",
		VenueID:  "v1",
	})

	assert.ErrorIs(t, err, ErrArtistNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShowRepo_CreateShow_DanglingVenue(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer closeMockDB(gormDB)

	repo := NewShowRepo(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "artists" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(artistColumns()).
			AddRow("a1", "Guns N Petals", "San Francisco", "CA", "", "", "", "", "", false, ""))
	mock.ExpectQuery(`SELECT \* FROM "venues" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(venueColumns()))
	mock.ExpectRollback()

	ctx := context.Background()
	err := repo.CreateShow(ctx, model.Show{
		ID:       "s1",
		ArtistID: "a1",
		VenueID:  "missing",
	})

	assert.ErrorIs(t, err, ErrVenueNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShowRepo_CreateShow_InsertFailureRollsBack(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	defer closeMockDB(gormDB)

	repo := NewShowRepo(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "artists" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(artistColumns()).
			AddRow("a1", "Guns N Petals", "San Francisco", "CA", "", "", "", "", "", false, ""))
	mock.ExpectQuery(`SELECT \* FROM "venues" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(venueColumns()).
			AddRow("v1", "The Musical Hop", "San Francisco", "CA", "", "", "", "", "", "", false, ""))
	mock.ExpectExec(`INSERT INTO "shows"`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	ctx := context.Background()
	err := repo.CreateShow(ctx, model.Show{ID: "s1", ArtistID: "a1", VenueID: "v1"})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
