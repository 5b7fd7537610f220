// fyyur-seed loads sample venues, artists and shows from CSV files into the
// directory's database. Shows reference their artist and venue by name, so
// the importer resolves names to the ids it just generated.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fyyur-backend/cmd/fyyur/model"
	"fyyur-backend/cmd/fyyur/repository"

	"github.com/gocarina/gocsv"
	"github.com/goforj/godump"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type EnvCfg struct {
	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBPort     int    `envconfig:"DB_PORT" required:"true"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" required:"true"`
	SeedDir    string `envconfig:"SEED_DIR" default:"seed"`
}

func main() {

	err := os.Setenv("TZ", "UTC")
	if err != nil {
		panic(err)
	}

	_ = godotenv.Load()

	var cfg EnvCfg
	err = envconfig.Process("FYYUR", &cfg)
	if err != nil {
		panic(err)
	}

	db, err := gorm.Open(
		postgres.Open(
			fmt.Sprintf(
				"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
				cfg.DBHost,
				cfg.DBPort,
				cfg.DBUser,
				cfg.DBPassword,
				cfg.DBName,
			),
		),
	)

	if err != nil {
		panic(err)
	}

	ctx := context.Background()

	venueRepo := repository.NewVenueRepo(db)
	artistRepo := repository.NewArtistRepo(db)
	showRepo := repository.NewShowRepo(db)

	venueIDs, err := seedVenues(ctx, venueRepo, filepath.Join(cfg.SeedDir, "venues.csv"))
	if err != nil {
		panic(err)
	}

	artistIDs, err := seedArtists(ctx, artistRepo, filepath.Join(cfg.SeedDir, "artists.csv"))
	if err != nil {
		panic(err)
	}

	err = seedShows(ctx, showRepo, filepath.Join(cfg.SeedDir, "shows.csv"), artistIDs, venueIDs)
	if err != nil {
		panic(err)
	}
}

func seedVenues(ctx context.Context, repo *repository.VenueRepo, path string) (map[string]string, error) {

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []model.VenueCSV
	err = gocsv.Unmarshal(f, &rows)
	if err != nil {
		return nil, err
	}

	godump.Dump(rows)

	ids := map[string]string{}
	for _, row := range rows {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, err
		}

		venue := model.Venue{
			ID:                 id.String(),
			Name:               row.Name,
			City:               row.City,
			State:              row.State,
			Address:            row.Address,
			Phone:              row.Phone,
			Genres:             splitSeedGenres(row.Genres),
			Website:            row.Website,
			FacebookLink:       row.FacebookLink,
			ImageLink:          row.ImageLink,
			SeekingTalent:      row.SeekingTalent,
			SeekingDescription: row.SeekingDescription,
		}

		err = repo.CreateVenue(ctx, venue)
		if err != nil {
			return nil, err
		}

		ids[venue.Name] = venue.ID
	}

	return ids, nil
}

func seedArtists(ctx context.Context, repo *repository.ArtistRepo, path string) (map[string]string, error) {

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []model.ArtistCSV
	err = gocsv.Unmarshal(f, &rows)
	if err != nil {
		return nil, err
	}

	godump.Dump(rows)

	ids := map[string]string{}
	for _, row := range rows {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, err
		}

		artist := model.Artist{
			ID:                 id.String(),
			Name:               row.Name,
			City:               row.City,
			State:              row.State,
			Phone:              row.Phone,
			Genres:             splitSeedGenres(row.Genres),
			Website:            row.Website,
			FacebookLink:       row.FacebookLink,
			ImageLink:          row.ImageLink,
			SeekingVenue:       row.SeekingVenue,
			SeekingDescription: row.SeekingDescription,
		}

		err = repo.CreateArtist(ctx, artist)
		if err != nil {
			return nil, err
		}

		ids[artist.Name] = artist.ID
	}

	return ids, nil
}

func seedShows(ctx context.Context, repo *repository.ShowRepo, path string, artistIDs, venueIDs map[string]string) error {

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var rows []model.ShowCSV
	err = gocsv.Unmarshal(f, &rows)
	if err != nil {
		return err
	}

	godump.Dump(rows)

	for _, row := range rows {
		artistID, ok := artistIDs[row.ArtistName]
		if !ok {
			return fmt.Errorf("show references unknown artist %q", row.ArtistName)
		}

		venueID, ok := venueIDs[row.VenueName]
		if !ok {
			return fmt.Errorf("show references unknown venue %q", row.VenueName)
		}

		startTime, err := model.ParseStartTime(row.StartTime)
		if err != nil {
			return err
		}

		id, err := uuid.NewV7()
		if err != nil {
			return err
		}

		show := model.Show{
			ID:        id.String(),
			ArtistID:  artistID,
			VenueID:   venueID,
			StartTime: startTime,
		}

		err = repo.CreateShow(ctx, show)
		if err != nil {
			return err
		}
	}

	return nil
}

// Genre cells hold a pipe-separated list so commas stay free for the CSV.
func splitSeedGenres(s string) model.Genres {
	if s == "" {
		return nil
	}
	return model.Genres(strings.Split(s, "|"))
}
