package main

import (
	"fmt"
	"net/http"
	"os"

	"fyyur-backend/cmd/fyyur/apis"
	"fyyur-backend/cmd/fyyur/model"
	"fyyur-backend/cmd/fyyur/repository"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type EnvCfg struct {
	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBPort     int    `envconfig:"DB_PORT" required:"true"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" required:"true"`
	HTTPPort   int    `envconfig:"HTTP_PORT" default:"8080"`
}

func main() {

	err := os.Setenv("TZ", "UTC")
	if err != nil {
		panic(err)
	}

	// A local .env is optional; real deployments set the variables directly.
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

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.HTTPErrorHandler = httpErrorHandler

	rootg := e.Group("")

	apis.
		NewHealthCheckAPI(db).
		Setup(rootg)

	venueRepo := repository.NewVenueRepo(db)
	artistRepo := repository.NewArtistRepo(db)
	showRepo := repository.NewShowRepo(db)

	apis.
		NewVenueAPI(venueRepo, showRepo).
		Setup(rootg)

	apis.
		NewArtistAPI(artistRepo, showRepo).
		Setup(rootg)

	apis.
		NewShowAPI(showRepo).
		Setup(rootg)

	e.Start(fmt.Sprintf(":%d", cfg.HTTPPort))

}

// httpErrorHandler stands in for the dedicated 404 and 500 pages: unmatched
// routes and uncaught errors both land here and get the envelope treatment.
func httpErrorHandler(err error, c echo.Context) {

	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		message = fmt.Sprintf("%v", he.Message)
	}

	_ = c.JSON(
		code,
		model.BaseResponse{
			Message: message,
		},
	)
}
