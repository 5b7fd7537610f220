package apis

import (
	"context"
	"fyyur-backend/cmd/fyyur/model"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type IShowRepo interface {
	ListShows(ctx context.Context) ([]model.Show, error)
	CreateShow(ctx context.Context, show model.Show) error
}

type ShowAPI struct {
	showRepo IShowRepo
}

func NewShowAPI(showRepo IShowRepo) *ShowAPI {

	return &ShowAPI{
		showRepo: showRepo,
	}
}

func (a *ShowAPI) Setup(g *echo.Group) {
	g.GET("/shows", a.listShows)
	g.GET("/shows/create", a.createShowForm)
	g.POST("/shows/create", a.createShow)
}

// listShows serves every show joined with its artist and venue, one flat
// list with no grouping and no past/upcoming split.
func (a *ShowAPI) listShows(c echo.Context) error {

	ctx := c.Request().Context()

	shows, err := a.showRepo.ListShows(ctx)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    model.BuildShowList(shows),
		},
	)
}

func (a *ShowAPI) createShowForm(c echo.Context) error {

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    model.ShowForm{},
		},
	)
}

// createShow builds the show straight from the raw request fields; there is
// no declared form object on this path. A dangling artist or venue id fails
// inside the transaction and surfaces as the generic notification.
func (a *ShowAPI) createShow(c echo.Context) error {

	ctx := c.Request().Context()

	artistID := c.FormValue("artist_id")
	venueID := c.FormValue("venue_id")

	startTime, err := model.ParseStartTime(c.FormValue("start_time"))
	if err != nil {
		return showCreateFailed(c)
	}

	if artistID == "" || venueID == "" {
		return showCreateFailed(c)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return showCreateFailed(c)
	}

	show := model.Show{
		ID:        id.String(),
		ArtistID:  artistID,
		VenueID:   venueID,
		StartTime: startTime,
	}

	if err := a.showRepo.CreateShow(ctx, show); err != nil {
		return showCreateFailed(c)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "Show was successfully listed!",
			Data:    show,
		},
	)
}

func showCreateFailed(c echo.Context) error {
	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "An error occurred. Show could not be listed.",
		},
	)
}
