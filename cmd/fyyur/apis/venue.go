package apis

import (
	"context"
	"errors"
	"fyyur-backend/cmd/fyyur/model"
	"fyyur-backend/cmd/fyyur/repository"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type IVenueRepo interface {
	ListVenues(ctx context.Context) ([]model.Venue, error)
	GetVenue(ctx context.Context, id string) (*model.Venue, error)
	SearchVenues(ctx context.Context, term string) ([]model.Venue, error)
	CreateVenue(ctx context.Context, venue model.Venue) error
	UpdateVenue(ctx context.Context, venue model.Venue) error
	DeleteVenue(ctx context.Context, id string) error
}

type IVenueShowSource interface {
	ListShowsByVenue(ctx context.Context, venueID string) ([]model.Show, error)
}

type VenueAPI struct {
	venueRepo IVenueRepo
	showRepo  IVenueShowSource
}

func NewVenueAPI(venueRepo IVenueRepo, showRepo IVenueShowSource) *VenueAPI {

	return &VenueAPI{
		venueRepo: venueRepo,
		showRepo:  showRepo,
	}
}

func (a *VenueAPI) Setup(g *echo.Group) {
	g.GET("/venues", a.listVenues)
	g.POST("/venues/search", a.searchVenues)
	g.GET("/venues/create", a.createVenueForm)
	g.POST("/venues/create", a.createVenue)
	g.GET("/venues/:id", a.showVenue)
	g.DELETE("/venues/:id", a.deleteVenue)
	g.GET("/venues/:id/edit", a.editVenueForm)
	g.POST("/venues/:id/edit", a.editVenue)
}

// listVenues serves the directory: every venue, grouped into (city, state)
// area buckets with a strict-future upcoming-show count per venue.
func (a *VenueAPI) listVenues(c echo.Context) error {

	ctx := c.Request().Context()

	venues, err := a.venueRepo.ListVenues(ctx)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	now := time.Now()
	upcoming := map[string]int{}
	for _, v := range venues {
		shows, err := a.showRepo.ListShowsByVenue(ctx, v.ID)
		if err != nil {
			return c.JSON(
				http.StatusInternalServerError,
				model.BaseResponse{
					Message: err.Error(),
				},
			)
		}
		upcoming[v.ID] = model.CountUpcoming(shows, now)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    model.GroupVenuesByArea(venues, upcoming),
		},
	)
}

func (a *VenueAPI) searchVenues(c echo.Context) error {

	ctx := c.Request().Context()

	term := c.FormValue("search_term")

	venues, err := a.venueRepo.SearchVenues(ctx, term)
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
			Data: model.SearchResults{
				Count: len(venues),
				Data:  venues,
			},
		},
	)
}

func (a *VenueAPI) showVenue(c echo.Context) error {

	ctx := c.Request().Context()

	venue, err := a.venueRepo.GetVenue(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(
				http.StatusNotFound,
				model.BaseResponse{
					Message: err.Error(),
				},
			)
		}
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	shows, err := a.showRepo.ListShowsByVenue(ctx, venue.ID)
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
			Data:    model.BuildVenuePage(*venue, shows, time.Now()),
		},
	)
}

func (a *VenueAPI) createVenueForm(c echo.Context) error {

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data: model.VenueFormView{
				Choices: model.DefaultFormChoices(),
			},
		},
	)
}

// createVenue persists a submitted venue. Any failure, from a rejected form
// to a store outage, rolls back and answers with the one generic failure
// notification; the request itself still succeeds.
func (a *VenueAPI) createVenue(c echo.Context) error {

	ctx := c.Request().Context()

	var form model.VenueForm
	if err := c.Bind(&form); err != nil {
		return venueCreateFailed(c, form.Name)
	}

	if err := form.Validate(); err != nil {
		return venueCreateFailed(c, form.Name)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return venueCreateFailed(c, form.Name)
	}

	venue := model.Venue{
		ID: id.String(),
	}
	form.Apply(&venue)

	if err := a.venueRepo.CreateVenue(ctx, venue); err != nil {
		return venueCreateFailed(c, form.Name)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "Venue " + venue.Name + " was successfully listed!",
			Data:    venue,
		},
	)
}

func (a *VenueAPI) editVenueForm(c echo.Context) error {

	ctx := c.Request().Context()

	venue, err := a.venueRepo.GetVenue(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(
				http.StatusNotFound,
				model.BaseResponse{
					Message: err.Error(),
				},
			)
		}
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
			Data: model.VenueFormView{
				Form:    model.VenueFormFromModel(*venue),
				Choices: model.DefaultFormChoices(),
			},
		},
	)
}

// editVenue applies every submitted field onto the stored venue, a whole-row
// overwrite. A missing id is reported as not found before any mutation; later
// failures collapse into the generic notification.
func (a *VenueAPI) editVenue(c echo.Context) error {

	ctx := c.Request().Context()

	venue, err := a.venueRepo.GetVenue(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(
				http.StatusNotFound,
				model.BaseResponse{
					Message: err.Error(),
				},
			)
		}
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	var form model.VenueForm
	if err := c.Bind(&form); err != nil {
		return venueUpdateFailed(c, venue.Name)
	}

	if err := form.Validate(); err != nil {
		return venueUpdateFailed(c, venue.Name)
	}

	form.Apply(venue)

	if err := a.venueRepo.UpdateVenue(ctx, *venue); err != nil {
		return venueUpdateFailed(c, venue.Name)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "Venue " + venue.Name + " has been updated",
			Data:    venue,
		},
	)
}

// deleteVenue checks the venue exists before touching anything, so a missing
// id surfaces as not found instead of a delete failure. Venues that still
// have shows are kept; the restriction surfaces through the generic failure
// notification.
func (a *VenueAPI) deleteVenue(c echo.Context) error {

	ctx := c.Request().Context()

	venue, err := a.venueRepo.GetVenue(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(
				http.StatusNotFound,
				model.BaseResponse{
					Message: err.Error(),
				},
			)
		}
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	if err := a.venueRepo.DeleteVenue(ctx, venue.ID); err != nil {
		return c.JSON(
			http.StatusOK,
			model.BaseResponse{
				Message: "An error occurred. Venue " + venue.Name + " could not be deleted.",
			},
		)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "Venue " + venue.Name + " was deleted",
		},
	)
}

func venueCreateFailed(c echo.Context, name string) error {
	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "An error occurred. Venue " + name + " could not be listed.",
		},
	)
}

func venueUpdateFailed(c echo.Context, name string) error {
	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "An error occurred. Venue " + name + " could not be updated.",
		},
	)
}
