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

type IArtistRepo interface {
	ListArtists(ctx context.Context) ([]model.Artist, error)
	GetArtist(ctx context.Context, id string) (*model.Artist, error)
	SearchArtists(ctx context.Context, term string) ([]model.Artist, error)
	CreateArtist(ctx context.Context, artist model.Artist) error
	UpdateArtist(ctx context.Context, artist model.Artist) error
}

type IArtistShowSource interface {
	ListShowsByArtist(ctx context.Context, artistID string) ([]model.Show, error)
}

type ArtistAPI struct {
	artistRepo IArtistRepo
	showRepo   IArtistShowSource
}

func NewArtistAPI(artistRepo IArtistRepo, showRepo IArtistShowSource) *ArtistAPI {

	return &ArtistAPI{
		artistRepo: artistRepo,
		showRepo:   showRepo,
	}
}

func (a *ArtistAPI) Setup(g *echo.Group) {
	g.GET("/artists", a.listArtists)
	g.POST("/artists/search", a.searchArtists)
	g.GET("/artists/create", a.createArtistForm)
	g.POST("/artists/create", a.createArtist)
	g.GET("/artists/:id", a.showArtist)
	g.GET("/artists/:id/edit", a.editArtistForm)
	g.POST("/artists/:id/edit", a.editArtist)
}

// listArtists serves the flat id/name listing; no grouping on this page.
func (a *ArtistAPI) listArtists(c echo.Context) error {

	ctx := c.Request().Context()

	artists, err := a.artistRepo.ListArtists(ctx)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	items := []model.ArtistListItem{}
	for _, artist := range artists {
		items = append(items, model.ArtistListItem{
			ID:   artist.ID,
			Name: artist.Name,
		})
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    items,
		},
	)
}

func (a *ArtistAPI) searchArtists(c echo.Context) error {

	ctx := c.Request().Context()

	term := c.FormValue("search_term")

	artists, err := a.artistRepo.SearchArtists(ctx, term)
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
				Count: len(artists),
				Data:  artists,
			},
		},
	)
}

func (a *ArtistAPI) showArtist(c echo.Context) error {

	ctx := c.Request().Context()

	artist, err := a.artistRepo.GetArtist(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
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

	shows, err := a.showRepo.ListShowsByArtist(ctx, artist.ID)
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
			Data:    model.BuildArtistPage(*artist, shows, time.Now()),
		},
	)
}

func (a *ArtistAPI) createArtistForm(c echo.Context) error {

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data: model.ArtistFormView{
				Choices: model.DefaultFormChoices(),
			},
		},
	)
}

// createArtist follows the same swallow-and-notify contract as venue
// creation: every failure answers 200 with the generic notification.
func (a *ArtistAPI) createArtist(c echo.Context) error {

	ctx := c.Request().Context()

	var form model.ArtistForm
	if err := c.Bind(&form); err != nil {
		return artistCreateFailed(c, form.Name)
	}

	if err := form.Validate(); err != nil {
		return artistCreateFailed(c, form.Name)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return artistCreateFailed(c, form.Name)
	}

	artist := model.Artist{
		ID: id.String(),
	}
	form.Apply(&artist)

	if err := a.artistRepo.CreateArtist(ctx, artist); err != nil {
		return artistCreateFailed(c, form.Name)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "Artist " + artist.Name + " was successfully listed!",
			Data:    artist,
		},
	)
}

func (a *ArtistAPI) editArtistForm(c echo.Context) error {

	ctx := c.Request().Context()

	artist, err := a.artistRepo.GetArtist(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
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
			Data: model.ArtistFormView{
				Form:    model.ArtistFormFromModel(*artist),
				Choices: model.DefaultFormChoices(),
			},
		},
	)
}

// editArtist overwrites the whole artist row from the submitted form. A
// missing id is not found before mutation; later failures collapse into the
// generic notification.
func (a *ArtistAPI) editArtist(c echo.Context) error {

	ctx := c.Request().Context()

	artist, err := a.artistRepo.GetArtist(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
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

	var form model.ArtistForm
	if err := c.Bind(&form); err != nil {
		return artistUpdateFailed(c, artist.Name)
	}

	if err := form.Validate(); err != nil {
		return artistUpdateFailed(c, artist.Name)
	}

	form.Apply(artist)

	if err := a.artistRepo.UpdateArtist(ctx, *artist); err != nil {
		return artistUpdateFailed(c, artist.Name)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "The Artist " + artist.Name + " has been successfully updated!",
			Data:    artist,
		},
	)
}

func artistCreateFailed(c echo.Context, name string) error {
	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "An error occurred. Artist " + name + " could not be listed.",
		},
	)
}

func artistUpdateFailed(c echo.Context, name string) error {
	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "An error occurred. Artist " + name + " could not be updated.",
		},
	)
}
