package handler // handler package contains artist-specific handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fyyur/fyyur/internal/repository"
)

// ArtistHandler bundles the repositories needed to serve artist routes.
type ArtistHandler struct {
	ArtistRepo *repository.ArtistRepo
	ShowRepo   *repository.ShowRepo
}

// NewArtistHandler constructs an ArtistHandler.
func NewArtistHandler(artists *repository.ArtistRepo, shows *repository.ShowRepo) *ArtistHandler {
	return &ArtistHandler{ArtistRepo: artists, ShowRepo: shows}
}

// artistForm is the request body for creating or editing an artist.
type artistForm struct {
	Name         string   `json:"name"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	Phone        string   `json:"phone"`
	Genres       []string `json:"genres"`
	ImageLink    string   `json:"image_link"`
	FacebookLink string   `json:"facebook_link"`
}

func (f *artistForm) toArtist(id uint64) *repository.Artist {
	return &repository.Artist{
		ID:           id,
		Name:         strings.TrimSpace(f.Name),
		City:         strings.TrimSpace(f.City),
		State:        strings.TrimSpace(f.State),
		Phone:        strings.TrimSpace(f.Phone),
		Genres:       f.Genres,
		ImageLink:    strings.TrimSpace(f.ImageLink),
		FacebookLink: strings.TrimSpace(f.FacebookLink),
	}
}

// artistDetail is the response body for GET /v1/artists/:id, the mirror of
// venueDetail with the schedule keyed by venue.
type artistDetail struct {
	*repository.Artist
	PastShows          []repository.VenueShowRow `json:"past_shows"`
	UpcomingShows      []repository.VenueShowRow `json:"upcoming_shows"`
	PastShowsCount     int                       `json:"past_shows_count"`
	UpcomingShowsCount int                       `json:"upcoming_shows_count"`
}

// List handles GET /v1/artists and returns all artists.
func (h *ArtistHandler) List(c echo.Context) error {
	items, err := h.ArtistRepo.ListAll(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

// Get handles GET /v1/artists/:id and returns the artist plus its
// schedule split into past and upcoming shows.
func (h *ArtistHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	artist, err := h.ArtistRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	rows, err := h.ShowRepo.ListByArtist(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	past, upcoming, err := repository.PartitionVenueShows(rows, time.Now().UTC())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, artistDetail{
		Artist:             artist,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	})
}

// Create handles POST /v1/artists and lists a new artist.
func (h *ArtistHandler) Create(c echo.Context) error {
	var body artistForm
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	artist := body.toArtist(0)
	if err := h.ArtistRepo.Create(c.Request().Context(), artist); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, artist)
}

// Update handles PUT /v1/artists/:id and overwrites the artist's fields.
func (h *ArtistHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	var body artistForm
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	artist := body.toArtist(id)
	if err := h.ArtistRepo.Update(c.Request().Context(), artist); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, artist)
}

// Search handles POST /v1/artists/search. Unlike venue search the hits are
// full artist records without an upcoming-show count; the asymmetry is
// inherited behavior and kept deliberately.
func (h *ArtistHandler) Search(c echo.Context) error {
	var body struct {
		SearchTerm string `json:"search_term"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	results, err := h.ArtistRepo.SearchByName(c.Request().Context(), strings.TrimSpace(body.SearchTerm))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"count": len(results),
		"data":  results,
	})
}
