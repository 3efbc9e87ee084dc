package handler // handler package contains venue-specific handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fyyur/fyyur/internal/repository"
)

// VenueHandler bundles the repositories needed to serve venue routes.
type VenueHandler struct {
	VenueRepo *repository.VenueRepo
	ShowRepo  *repository.ShowRepo
}

// NewVenueHandler constructs a VenueHandler.
func NewVenueHandler(venues *repository.VenueRepo, shows *repository.ShowRepo) *VenueHandler {
	return &VenueHandler{VenueRepo: venues, ShowRepo: shows}
}

// venueForm is the request body for creating or editing a venue. Fields
// mirror the venue columns; genres arrive as an ordered tag list.
type venueForm struct {
	Name         string   `json:"name"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	Address      string   `json:"address"`
	Phone        string   `json:"phone"`
	Genres       []string `json:"genres"`
	ImageLink    string   `json:"image_link"`
	FacebookLink string   `json:"facebook_link"`
}

func (f *venueForm) toVenue(id uint64) *repository.Venue {
	return &repository.Venue{
		ID:           id,
		Name:         strings.TrimSpace(f.Name),
		City:         strings.TrimSpace(f.City),
		State:        strings.TrimSpace(f.State),
		Address:      strings.TrimSpace(f.Address),
		Phone:        strings.TrimSpace(f.Phone),
		Genres:       f.Genres,
		ImageLink:    strings.TrimSpace(f.ImageLink),
		FacebookLink: strings.TrimSpace(f.FacebookLink),
	}
}

// venueDetail is the response body for GET /v1/venues/:id. The schedule is
// partitioned against the clock at request time; every show lands in
// exactly one of past_shows/upcoming_shows.
type venueDetail struct {
	*repository.Venue
	PastShows          []repository.ArtistShowRow `json:"past_shows"`
	UpcomingShows      []repository.ArtistShowRow `json:"upcoming_shows"`
	PastShowsCount     int                        `json:"past_shows_count"`
	UpcomingShowsCount int                        `json:"upcoming_shows_count"`
}

// List handles GET /v1/venues and returns all venues.
func (h *VenueHandler) List(c echo.Context) error {
	items, err := h.VenueRepo.ListAll(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

// Get handles GET /v1/venues/:id and returns the venue plus its schedule
// split into past and upcoming shows.
func (h *VenueHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	venue, err := h.VenueRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	rows, err := h.ShowRepo.ListByVenue(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	past, upcoming, err := repository.PartitionArtistShows(rows, time.Now().UTC())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, venueDetail{
		Venue:              venue,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	})
}

// Create handles POST /v1/venues and lists a new venue.
func (h *VenueHandler) Create(c echo.Context) error {
	var body venueForm
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	venue := body.toVenue(0)
	if err := h.VenueRepo.Create(c.Request().Context(), venue); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, venue)
}

// Update handles PUT /v1/venues/:id and overwrites the venue's fields.
func (h *VenueHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	var body venueForm
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	venue := body.toVenue(id)
	if err := h.VenueRepo.Update(c.Request().Context(), venue); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, venue)
}

// Delete handles DELETE /v1/venues/:id. Venues with shows still on their
// schedule are rejected with 409 rather than cascading.
func (h *VenueHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	if err := h.VenueRepo.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Search handles POST /v1/venues/search. The response carries the match
// count and, per hit, the id, name and a live upcoming-show count.
func (h *VenueHandler) Search(c echo.Context) error {
	var body struct {
		SearchTerm string `json:"search_term"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	results, err := h.VenueRepo.SearchByName(c.Request().Context(), strings.TrimSpace(body.SearchTerm))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"count": len(results),
		"data":  results,
	})
}
