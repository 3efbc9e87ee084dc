package handler // handler package contains show-specific handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fyyur/fyyur/internal/queue"
	"github.com/fyyur/fyyur/internal/repository"
	queue_publisher "github.com/fyyur/fyyur/internal/service"
	"github.com/fyyur/fyyur/internal/utils"
)

// ShowHandler bundles the repositories needed to serve show routes.
type ShowHandler struct {
	ShowRepo   *repository.ShowRepo
	VenueRepo  *repository.VenueRepo
	ArtistRepo *repository.ArtistRepo
}

// NewShowHandler constructs a ShowHandler.
func NewShowHandler(shows *repository.ShowRepo, venues *repository.VenueRepo, artists *repository.ArtistRepo) *ShowHandler {
	return &ShowHandler{ShowRepo: shows, VenueRepo: venues, ArtistRepo: artists}
}

// List handles GET /v1/shows and returns the flattened all-shows view.
// Start times are serialized as RFC 3339 for this view.
func (h *ShowHandler) List(c echo.Context) error {
	rows, err := h.ShowRepo.ListAll(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	for i := range rows {
		if iso, err := utils.ToISO8601(rows[i].StartTime); err == nil {
			rows[i].StartTime = iso
		}
	}
	return c.JSON(http.StatusOK, map[string]any{"items": rows})
}

// Get handles GET /v1/shows/:id and returns a single show. The start
// time is serialized as RFC 3339, matching the list view.
func (h *ShowHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	show, err := h.ShowRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if iso, err := utils.ToISO8601(show.StartTime); err == nil {
		show.StartTime = iso
	}
	return c.JSON(http.StatusOK, show)
}

// Create handles POST /v1/shows and records a new show linking an artist
// to a venue at a start time. Both referenced ids must exist; the start
// time must parse in one of the accepted layouts.
func (h *ShowHandler) Create(c echo.Context) error {
	var body struct {
		ArtistID  uint64 `json:"artist_id"`
		VenueID   uint64 `json:"venue_id"`
		StartTime string `json:"start_time"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if body.ArtistID == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "artist_id is required"})
	}
	if body.VenueID == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "venue_id is required"})
	}
	if body.StartTime == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "start_time is required"})
	}
	startTime, err := utils.ParseTimestamp(body.StartTime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid start_time format"})
	}
	show := &repository.Show{
		ArtistID:  body.ArtistID,
		VenueID:   body.VenueID,
		StartTime: utils.ToDBTime(startTime),
	}
	if err := h.ShowRepo.Create(c.Request().Context(), show); err != nil {
		return respondError(c, err)
	}
	h.publishListed(show)
	return c.JSON(http.StatusCreated, show)
}

// publishListed emits a show.listed event in the background. Publish
// failures are logged by the publisher and never affect the response;
// name lookups that fail leave the corresponding field empty.
func (h *ShowHandler) publishListed(show *repository.Show) {
	s := *show
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		ev := queue.ShowListedEvent{
			ShowID:    s.ID,
			ArtistID:  s.ArtistID,
			VenueID:   s.VenueID,
			StartTime: s.StartTime,
			ListedAt:  utils.ToDBTime(time.Now()),
		}
		if artist, err := h.ArtistRepo.GetByID(ctx, s.ArtistID); err == nil {
			ev.ArtistName = artist.Name
		}
		if venue, err := h.VenueRepo.GetByID(ctx, s.VenueID); err == nil {
			ev.VenueName = venue.Name
		}
		_ = queue_publisher.PublishShowListed(ctx, ev)
	}()
}
