// Package handler contains the Echo HTTP handlers for the booking
// directory. Handlers bind and validate request bodies, delegate to the
// repositories, and classify repository errors into HTTP responses:
// validation failures are 400, missing records 404, conflicting deletes
// 409, and anything else a logged generic 500.
package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fyyur/fyyur/internal/repository"
)

// parseID parses the :id path parameter. A non-numeric id is reported as
// a bad request by the caller.
func parseID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

// respondError maps a repository error onto the HTTP response. Storage
// errors are logged with the route for operator diagnosis and surfaced as
// a generic message without internal detail.
func respondError(c echo.Context, err error) error {
	var ve *repository.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Error()})
	case errors.Is(err, repository.ErrVenueNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "venue not found"})
	case errors.Is(err, repository.ErrArtistNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "artist not found"})
	case errors.Is(err, repository.ErrShowNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "show not found"})
	case errors.Is(err, repository.ErrConflict):
		return c.JSON(http.StatusConflict, map[string]string{"error": "record has dependent shows"})
	default:
		log.Printf("%s %s: storage error: %v", c.Request().Method, c.Path(), err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}
}
