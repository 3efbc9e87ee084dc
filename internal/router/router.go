package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/fyyur/fyyur/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes registers routes that do not belong to a specific entity
// on the provided Echo instance. Currently it exposes only a health check
// that load balancers or monitoring systems can use to verify the service
// is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterVenues registers all venue routes under /v1/venues: browse,
// detail with the past/upcoming schedule split, name search, create,
// edit and delete. Search is a POST so form-style submissions map onto
// it directly and the live upcoming counts are never served from cache.
func RegisterVenues(e *echo.Echo, h *handler.VenueHandler, browse ...echo.MiddlewareFunc) {
	e.GET("/v1/venues", h.List, browse...)
	e.GET("/v1/venues/:id", h.Get, browse...)
	e.POST("/v1/venues/search", h.Search)
	e.POST("/v1/venues", h.Create)
	e.PUT("/v1/venues/:id", h.Update)
	e.DELETE("/v1/venues/:id", h.Delete)
}

// RegisterArtists registers all artist routes under /v1/artists. Artists
// have no delete route; the directory never exposed one.
func RegisterArtists(e *echo.Echo, h *handler.ArtistHandler, browse ...echo.MiddlewareFunc) {
	e.GET("/v1/artists", h.List, browse...)
	e.GET("/v1/artists/:id", h.Get, browse...)
	e.POST("/v1/artists/search", h.Search)
	e.POST("/v1/artists", h.Create)
	e.PUT("/v1/artists/:id", h.Update)
}

// RegisterShows registers the flattened all-shows view, single-show
// lookup and show creation.
func RegisterShows(e *echo.Echo, h *handler.ShowHandler, browse ...echo.MiddlewareFunc) {
	e.GET("/v1/shows", h.List, browse...)
	e.GET("/v1/shows/:id", h.Get, browse...)
	e.POST("/v1/shows", h.Create)
}
