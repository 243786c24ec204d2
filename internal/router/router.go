package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/chiweic/schedule-api/internal/handler" // import the handlers that implement the CRUD operations
)

// RegisterRoutes wires every entity's CRUD endpoints onto the provided
// Echo instance, plus the health check. Each entity exposes the same five
// operations: create, list, get-by-id, partial update and delete. The
// create and list routes are registered with and without a trailing slash
// so both spellings work.
func RegisterRoutes(e *echo.Echo, schedules *handler.ScheduleHandler, sections *handler.SectionHandler, events *handler.EventHandler, venues *handler.VenueHandler) {
	e.GET("/healthz", handler.Health)

	crud(e.Group("/schedules"), schedules.Create, schedules.List, schedules.Get, schedules.Update, schedules.Delete)
	crud(e.Group("/sections"), sections.Create, sections.List, sections.Get, sections.Update, sections.Delete)
	crud(e.Group("/events"), events.Create, events.List, events.Get, events.Update, events.Delete)
	crud(e.Group("/venues"), venues.Create, venues.List, venues.Get, venues.Update, venues.Delete)
}

// crud registers the uniform five-operation contract on a route group.
func crud(g *echo.Group, create, list, get, update, del echo.HandlerFunc) {
	g.POST("", create)
	g.POST("/", create)
	g.GET("", list)
	g.GET("/", list)
	g.GET("/:id", get)
	g.PATCH("/:id", update)
	g.DELETE("/:id", del)
}
