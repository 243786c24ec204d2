package handler // handler package contains event CRUD handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/chiweic/schedule-api/internal/model"
	"github.com/chiweic/schedule-api/internal/repository"
)

// EventHandler bundles the repositories needed to serve event endpoints.
// SectionRepo is required to embed the parent section on GET-by-id.
type EventHandler struct {
	EventRepo   *repository.EventRepo   // EventRepo provides event persistence
	SectionRepo *repository.SectionRepo // SectionRepo resolves the parent section
	Validate    *validator.Validate     // Validate enforces payload field rules
}

// NewEventHandler constructs an EventHandler and panics if any dependency
// is nil.
func NewEventHandler(eventRepo *repository.EventRepo, sectionRepo *repository.SectionRepo, validate *validator.Validate) *EventHandler {
	if eventRepo == nil || sectionRepo == nil || validate == nil {
		panic("nil dependency passed to NewEventHandler")
	}
	return &EventHandler{EventRepo: eventRepo, SectionRepo: sectionRepo, Validate: validate}
}

// Create handles POST /events and persists a new event. The optional
// section_id attaches the event to a section; it is not checked against
// the sections table.
func (h *EventHandler) Create(c echo.Context) error {
	var in model.EventCreate
	if err := bindStrict(c, &in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := h.Validate.Struct(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	e := &model.Event{
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		EventDate: in.EventDate,
		Location:  in.Location,
		SectionID: in.SectionID,
	}
	if err := h.EventRepo.Create(c.Request().Context(), e); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create event"})
	}
	return c.JSON(http.StatusCreated, e)
}

// List handles GET /events and returns a page of events in id order.
func (h *EventHandler) List(c echo.Context) error {
	offset, limit := listParams(c)
	items, err := h.EventRepo.List(c.Request().Context(), offset, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /events/:id and returns the event together with its
// parent section. The section is null when the event is unattached or
// its reference dangles after a section delete.
func (h *EventHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	e, err := h.EventRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrEventNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	out := model.EventWithSection{Event: *e}
	if e.SectionID != nil {
		section, err := h.SectionRepo.GetByID(c.Request().Context(), *e.SectionID)
		switch err {
		case nil:
			out.Section = section
		case repository.ErrSectionNotFound:
			// dangling reference, serialize a null parent
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
		}
	}
	return c.JSON(http.StatusOK, out)
}

// Update handles PATCH /events/:id and applies only the fields present in
// the payload.
func (h *EventHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var in model.EventUpdate
	if err := bindStrict(c, &in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := h.Validate.Struct(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	e, err := h.EventRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrEventNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if in.StartTime != nil {
		e.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		e.EndTime = *in.EndTime
	}
	if in.EventDate != nil {
		e.EventDate = *in.EventDate
	}
	if in.Location != nil {
		e.Location = *in.Location
	}
	if err := h.EventRepo.Update(c.Request().Context(), e); err != nil {
		if err == repository.ErrEventNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, e)
}

// Delete handles DELETE /events/:id.
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.EventRepo.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrEventNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
