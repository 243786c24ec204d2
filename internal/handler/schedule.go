package handler // handler package contains schedule CRUD handlers

import (
	"net/http" // http provides status code constants

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4" // echo is the web framework used for handlers

	"github.com/chiweic/schedule-api/internal/model"
	"github.com/chiweic/schedule-api/internal/repository"
)

// ScheduleHandler bundles the repositories needed to serve schedule
// endpoints. SectionRepo is required to embed children on GET-by-id.
type ScheduleHandler struct {
	ScheduleRepo *repository.ScheduleRepo // ScheduleRepo provides schedule persistence
	SectionRepo  *repository.SectionRepo  // SectionRepo lists a schedule's sections
	Validate     *validator.Validate      // Validate enforces payload field rules
}

// NewScheduleHandler constructs a ScheduleHandler and panics if any
// dependency is nil.
func NewScheduleHandler(scheduleRepo *repository.ScheduleRepo, sectionRepo *repository.SectionRepo, validate *validator.Validate) *ScheduleHandler {
	if scheduleRepo == nil || sectionRepo == nil || validate == nil {
		panic("nil dependency passed to NewScheduleHandler")
	}
	return &ScheduleHandler{ScheduleRepo: scheduleRepo, SectionRepo: sectionRepo, Validate: validate}
}

// Create handles POST /schedules and persists a new schedule.
func (h *ScheduleHandler) Create(c echo.Context) error {
	var in model.ScheduleCreate
	if err := bindStrict(c, &in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := h.Validate.Struct(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	s := &model.Schedule{
		URL:              in.URL,
		Title:            in.Title,
		Venue:            in.Venue,
		VenueURL:         in.VenueURL,
		ScheduleDatetime: in.ScheduleDatetime,
		Locations:        in.Locations,
		Registration:     in.Registration,
		Description:      in.Description,
	}
	if s.Locations == nil {
		s.Locations = model.JSONMap{}
	}
	if s.Registration == nil {
		s.Registration = model.JSONMap{}
	}
	if err := h.ScheduleRepo.Create(c.Request().Context(), s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create schedule"})
	}
	return c.JSON(http.StatusCreated, s)
}

// List handles GET /schedules and returns a page of schedules in id order.
func (h *ScheduleHandler) List(c echo.Context) error {
	offset, limit := listParams(c)
	items, err := h.ScheduleRepo.List(c.Request().Context(), offset, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /schedules/:id and returns the schedule together with
// its sections.
func (h *ScheduleHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	s, err := h.ScheduleRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrScheduleNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "schedule not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	sections, err := h.SectionRepo.ListBySchedule(c.Request().Context(), s.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, model.ScheduleWithSections{Schedule: *s, Sections: sections})
}

// Update handles PATCH /schedules/:id and applies only the fields present
// in the payload; omitted fields keep their stored values.
func (h *ScheduleHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var in model.ScheduleUpdate
	if err := bindStrict(c, &in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := h.Validate.Struct(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	s, err := h.ScheduleRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrScheduleNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "schedule not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if in.URL != nil {
		s.URL = *in.URL
	}
	if in.Title != nil {
		s.Title = *in.Title
	}
	if in.Venue != nil {
		s.Venue = *in.Venue
	}
	if in.VenueURL != nil {
		s.VenueURL = in.VenueURL
	}
	if in.ScheduleDatetime != nil {
		s.ScheduleDatetime = *in.ScheduleDatetime
	}
	if in.Locations != nil {
		s.Locations = *in.Locations
	}
	if in.Registration != nil {
		s.Registration = *in.Registration
	}
	if in.Description != nil {
		s.Description = in.Description
	}
	if err := h.ScheduleRepo.Update(c.Request().Context(), s); err != nil {
		if err == repository.ErrScheduleNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "schedule not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, s)
}

// Delete handles DELETE /schedules/:id. Sections owned by the schedule are
// left in place with their old schedule_id.
func (h *ScheduleHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.ScheduleRepo.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrScheduleNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "schedule not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
