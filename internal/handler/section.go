package handler // handler package contains section CRUD handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/chiweic/schedule-api/internal/model"
	"github.com/chiweic/schedule-api/internal/repository"
)

// SectionHandler bundles the repositories needed to serve section
// endpoints. EventRepo is required to embed children on GET-by-id.
type SectionHandler struct {
	SectionRepo *repository.SectionRepo // SectionRepo provides section persistence
	EventRepo   *repository.EventRepo   // EventRepo lists a section's events
	Validate    *validator.Validate     // Validate enforces payload field rules
}

// NewSectionHandler constructs a SectionHandler and panics if any
// dependency is nil.
func NewSectionHandler(sectionRepo *repository.SectionRepo, eventRepo *repository.EventRepo, validate *validator.Validate) *SectionHandler {
	if sectionRepo == nil || eventRepo == nil || validate == nil {
		panic("nil dependency passed to NewSectionHandler")
	}
	return &SectionHandler{SectionRepo: sectionRepo, EventRepo: eventRepo, Validate: validate}
}

// Create handles POST /sections and persists a new section. The optional
// schedule_id attaches the section to a schedule; it is not checked
// against the schedules table.
func (h *SectionHandler) Create(c echo.Context) error {
	var in model.SectionCreate
	if err := bindStrict(c, &in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := h.Validate.Struct(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	s := &model.Section{
		Title:      in.Title,
		Sequence:   in.Sequence,
		Status:     in.Status,
		ScheduleID: in.ScheduleID,
	}
	if err := h.SectionRepo.Create(c.Request().Context(), s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create section"})
	}
	return c.JSON(http.StatusCreated, s)
}

// List handles GET /sections and returns a page of sections in id order.
func (h *SectionHandler) List(c echo.Context) error {
	offset, limit := listParams(c)
	items, err := h.SectionRepo.List(c.Request().Context(), offset, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /sections/:id and returns the section together with its
// events.
func (h *SectionHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	s, err := h.SectionRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrSectionNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "section not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	events, err := h.EventRepo.ListBySection(c.Request().Context(), s.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, model.SectionWithEvents{Section: *s, Events: events})
}

// Update handles PATCH /sections/:id and applies only the fields present
// in the payload.
func (h *SectionHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var in model.SectionUpdate
	if err := bindStrict(c, &in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := h.Validate.Struct(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	s, err := h.SectionRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrSectionNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "section not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if in.Title != nil {
		s.Title = *in.Title
	}
	if in.Sequence != nil {
		s.Sequence = *in.Sequence
	}
	if in.Status != nil {
		s.Status = in.Status
	}
	if err := h.SectionRepo.Update(c.Request().Context(), s); err != nil {
		if err == repository.ErrSectionNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "section not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, s)
}

// Delete handles DELETE /sections/:id. Events owned by the section are
// left in place with their old section_id.
func (h *SectionHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.SectionRepo.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrSectionNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "section not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
