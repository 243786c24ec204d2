package handler // handler package contains venue CRUD handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/chiweic/schedule-api/internal/model"
	"github.com/chiweic/schedule-api/internal/repository"
)

// VenueHandler serves venue endpoints. Venues have no children, so a
// single repository suffices.
type VenueHandler struct {
	VenueRepo *repository.VenueRepo // VenueRepo provides venue persistence
	Validate  *validator.Validate   // Validate enforces payload field rules
}

// NewVenueHandler constructs a VenueHandler and panics if any dependency
// is nil.
func NewVenueHandler(venueRepo *repository.VenueRepo, validate *validator.Validate) *VenueHandler {
	if venueRepo == nil || validate == nil {
		panic("nil dependency passed to NewVenueHandler")
	}
	return &VenueHandler{VenueRepo: venueRepo, Validate: validate}
}

// Create handles POST /venues and persists a new venue.
func (h *VenueHandler) Create(c echo.Context) error {
	var in model.VenueCreate
	if err := bindStrict(c, &in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := h.Validate.Struct(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	v := &model.Venue{
		Name:    in.Name,
		Tel:     in.Tel,
		Address: in.Address,
		Mail:    in.Mail,
		URL:     in.URL,
		Fax:     in.Fax,
		Contact: in.Contact,
	}
	if err := h.VenueRepo.Create(c.Request().Context(), v); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create venue"})
	}
	return c.JSON(http.StatusCreated, v)
}

// List handles GET /venues and returns a page of venues in id order.
func (h *VenueHandler) List(c echo.Context) error {
	offset, limit := listParams(c)
	items, err := h.VenueRepo.List(c.Request().Context(), offset, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /venues/:id.
func (h *VenueHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	v, err := h.VenueRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrVenueNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, v)
}

// Update handles PATCH /venues/:id and applies only the fields present in
// the payload.
func (h *VenueHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var in model.VenueUpdate
	if err := bindStrict(c, &in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := h.Validate.Struct(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	v, err := h.VenueRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrVenueNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if in.Name != nil {
		v.Name = *in.Name
	}
	if in.Tel != nil {
		v.Tel = in.Tel
	}
	if in.Address != nil {
		v.Address = in.Address
	}
	if in.Mail != nil {
		v.Mail = in.Mail
	}
	if in.URL != nil {
		v.URL = in.URL
	}
	if in.Fax != nil {
		v.Fax = in.Fax
	}
	if in.Contact != nil {
		v.Contact = in.Contact
	}
	if err := h.VenueRepo.Update(c.Request().Context(), v); err != nil {
		if err == repository.ErrVenueNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, v)
}

// Delete handles DELETE /venues/:id.
func (h *VenueHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.VenueRepo.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrVenueNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
