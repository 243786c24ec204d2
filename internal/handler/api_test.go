package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chiweic/schedule-api/internal/database"
	"github.com/chiweic/schedule-api/internal/handler"
	"github.com/chiweic/schedule-api/internal/model"
	"github.com/chiweic/schedule-api/internal/repository"
	"github.com/chiweic/schedule-api/internal/router"
)

// newTestServer wires the full route table over a fresh in-memory store so
// requests exercise router, handlers and repositories together.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Init(context.Background(), db))

	validate := validator.New()
	scheduleRepo := repository.NewScheduleRepo(db)
	sectionRepo := repository.NewSectionRepo(db)
	eventRepo := repository.NewEventRepo(db)
	venueRepo := repository.NewVenueRepo(db)

	e := echo.New()
	router.RegisterRoutes(e,
		handler.NewScheduleHandler(scheduleRepo, sectionRepo, validate),
		handler.NewSectionHandler(sectionRepo, eventRepo, validate),
		handler.NewEventHandler(eventRepo, sectionRepo, validate),
		handler.NewVenueHandler(venueRepo, validate),
	)
	return e
}

func do(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestVenueCreateThenGetRoundTrip(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/venues/", `{
		"name": "City Arena",
		"tel": "+1 555 0100",
		"mail": "booking@arena.example",
		"url": "https://arena.example"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[model.Venue](t, rec)
	require.NotZero(t, created.ID)

	rec = do(t, e, http.MethodGet, fmt.Sprintf("/venues/%d", created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[model.Venue](t, rec)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "City Arena", got.Name)
	require.NotNil(t, got.Tel)
	assert.Equal(t, "+1 555 0100", *got.Tel)
	assert.Nil(t, got.Fax)
	assert.Nil(t, got.Contact)
}

func TestScheduleCreateDefaultsMaps(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/schedules/", `{
		"url": "https://example.com/conf",
		"title": "Annual Conference",
		"venue": "Main Hall",
		"schedule_datetime": "2026-09-01 09:00"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[model.Schedule](t, rec)
	assert.NotNil(t, created.Locations)
	assert.NotNil(t, created.Registration)
	assert.Empty(t, created.Locations)
}

func TestListRespectsOffsetAndLimit(t *testing.T) {
	e := newTestServer(t)

	for i := 0; i < 5; i++ {
		rec := do(t, e, http.MethodPost, "/venues/", fmt.Sprintf(`{"name":"venue %d"}`, i))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := do(t, e, http.MethodGet, "/venues/?offset=1&limit=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	page := decode[[]model.Venue](t, rec)
	require.Len(t, page, 2)
	assert.Equal(t, "venue 1", page[0].Name)
	assert.Equal(t, "venue 2", page[1].Name)

	// a limit above the cap behaves like limit=100
	rec = do(t, e, http.MethodGet, "/venues?limit=9999", "")
	require.Equal(t, http.StatusOK, rec.Code)
	all := decode[[]model.Venue](t, rec)
	assert.Len(t, all, 5)

	rec = do(t, e, http.MethodGet, "/venues?offset=100", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]model.Venue](t, rec))

	// an explicit limit=0 asks for nothing and gets nothing
	rec = do(t, e, http.MethodGet, "/venues/?limit=0", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]model.Venue](t, rec))

	rec = do(t, e, http.MethodGet, "/venues/?limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.Venue](t, rec), 1)
}

func TestPartialUpdateKeepsOmittedFields(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/venues/", `{"name":"Old Hall","tel":"123","address":"1 Old Way"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[model.Venue](t, rec)

	rec = do(t, e, http.MethodPatch, fmt.Sprintf("/venues/%d", created.ID), `{"tel":"456"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[model.Venue](t, rec)
	require.NotNil(t, updated.Tel)
	assert.Equal(t, "456", *updated.Tel)
	assert.Equal(t, "Old Hall", updated.Name)
	require.NotNil(t, updated.Address)
	assert.Equal(t, "1 Old Way", *updated.Address)
}

func TestSchedulePartialUpdate(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/schedules/", `{
		"url": "https://example.com/conf",
		"title": "Annual Conference",
		"venue": "Main Hall",
		"schedule_datetime": "2026-09-01 09:00",
		"locations": {"room": "A1"}
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[model.Schedule](t, rec)

	rec = do(t, e, http.MethodPatch, fmt.Sprintf("/schedules/%d", created.ID), `{"title":"Renamed"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[model.Schedule](t, rec)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "https://example.com/conf", updated.URL)
	assert.Equal(t, model.JSONMap{"room": "A1"}, updated.Locations)
}

func TestDeleteThenGetReturnsNotFound(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/events/", `{
		"start_time": "09:00:00",
		"end_time": "10:00:00",
		"event_date": "2026-09-01",
		"location": "stage"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[model.Event](t, rec)

	rec = do(t, e, http.MethodDelete, fmt.Sprintf("/events/%d", created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	ack := decode[map[string]bool](t, rec)
	assert.True(t, ack["ok"])

	rec = do(t, e, http.MethodGet, fmt.Sprintf("/events/%d", created.ID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnknownIDReturnsNotFound(t *testing.T) {
	e := newTestServer(t)

	for _, entity := range []string{"schedules", "sections", "events", "venues"} {
		t.Run(entity, func(t *testing.T) {
			rec := do(t, e, http.MethodGet, "/"+entity+"/9999", "")
			assert.Equal(t, http.StatusNotFound, rec.Code)

			rec = do(t, e, http.MethodPatch, "/"+entity+"/9999", `{}`)
			assert.Equal(t, http.StatusNotFound, rec.Code)

			rec = do(t, e, http.MethodDelete, "/"+entity+"/9999", "")
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestScheduleGetIncludesSections(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/schedules/", `{
		"url": "https://example.com/conf",
		"title": "Conf",
		"venue": "Hall",
		"schedule_datetime": "soon"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	sched := decode[model.Schedule](t, rec)

	rec = do(t, e, http.MethodPost, "/sections/", fmt.Sprintf(`{"title":"morning","sequence":"1","schedule_id":%d}`, sched.ID))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = do(t, e, http.MethodPost, "/sections/", `{"title":"floating","sequence":"2"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, e, http.MethodGet, fmt.Sprintf("/schedules/%d", sched.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[model.ScheduleWithSections](t, rec)
	require.Len(t, got.Sections, 1)
	assert.Equal(t, "morning", got.Sections[0].Title)
}

func TestSectionGetIncludesEvents(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/sections/", `{"title":"morning","sequence":"1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	sec := decode[model.Section](t, rec)

	rec = do(t, e, http.MethodPost, "/events/", fmt.Sprintf(`{
		"start_time": "09:00:00",
		"end_time": "10:00:00",
		"event_date": "2026-09-01",
		"location": "stage",
		"section_id": %d
	}`, sec.ID))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, e, http.MethodGet, fmt.Sprintf("/sections/%d", sec.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[model.SectionWithEvents](t, rec)
	require.Len(t, got.Events, 1)
	assert.Equal(t, "stage", got.Events[0].Location)

	// a section without events serializes an empty list, not null
	rec = do(t, e, http.MethodPost, "/sections/", `{"title":"empty","sequence":"2"}`)
	empty := decode[model.Section](t, rec)
	rec = do(t, e, http.MethodGet, fmt.Sprintf("/sections/%d", empty.ID), "")
	assert.Contains(t, rec.Body.String(), `"events":[]`)
}

func TestEventGetIncludesSection(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/sections/", `{"title":"morning","sequence":"1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	sec := decode[model.Section](t, rec)

	rec = do(t, e, http.MethodPost, "/events/", fmt.Sprintf(`{
		"start_time": "09:00:00",
		"end_time": "10:00:00",
		"event_date": "2026-09-01",
		"location": "stage",
		"section_id": %d
	}`, sec.ID))
	require.Equal(t, http.StatusCreated, rec.Code)
	ev := decode[model.Event](t, rec)

	rec = do(t, e, http.MethodGet, fmt.Sprintf("/events/%d", ev.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[model.EventWithSection](t, rec)
	require.NotNil(t, got.Section)
	assert.Equal(t, sec.ID, got.Section.ID)

	// deleting the section leaves the event with a dangling reference and
	// a null embedded parent
	rec = do(t, e, http.MethodDelete, fmt.Sprintf("/sections/%d", sec.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, e, http.MethodGet, fmt.Sprintf("/events/%d", ev.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	dangling := decode[model.EventWithSection](t, rec)
	assert.Nil(t, dangling.Section)
	require.NotNil(t, dangling.SectionID)
	assert.Equal(t, sec.ID, *dangling.SectionID)
}

func TestCreateRejectsUnknownFields(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/venues/", `{"name":"Hall","surprise":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, e, http.MethodPost, "/events/", `{
		"start_time": "09:00:00",
		"end_time": "10:00:00",
		"event_date": "2026-09-01",
		"location": "stage",
		"color": "red"
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateRejectsUnknownFields(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/venues/", `{"name":"Hall"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[model.Venue](t, rec)

	rec = do(t, e, http.MethodPatch, fmt.Sprintf("/venues/%d", created.ID), `{"name":"New","surprise":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// the rejected update must not have been applied
	rec = do(t, e, http.MethodGet, fmt.Sprintf("/venues/%d", created.ID), "")
	got := decode[model.Venue](t, rec)
	assert.Equal(t, "Hall", got.Name)
}

func TestCreateValidation(t *testing.T) {
	e := newTestServer(t)

	tests := []struct {
		name   string
		target string
		body   string
	}{
		{"venue missing name", "/venues/", `{"tel":"123"}`},
		{"venue bad mail", "/venues/", `{"name":"Hall","mail":"not-an-email"}`},
		{"venue bad url", "/venues/", `{"name":"Hall","url":"not a url"}`},
		{"schedule missing title", "/schedules/", `{"url":"https://x.example","venue":"v","schedule_datetime":"d"}`},
		{"schedule bad url", "/schedules/", `{"url":"nope","title":"t","venue":"v","schedule_datetime":"d"}`},
		{"section missing sequence", "/sections/", `{"title":"t"}`},
		{"event bad time", "/events/", `{"start_time":"9am","end_time":"10:00:00","event_date":"2026-09-01","location":"l"}`},
		{"event bad date", "/events/", `{"start_time":"09:00:00","end_time":"10:00:00","event_date":"September 1st","location":"l"}`},
		{"event missing location", "/events/", `{"start_time":"09:00:00","end_time":"10:00:00","event_date":"2026-09-01"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, e, http.MethodPost, tt.target, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestInvalidIDReturnsBadRequest(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodGet, "/venues/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthz(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
