package model

// Event represents a single timed occurrence within a section. Times are
// stored as strings in HH:MM:SS form and the date as YYYY-MM-DD; no
// ordering between start and end is enforced.
type Event struct {
	ID        int64  `json:"id"`         // events.id
	StartTime string `json:"start_time"` // events.start_time (HH:MM:SS)
	EndTime   string `json:"end_time"`   // events.end_time (HH:MM:SS)
	EventDate string `json:"event_date"` // events.event_date (YYYY-MM-DD)
	Location  string `json:"location"`   // events.location
	SectionID *int64 `json:"section_id"` // events.section_id (nullable)
}

// EventCreate is the payload accepted when creating an event. The datetime
// tags pin the time and date formats without any cross-field checks.
type EventCreate struct {
	StartTime string `json:"start_time" validate:"required,datetime=15:04:05"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04:05"`
	EventDate string `json:"event_date" validate:"required,datetime=2006-01-02"`
	Location  string `json:"location" validate:"required"`
	SectionID *int64 `json:"section_id"`
}

// EventUpdate is the partial payload accepted on PATCH. Re-parenting is not
// supported, so section_id is absent.
type EventUpdate struct {
	StartTime *string `json:"start_time" validate:"omitempty,datetime=15:04:05"`
	EndTime   *string `json:"end_time" validate:"omitempty,datetime=15:04:05"`
	EventDate *string `json:"event_date" validate:"omitempty,datetime=2006-01-02"`
	Location  *string `json:"location"`
}

// EventWithSection is the GET-by-id response shape: the event plus its
// parent section, or null when the event is unattached or the reference
// is dangling.
type EventWithSection struct {
	Event
	Section *Section `json:"section"`
}
