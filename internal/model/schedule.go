package model

// Schedule represents an event schedule tied to a venue and time. Each
// schedule may own any number of sections. This struct corresponds to a
// row in the `schedules` table.
//
// Fields:
//  ID               – primary key identifier.
//  URL              – canonical URL of the schedule.
//  Title            – human readable title.
//  Venue            – name of the venue hosting the schedule.
//  VenueURL         – optional URL of the venue.
//  ScheduleDatetime – free-form date/time description.
//  Locations        – free-form key-value map of locations.
//  Registration     – free-form key-value map of registration details.
//  Description      – optional long description.
type Schedule struct {
	ID               int64   `json:"id"`                // schedules.id
	URL              string  `json:"url"`               // schedules.url
	Title            string  `json:"title"`             // schedules.title
	Venue            string  `json:"venue"`             // schedules.venue
	VenueURL         *string `json:"venue_url"`         // schedules.venue_url (nullable)
	ScheduleDatetime string  `json:"schedule_datetime"` // schedules.schedule_datetime
	Locations        JSONMap `json:"locations"`         // schedules.locations (JSON text)
	Registration     JSONMap `json:"registration"`      // schedules.registration (JSON text)
	Description      *string `json:"description"`       // schedules.description (nullable)
}

// ScheduleCreate is the payload accepted when creating a schedule. Field
// presence and formats are enforced through validator tags.
type ScheduleCreate struct {
	URL              string  `json:"url" validate:"required,url"`
	Title            string  `json:"title" validate:"required"`
	Venue            string  `json:"venue" validate:"required"`
	VenueURL         *string `json:"venue_url" validate:"omitempty,url"`
	ScheduleDatetime string  `json:"schedule_datetime" validate:"required"`
	Locations        JSONMap `json:"locations"`
	Registration     JSONMap `json:"registration"`
	Description      *string `json:"description"`
}

// ScheduleUpdate is the partial payload accepted on PATCH. Only non-nil
// fields are applied to the stored record.
type ScheduleUpdate struct {
	URL              *string  `json:"url" validate:"omitempty,url"`
	Title            *string  `json:"title"`
	Venue            *string  `json:"venue"`
	VenueURL         *string  `json:"venue_url" validate:"omitempty,url"`
	ScheduleDatetime *string  `json:"schedule_datetime"`
	Locations        *JSONMap `json:"locations"`
	Registration     *JSONMap `json:"registration"`
	Description      *string  `json:"description"`
}

// ScheduleWithSections is the GET-by-id response shape: the schedule plus
// its immediate children.
type ScheduleWithSections struct {
	Schedule
	Sections []*Section `json:"sections"`
}
