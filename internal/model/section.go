package model

// Section represents a named subdivision of a schedule. A section may own
// any number of events and optionally belongs to a schedule through a
// nullable foreign key. Deleting the schedule does not touch its sections.
type Section struct {
	ID         int64   `json:"id"`          // sections.id
	Title      string  `json:"title"`       // sections.title (indexed)
	Sequence   string  `json:"sequence"`    // sections.sequence
	Status     *string `json:"status"`      // sections.status (nullable)
	ScheduleID *int64  `json:"schedule_id"` // sections.schedule_id (nullable)
}

// SectionCreate is the payload accepted when creating a section.
type SectionCreate struct {
	Title      string  `json:"title" validate:"required"`
	Sequence   string  `json:"sequence" validate:"required"`
	Status     *string `json:"status"`
	ScheduleID *int64  `json:"schedule_id"`
}

// SectionUpdate is the partial payload accepted on PATCH. Re-parenting is
// not supported, so schedule_id is absent.
type SectionUpdate struct {
	Title    *string `json:"title"`
	Sequence *string `json:"sequence"`
	Status   *string `json:"status"`
}

// SectionWithEvents is the GET-by-id response shape: the section plus its
// immediate children.
type SectionWithEvents struct {
	Section
	Events []*Event `json:"events"`
}
