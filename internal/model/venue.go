package model

// Venue represents a physical or virtual location record. Venues stand on
// their own; schedules reference them by name only.
type Venue struct {
	ID      int64   `json:"id"`      // venues.id
	Name    string  `json:"name"`    // venues.name
	Tel     *string `json:"tel"`     // venues.tel (nullable)
	Address *string `json:"address"` // venues.address (nullable)
	Mail    *string `json:"mail"`    // venues.mail (nullable)
	URL     *string `json:"url"`     // venues.url (nullable)
	Fax     *string `json:"fax"`     // venues.fax (nullable)
	Contact *string `json:"contact"` // venues.contact (nullable)
}

// VenueCreate is the payload accepted when creating a venue. Only the name
// is required; mail and url are format-checked when present.
type VenueCreate struct {
	Name    string  `json:"name" validate:"required"`
	Tel     *string `json:"tel"`
	Address *string `json:"address"`
	Mail    *string `json:"mail" validate:"omitempty,email"`
	URL     *string `json:"url" validate:"omitempty,url"`
	Fax     *string `json:"fax"`
	Contact *string `json:"contact"`
}

// VenueUpdate is the partial payload accepted on PATCH.
type VenueUpdate struct {
	Name    *string `json:"name"`
	Tel     *string `json:"tel"`
	Address *string `json:"address"`
	Mail    *string `json:"mail" validate:"omitempty,email"`
	URL     *string `json:"url" validate:"omitempty,url"`
	Fax     *string `json:"fax"`
	Contact *string `json:"contact"`
}
