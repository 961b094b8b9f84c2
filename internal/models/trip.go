package models

// TripStatus represents the lifecycle status of a trip
type TripStatus string

const (
	TripStatusCompleted TripStatus = "completed"
	TripStatusCurrent   TripStatus = "current"
	TripStatusPlanned   TripStatus = "planned"
	// TripStatusHidden marks trips excluded from the public listing.
	// It is a valid status but status/date coherence rules do not apply to it.
	TripStatusHidden TripStatus = "hidden"
)

// ValidStatuses is the set of accepted trip status values
var ValidStatuses = map[TripStatus]bool{
	TripStatusCompleted: true,
	TripStatusCurrent:   true,
	TripStatusPlanned:   true,
	TripStatusHidden:    true,
}

// TripRecord is the parsed frontmatter of one trip content file.
// Dates are kept as raw "YYYY-MM-DD" strings so the validators can report
// malformed values instead of failing the whole decode.
type TripRecord struct {
	Title        string        `yaml:"title" json:"title"`
	Description  string        `yaml:"description" json:"description"`
	StartDate    string        `yaml:"startDate" json:"startDate"`
	EndDate      string        `yaml:"endDate" json:"endDate"`
	Status       string        `yaml:"status" json:"status"`
	HeaderImage  string        `yaml:"headerImage" json:"headerImage"`
	Stats        []StatEntry   `yaml:"stats" json:"stats"`
	Route        *Route        `yaml:"route" json:"route,omitempty"`
	Gallery      []GalleryItem `yaml:"gallery" json:"gallery"`
	Activities   []Activity    `yaml:"activities" json:"activities,omitempty"`
	Participants []Participant `yaml:"participants" json:"participants,omitempty"`
}

// StatEntry is one headline statistic shown on a trip page.
// Entries with ID "duration" or "days" are cross-checked against the
// date range by the business rules.
type StatEntry struct {
	ID    string  `yaml:"id" json:"id"`
	Value float64 `yaml:"value" json:"value"`
	Label string  `yaml:"label" json:"label"`
	Icon  string  `yaml:"icon" json:"icon"`
	Unit  string  `yaml:"unit" json:"unit,omitempty"`
}

// Route holds the map geometry for a trip.
// Coordinate pairs are [latitude, longitude]: index 0 must be within
// [-90, 90] and index 1 within [-180, 180]. This convention is applied
// uniformly across the codebase.
type Route struct {
	Coordinates [][]float64 `yaml:"coordinates" json:"coordinates"`
	Waypoints   []Waypoint  `yaml:"waypoints" json:"waypoints"`
}

// Waypoint is a named point on the route
type Waypoint struct {
	Name        string    `yaml:"name" json:"name"`
	Coordinates []float64 `yaml:"coordinates" json:"coordinates"`
}

// GalleryItem is one image in a trip gallery
type GalleryItem struct {
	Image       string `yaml:"image" json:"image"`
	Title       string `yaml:"title" json:"title,omitempty"`
	Description string `yaml:"description" json:"description,omitempty"`
}

// Activity is a scheduled activity during a trip
type Activity struct {
	Name            string `yaml:"name" json:"name"`
	Description     string `yaml:"description" json:"description"`
	Date            string `yaml:"date" json:"date,omitempty"`
	RegistrationURL string `yaml:"registrationUrl" json:"registrationUrl,omitempty"`
	Location        string `yaml:"location" json:"location,omitempty"`
	IsPublic        bool   `yaml:"isPublic" json:"isPublic"`
}

// Participant is one person listed on a trip page
type Participant struct {
	Name  string `yaml:"name" json:"name"`
	Photo string `yaml:"photo" json:"photo,omitempty"`
	Role  string `yaml:"role" json:"role,omitempty"`
}

// DateLayout is the expected format of all trip date fields
const DateLayout = "2006-01-02"

// MinDescriptionLength is the minimum accepted trip description length
const MinDescriptionLength = 10
