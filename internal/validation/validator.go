package validation

import (
	"fmt"
	"net/url"
	"time"

	"github.com/trip-content-validator/internal/models"
)

// ValidationError represents a single validation finding
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// String renders the finding as "field: message", the form used in
// results and reports
func (e ValidationError) String() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Messages flattens findings into their string form, preserving order
func Messages(errs []ValidationError) []string {
	if len(errs) == 0 {
		return nil
	}
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.String()
	}
	return out
}

// Validator provides schema and business-rule validation for trip records.
// It holds no per-record state; one instance can validate any number of
// records and always produces the same findings for the same input.
type Validator struct {
	// now is the reference time for status/date coherence rules
	now func() time.Time
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{now: time.Now}
}

// ValidateFields checks presence, type and shape of every schema field.
// It accumulates every discoverable finding rather than stopping at the
// first failure.
func (v *Validator) ValidateFields(trip *models.TripRecord) (errors, warnings []ValidationError) {
	if trip == nil {
		return []ValidationError{{Field: "trip", Message: "unexpected validation error: trip record is missing"}}, nil
	}

	// Required scalar fields
	if trip.Title == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	}
	if trip.Description == "" {
		errors = append(errors, ValidationError{Field: "description", Message: "description is required"})
	} else if len(trip.Description) < models.MinDescriptionLength {
		errors = append(errors, ValidationError{
			Field:   "description",
			Message: fmt.Sprintf("description must be at least %d characters", models.MinDescriptionLength),
			Value:   trip.Description,
		})
	}

	errors = append(errors, validateDateField("startDate", trip.StartDate, true)...)
	errors = append(errors, validateDateField("endDate", trip.EndDate, true)...)

	if trip.Status == "" {
		errors = append(errors, ValidationError{Field: "status", Message: "status is required"})
	} else if !models.ValidStatuses[models.TripStatus(trip.Status)] {
		errors = append(errors, ValidationError{
			Field:   "status",
			Message: "invalid status, must be one of: completed, current, planned, hidden",
			Value:   trip.Status,
		})
	}

	if trip.HeaderImage == "" {
		errors = append(errors, ValidationError{Field: "headerImage", Message: "headerImage is required"})
	}

	// Stats entries
	for i, stat := range trip.Stats {
		if stat.ID == "" {
			errors = append(errors, ValidationError{Field: fmt.Sprintf("stats[%d].id", i), Message: "stat id is required"})
		}
		// "positive" in the schema means non-negative: zero is accepted
		if stat.Value < 0 {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("stats[%d].value", i),
				Message: "stat value must be positive",
				Value:   stat.Value,
			})
		}
		if stat.Label == "" {
			errors = append(errors, ValidationError{Field: fmt.Sprintf("stats[%d].label", i), Message: "stat label is required"})
		}
		if stat.Icon == "" {
			errors = append(errors, ValidationError{Field: fmt.Sprintf("stats[%d].icon", i), Message: "stat icon is required"})
		}
	}

	errors = append(errors, validateRoute(trip.Route)...)

	// Gallery: at least one image, each entry needs an image path
	if len(trip.Gallery) < 1 {
		errors = append(errors, ValidationError{Field: "gallery", Message: "gallery must have at least 1 image"})
	}
	for i, item := range trip.Gallery {
		if item.Image == "" {
			errors = append(errors, ValidationError{Field: fmt.Sprintf("gallery[%d].image", i), Message: "gallery image path is required"})
		}
	}

	// Activities
	for i, act := range trip.Activities {
		if act.Name == "" {
			errors = append(errors, ValidationError{Field: fmt.Sprintf("activities[%d].name", i), Message: "activity name is required"})
		}
		if act.Description == "" {
			errors = append(errors, ValidationError{Field: fmt.Sprintf("activities[%d].description", i), Message: "activity description is required"})
		}
		if act.Date != "" {
			errors = append(errors, validateDateField(fmt.Sprintf("activities[%d].date", i), act.Date, false)...)
		}
		if act.RegistrationURL != "" && !isAbsoluteURL(act.RegistrationURL) {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("activities[%d].registrationUrl", i),
				Message: "registration URL must be a valid absolute URL",
				Value:   act.RegistrationURL,
			})
		}
	}

	// Participants
	for i, p := range trip.Participants {
		if p.Name == "" {
			errors = append(errors, ValidationError{Field: fmt.Sprintf("participants[%d].name", i), Message: "participant name is required"})
		}
	}

	return errors, warnings
}

// validateRoute checks the shape of the route geometry.
// A nil route fails both minimum-length constraints.
func validateRoute(route *models.Route) []ValidationError {
	var errors []ValidationError

	var coords [][]float64
	var waypoints []models.Waypoint
	if route != nil {
		coords = route.Coordinates
		waypoints = route.Waypoints
	}

	if len(coords) < 2 {
		errors = append(errors, ValidationError{Field: "route.coordinates", Message: "route must have at least 2 coordinate points"})
	}
	for i, pair := range coords {
		if len(pair) != 2 {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("route.coordinates[%d]", i),
				Message: "coordinate must be a [latitude, longitude] pair",
				Value:   pair,
			})
		}
	}

	if len(waypoints) < 1 {
		errors = append(errors, ValidationError{Field: "route.waypoints", Message: "route must have at least 1 waypoint"})
	}
	for i, wp := range waypoints {
		if wp.Name == "" {
			errors = append(errors, ValidationError{Field: fmt.Sprintf("route.waypoints[%d].name", i), Message: "waypoint name is required"})
		}
		if len(wp.Coordinates) != 2 {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("route.waypoints[%d].coordinates", i),
				Message: "coordinate must be a [latitude, longitude] pair",
				Value:   wp.Coordinates,
			})
		}
	}

	return errors
}

// validateDateField checks a date string against the expected layout
func validateDateField(field, value string, required bool) []ValidationError {
	if value == "" {
		if required {
			return []ValidationError{{Field: field, Message: field + " is required"}}
		}
		return nil
	}
	if _, err := time.Parse(models.DateLayout, value); err != nil {
		return []ValidationError{{
			Field:   field,
			Message: "invalid date, expected YYYY-MM-DD format",
			Value:   value,
		}}
	}
	return nil
}

// isAbsoluteURL reports whether s parses as an absolute URL
func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs() && u.Host != ""
}
