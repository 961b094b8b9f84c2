package validation

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/trip-content-validator/internal/models"
)

// durationToleranceDays is how far the duration stat may drift from the
// computed date span before a warning is raised
const durationToleranceDays = 1

// ValidateRules runs the cross-field business rules. Each rule is
// independent and silently skips when its prerequisite fields are absent
// or unparseable; field-level problems are ValidateFields' job.
func (v *Validator) ValidateRules(trip *models.TripRecord) (errors, warnings []ValidationError) {
	if trip == nil {
		return nil, nil
	}

	start, startOK := parseDate(trip.StartDate)
	end, endOK := parseDate(trip.EndDate)

	// Date ordering: strictly-greater start is an error, equal dates are fine
	if startOK && endOK && start.After(end) {
		errors = append(errors, ValidationError{Field: "startDate", Message: "startDate must be before endDate"})
	}

	if startOK && endOK && !start.After(end) {
		warnings = append(warnings, checkDurationStat(trip.Stats, start, end)...)
	}

	warnings = append(warnings, v.checkStatusDates(trip.Status, start, startOK, end, endOK)...)

	// Path conventions: site images are served from the public root
	if trip.HeaderImage != "" && !strings.HasPrefix(trip.HeaderImage, "/") {
		warnings = append(warnings, ValidationError{
			Field:   "headerImage",
			Message: "image path should start with /",
			Value:   trip.HeaderImage,
		})
	}
	for i, item := range trip.Gallery {
		if item.Image != "" && !strings.HasPrefix(item.Image, "/") {
			warnings = append(warnings, ValidationError{
				Field:   fmt.Sprintf("gallery[%d].image", i),
				Message: "image path should start with /",
				Value:   item.Image,
			})
		}
	}

	errors = append(errors, checkCoordinateRanges(trip.Route)...)

	return errors, warnings
}

// Validate runs field validation followed by the business rules and
// merges the findings, field findings first. Both validators run even
// when the other has already failed.
func (v *Validator) Validate(trip *models.TripRecord) (errors, warnings []ValidationError) {
	fieldErrs, fieldWarns := v.ValidateFields(trip)
	ruleErrs, ruleWarns := v.ValidateRules(trip)
	errors = append(fieldErrs, ruleErrs...)
	warnings = append(fieldWarns, ruleWarns...)
	return errors, warnings
}

// checkDurationStat compares a "duration"/"days" stat entry against the
// number of days the date range spans (inclusive of both endpoints)
func checkDurationStat(stats []models.StatEntry, start, end time.Time) []ValidationError {
	daysDiff := int(math.Ceil(end.Sub(start).Hours()/24)) + 1

	for i, stat := range stats {
		if stat.ID != "duration" && stat.ID != "days" {
			continue
		}
		if math.Abs(float64(daysDiff)-stat.Value) > durationToleranceDays {
			return []ValidationError{{
				Field:   fmt.Sprintf("stats[%d].value", i),
				Message: fmt.Sprintf("duration stat is %g days but the date range spans %d days", stat.Value, daysDiff),
				Value:   stat.Value,
			}}
		}
		return nil
	}
	return nil
}

// checkStatusDates flags soft mismatches between the trip status and its
// date range. Comparisons are at date granularity so a trip ending today
// still counts as current. Hidden trips are exempt.
func (v *Validator) checkStatusDates(status string, start time.Time, startOK bool, end time.Time, endOK bool) []ValidationError {
	var warnings []ValidationError

	now := v.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch models.TripStatus(status) {
	case models.TripStatusCurrent:
		if startOK && start.After(today) {
			warnings = append(warnings, ValidationError{Field: "status", Message: "trip is marked current but startDate is in the future"})
		}
		if endOK && end.Before(today) {
			warnings = append(warnings, ValidationError{Field: "status", Message: "trip is marked current but endDate is in the past"})
		}
	case models.TripStatusCompleted:
		if endOK && end.After(today) {
			warnings = append(warnings, ValidationError{Field: "status", Message: "trip is marked completed but endDate is in the future"})
		}
	case models.TripStatusPlanned:
		if startOK && start.Before(today) {
			warnings = append(warnings, ValidationError{Field: "status", Message: "trip is marked planned but startDate is in the past"})
		}
	}

	return warnings
}

// checkCoordinateRanges verifies every coordinate pair on the route.
// Pairs are [latitude, longitude]; range bounds are inclusive. Pairs of
// the wrong length are skipped here since the field validator already
// rejects them.
func checkCoordinateRanges(route *models.Route) []ValidationError {
	if route == nil {
		return nil
	}

	var errors []ValidationError
	for i, pair := range route.Coordinates {
		errors = append(errors, checkCoordinatePair(fmt.Sprintf("route.coordinates[%d]", i), pair)...)
	}
	for i, wp := range route.Waypoints {
		errors = append(errors, checkCoordinatePair(fmt.Sprintf("route.waypoints[%d].coordinates", i), wp.Coordinates)...)
	}
	return errors
}

func checkCoordinatePair(field string, pair []float64) []ValidationError {
	if len(pair) != 2 {
		return nil
	}

	var errors []ValidationError
	lat, lng := pair[0], pair[1]
	if lat < -90 || lat > 90 {
		errors = append(errors, ValidationError{
			Field:   field,
			Message: fmt.Sprintf("latitude %g is out of range [-90, 90]", lat),
			Value:   lat,
		})
	}
	if lng < -180 || lng > 180 {
		errors = append(errors, ValidationError{
			Field:   field,
			Message: fmt.Sprintf("longitude %g is out of range [-180, 180]", lng),
			Value:   lng,
		})
	}
	return errors
}

func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
