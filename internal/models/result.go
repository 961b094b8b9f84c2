package models

// FindingSeverity distinguishes build-blocking errors from advisory warnings
type FindingSeverity string

const (
	SeverityError   FindingSeverity = "error"
	SeverityWarning FindingSeverity = "warning"
)

// Finding is a single persisted validation finding for one trip
type Finding struct {
	TripID   string          `json:"trip_id"`
	Severity FindingSeverity `json:"severity"`
	Message  string          `json:"message"`
	Position int             `json:"-"`
}

// ValidationResult is the outcome of validating one trip.
// IsValid is true iff Errors is empty; warnings never affect validity.
// Errors and Warnings preserve the order the checks produced them in.
type ValidationResult struct {
	TripID   string   `json:"trip_id"`
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// NewValidationResult builds a result from collected findings,
// deriving IsValid from the error list
func NewValidationResult(tripID string, errors, warnings []string) ValidationResult {
	return ValidationResult{
		TripID:   tripID,
		IsValid:  len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}

// Summary holds aggregate counts over a result list.
// Valid + Invalid always equals Total.
type Summary struct {
	Total        int `json:"total"`
	Valid        int `json:"valid"`
	Invalid      int `json:"invalid"`
	WithWarnings int `json:"with_warnings"`
}

// Summarize counts results by validity and warning presence
func Summarize(results []ValidationResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.IsValid {
			s.Valid++
		} else {
			s.Invalid++
		}
		if len(r.Warnings) > 0 {
			s.WithWarnings++
		}
	}
	return s
}
