// Package runner applies the validators across a collection of trips and
// aggregates the outcomes into one result per trip.
package runner

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/trip-content-validator/internal/content"
	"github.com/trip-content-validator/internal/models"
	"github.com/trip-content-validator/internal/validation"
)

// CollectionID is the synthetic trip ID used when the content source
// itself fails and no per-trip results can be produced
const CollectionID = "collection"

// ContentSource yields the raw trip documents to validate
type ContentSource interface {
	List(ctx context.Context) ([]content.Document, error)
}

// TripInput pairs a trip ID with its already-parsed record
type TripInput struct {
	ID     string
	Record *models.TripRecord
}

// Runner validates trip collections. It is stateless apart from its
// logger and validator; results preserve input order.
type Runner struct {
	validator *validation.Validator
	log       zerolog.Logger
}

// New creates a Runner
func New(log zerolog.Logger) *Runner {
	return &Runner{
		validator: validation.NewValidator(),
		log:       log.With().Str("component", "runner").Logger(),
	}
}

// ValidateRecord validates one parsed trip record: field checks first,
// then business rules, with the findings merged in that order
func (r *Runner) ValidateRecord(id string, trip *models.TripRecord) models.ValidationResult {
	fieldErrs, fieldWarns := r.validator.ValidateFields(trip)
	ruleErrs, ruleWarns := r.validator.ValidateRules(trip)

	errors := append(validation.Messages(fieldErrs), validation.Messages(ruleErrs)...)
	warnings := append(validation.Messages(fieldWarns), validation.Messages(ruleWarns)...)

	return models.NewValidationResult(id, errors, warnings)
}

// ValidateAll validates a sequence of parsed records, returning one
// result per input in the same order
func (r *Runner) ValidateAll(inputs []TripInput) []models.ValidationResult {
	results := make([]models.ValidationResult, 0, len(inputs))
	for _, in := range inputs {
		results = append(results, r.ValidateRecord(in.ID, in.Record))
	}
	return results
}

// ValidateDocument validates one raw content file. Format errors block
// everything else for that file; otherwise the frontmatter is decoded and
// the record validators run, with format warnings listed before record
// warnings.
func (r *Runner) ValidateDocument(doc content.Document) models.ValidationResult {
	fmtErrs, fmtWarns := content.CheckFormat(doc.Raw)
	if len(fmtErrs) > 0 {
		return models.NewValidationResult(doc.ID, fmtErrs, fmtWarns)
	}

	trip, err := content.Decode(doc.Raw)
	if err != nil {
		// Decode failure is a schema error entry, not a Go error
		return models.NewValidationResult(doc.ID, []string{err.Error()}, fmtWarns)
	}

	rec := r.ValidateRecord(doc.ID, trip)
	rec.Warnings = append(fmtWarns, rec.Warnings...)
	return rec
}

// Run validates every document the source yields, preserving source
// order. A source failure produces a single synthetic invalid result with
// the collection ID instead of an error; nothing escapes this boundary.
func (r *Runner) Run(ctx context.Context, src ContentSource) []models.ValidationResult {
	docs, err := src.List(ctx)
	if err != nil {
		r.log.Error().Err(err).Msg("Failed to load trip collection")
		return []models.ValidationResult{{
			TripID:  CollectionID,
			IsValid: false,
			Errors:  []string{fmt.Sprintf("failed to load trip collection: %v", err)},
		}}
	}

	results := make([]models.ValidationResult, 0, len(docs))
	for _, doc := range docs {
		res := r.ValidateDocument(doc)
		if !res.IsValid {
			r.log.Debug().Str("trip_id", res.TripID).Int("errors", len(res.Errors)).Msg("Trip failed validation")
		}
		results = append(results, res)
	}
	return results
}
