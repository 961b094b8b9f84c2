package runner

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-content-validator/internal/content"
	"github.com/trip-content-validator/internal/models"
)

type stubSource struct {
	docs []content.Document
	err  error
}

func (s *stubSource) List(ctx context.Context) ([]content.Document, error) {
	return s.docs, s.err
}

func newTestRunner() *Runner {
	return New(zerolog.Nop())
}

const validDoc = `---
title: Alps Crossing
description: Two weeks hiking across the Alps from Munich to Venice.
startDate: "2024-06-01"
endDate: "2024-06-14"
status: completed
headerImage: /images/alps/header.jpg
stats:
  - id: distance
    value: 520
    label: Distance
    icon: map
route:
  coordinates:
    - [47.42, 10.98]
    - [46.44, 12.31]
  waypoints:
    - name: Munich
      coordinates: [48.14, 11.58]
gallery:
  - image: /images/alps/pass.jpg
---
# Alps Crossing

A long account of the crossing with enough text to comfortably clear the
minimum body length heuristic applied to trip content.
`

func TestValidateRecordOrdersFieldErrorsFirst(t *testing.T) {
	r := newTestRunner()

	trip, err := content.Decode(validDoc)
	require.NoError(t, err)
	// Break one schema field and one business rule
	trip.Title = ""
	trip.StartDate, trip.EndDate = "2024-06-14", "2024-06-01"

	res := r.ValidateRecord("alps", trip)

	assert.False(t, res.IsValid)
	require.Len(t, res.Errors, 2)
	assert.Contains(t, res.Errors[0], "title")
	assert.Contains(t, res.Errors[1], "startDate must be before endDate")
}

func TestValidateRecordValidTrip(t *testing.T) {
	r := newTestRunner()

	trip, err := content.Decode(validDoc)
	require.NoError(t, err)

	res := r.ValidateRecord("alps", trip)

	assert.True(t, res.IsValid)
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, "alps", res.TripID)
}

func TestValidateRecordIdempotent(t *testing.T) {
	r := newTestRunner()

	trip, err := content.Decode(validDoc)
	require.NoError(t, err)
	trip.HeaderImage = "images/relative.jpg"

	first := r.ValidateRecord("alps", trip)
	second := r.ValidateRecord("alps", trip)

	assert.Equal(t, first, second)
}

func TestValidateAllPreservesOrder(t *testing.T) {
	r := newTestRunner()

	broken := &models.TripRecord{Title: "Broken"}
	ok, err := content.Decode(validDoc)
	require.NoError(t, err)

	inputs := []TripInput{
		{ID: "zulu", Record: ok},
		{ID: "alpha", Record: broken},
		{ID: "mike", Record: ok},
	}

	results := r.ValidateAll(inputs)

	require.Len(t, results, 3)
	assert.Equal(t, "zulu", results[0].TripID)
	assert.Equal(t, "alpha", results[1].TripID)
	assert.Equal(t, "mike", results[2].TripID)
	assert.True(t, results[0].IsValid)
	assert.False(t, results[1].IsValid)
}

func TestValidateDocumentFormatErrorsBlockValidation(t *testing.T) {
	r := newTestRunner()

	res := r.ValidateDocument(content.Document{ID: "plain", Raw: "# No frontmatter here\n"})

	assert.False(t, res.IsValid)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "must start with frontmatter")
	assert.Empty(t, res.Warnings)
}

func TestValidateDocumentDecodeFailureIsSchemaError(t *testing.T) {
	r := newTestRunner()

	raw := "---\nstats: not-a-list\n---\n# Heading\n\nBody.\n"
	res := r.ValidateDocument(content.Document{ID: "bad-yaml", Raw: raw})

	assert.False(t, res.IsValid)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "invalid frontmatter")
}

func TestValidateDocumentFormatWarningsPrecedeRecordWarnings(t *testing.T) {
	r := newTestRunner()

	// Relative image path triggers a record warning; the thin body
	// triggers a format warning, which must come first
	raw := strings.Replace(validDoc, "headerImage: /images/alps/header.jpg", "headerImage: images/alps/header.jpg", 1)
	raw = strings.Split(raw, "# Alps Crossing")[0] + "# Alps Crossing\n\nThin.\n"

	res := r.ValidateDocument(content.Document{ID: "alps", Raw: raw})

	assert.True(t, res.IsValid)
	require.Len(t, res.Warnings, 2)
	assert.Contains(t, res.Warnings[0], "very short")
	assert.Contains(t, res.Warnings[1], "image path should start with /")
}

func TestRunPreservesSourceOrder(t *testing.T) {
	r := newTestRunner()

	src := &stubSource{docs: []content.Document{
		{ID: "b-trip", Raw: validDoc},
		{ID: "a-trip", Raw: "# no frontmatter"},
		{ID: "c-trip", Raw: validDoc},
	}}

	results := r.Run(context.Background(), src)

	require.Len(t, results, 3)
	assert.Equal(t, "b-trip", results[0].TripID)
	assert.Equal(t, "a-trip", results[1].TripID)
	assert.Equal(t, "c-trip", results[2].TripID)
	assert.True(t, results[0].IsValid)
	assert.False(t, results[1].IsValid)
	assert.True(t, results[2].IsValid)
}

func TestRunSourceFailureYieldsCollectionResult(t *testing.T) {
	r := newTestRunner()

	src := &stubSource{err: errors.New("directory vanished")}

	results := r.Run(context.Background(), src)

	require.Len(t, results, 1)
	assert.Equal(t, CollectionID, results[0].TripID)
	assert.False(t, results[0].IsValid)
	require.Len(t, results[0].Errors, 1)
	assert.Contains(t, results[0].Errors[0], "failed to load trip collection")
	assert.Contains(t, results[0].Errors[0], "directory vanished")
}

func TestRunEmptySource(t *testing.T) {
	r := newTestRunner()

	results := r.Run(context.Background(), &stubSource{})

	assert.NotNil(t, results)
	assert.Empty(t, results)
}
