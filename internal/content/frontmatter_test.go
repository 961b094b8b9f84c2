package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFrontmatter(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantMeta string
		wantBody string
		wantErr  error
	}{
		{
			name:     "well formed document",
			raw:      "---\ntitle: Alps\nstatus: completed\n---\n# Alps\n\nBody text.",
			wantMeta: "title: Alps\nstatus: completed",
			wantBody: "# Alps\n\nBody text.",
		},
		{
			name:     "empty body after frontmatter",
			raw:      "---\ntitle: Alps\n---\n",
			wantMeta: "title: Alps",
			wantBody: "",
		},
		{
			name:     "closing delimiter at end of file without newline",
			raw:      "---\ntitle: Alps\n---",
			wantMeta: "title: Alps",
			wantBody: "",
		},
		{
			name:     "empty frontmatter block",
			raw:      "---\n---\nbody only",
			wantMeta: "",
			wantBody: "body only",
		},
		{
			name:     "leading blank lines tolerated",
			raw:      "\n\n---\ntitle: Alps\n---\nbody",
			wantMeta: "title: Alps",
			wantBody: "body",
		},
		{
			name:     "byte order mark tolerated",
			raw:      "\uFEFF---\ntitle: Alps\n---\nbody",
			wantMeta: "title: Alps",
			wantBody: "body",
		},
		{
			name:    "no opening delimiter",
			raw:     "title: Alps\n---\nbody",
			wantErr: ErrMissingFrontmatter,
		},
		{
			name:    "plain markdown document",
			raw:     "# Alps\n\nJust a body.",
			wantErr: ErrMissingFrontmatter,
		},
		{
			name:    "empty document",
			raw:     "",
			wantErr: ErrMissingFrontmatter,
		},
		{
			name:    "opening delimiter never closed",
			raw:     "---\ntitle: Alps\nstatus: completed\n",
			wantErr: ErrUnclosedFrontmatter,
		},
		{
			name:    "lone delimiter line",
			raw:     "---",
			wantErr: ErrUnclosedFrontmatter,
		},
		{
			name:    "delimiter not at line start is not closing",
			raw:     "---\ntitle: Alps --- more\n",
			wantErr: ErrUnclosedFrontmatter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, body, err := SplitFrontmatter(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMeta, meta)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestDecode(t *testing.T) {
	raw := `---
title: Alps Crossing
description: Two weeks hiking across the Alps.
startDate: "2024-06-01"
endDate: "2024-06-14"
status: completed
headerImage: /images/alps/header.jpg
stats:
  - id: distance
    value: 520
    label: Distance
    icon: map
    unit: km
route:
  coordinates:
    - [47.42, 10.98]
    - [46.44, 12.31]
  waypoints:
    - name: Munich
      coordinates: [48.14, 11.58]
gallery:
  - image: /images/alps/pass.jpg
    caption: The pass
activities:
  - name: Summit day
    description: Up before dawn.
    registrationUrl: https://example.com/register
    isPublic: true
participants:
  - name: Ana
---
# Alps Crossing

Body.`

	trip, err := Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, "Alps Crossing", trip.Title)
	assert.Equal(t, "2024-06-01", trip.StartDate)
	assert.Equal(t, "completed", trip.Status)
	require.Len(t, trip.Stats, 1)
	assert.Equal(t, "distance", trip.Stats[0].ID)
	assert.Equal(t, 520.0, trip.Stats[0].Value)
	require.NotNil(t, trip.Route)
	require.Len(t, trip.Route.Coordinates, 2)
	assert.Equal(t, []float64{47.42, 10.98}, trip.Route.Coordinates[0])
	require.Len(t, trip.Route.Waypoints, 1)
	assert.Equal(t, "Munich", trip.Route.Waypoints[0].Name)
	require.Len(t, trip.Activities, 1)
	assert.Equal(t, "https://example.com/register", trip.Activities[0].RegistrationURL)
	assert.True(t, trip.Activities[0].IsPublic)
	require.Len(t, trip.Participants, 1)
	assert.Equal(t, "Ana", trip.Participants[0].Name)
}

func TestDecodeMissingDelimiter(t *testing.T) {
	_, err := Decode("title: Alps\n")
	assert.ErrorIs(t, err, ErrMissingFrontmatter)
}

func TestDecodeInvalidYAML(t *testing.T) {
	_, err := Decode("---\ntitle: [unclosed\n---\nbody")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid frontmatter")
}

func TestDecodeWrongFieldType(t *testing.T) {
	_, err := Decode("---\nstats: not-a-list\n---\nbody")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid frontmatter")
}
