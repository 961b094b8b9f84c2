// Package content handles the raw side of trip content files: splitting
// and decoding the "---"-delimited YAML frontmatter block, heuristic
// format checks over the raw text, and loading documents from a content
// directory.
package content

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/trip-content-validator/internal/models"
)

// Delimiter opens and closes the frontmatter block of a content file
const Delimiter = "---"

var (
	// ErrMissingFrontmatter means the document does not open with a delimiter
	ErrMissingFrontmatter = errors.New("document must start with frontmatter (---)")
	// ErrUnclosedFrontmatter means the opening delimiter is never closed
	ErrUnclosedFrontmatter = errors.New("frontmatter block must be properly closed (---)")
)

// SplitFrontmatter separates a raw document into its frontmatter block and
// body. Leading whitespace and a UTF-8 BOM before the opening delimiter are
// tolerated. The returned error is ErrMissingFrontmatter or
// ErrUnclosedFrontmatter when the delimiters are wrong.
func SplitFrontmatter(raw string) (meta, body string, err error) {
	trimmed := strings.TrimLeft(raw, "\uFEFF \t\r\n")
	if !strings.HasPrefix(trimmed, Delimiter) {
		return "", "", ErrMissingFrontmatter
	}

	rest := trimmed[len(Delimiter):]
	nl := strings.IndexByte(rest, '\n')
	if nl < 0 {
		return "", "", ErrUnclosedFrontmatter
	}
	rest = rest[nl+1:]

	// Closing delimiter at the start of a line
	var idx int
	if strings.HasPrefix(rest, Delimiter) {
		meta = ""
		idx = 0
	} else {
		i := strings.Index(rest, "\n"+Delimiter)
		if i < 0 {
			return "", "", ErrUnclosedFrontmatter
		}
		meta = rest[:i]
		idx = i + 1
	}

	body = rest[idx+len(Delimiter):]
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		body = body[nl+1:]
	} else {
		body = ""
	}

	return meta, body, nil
}

// Decode parses a raw document's frontmatter into a TripRecord.
// A delimiter problem or YAML decode failure is returned as an error so the
// caller can surface it as a schema finding; Decode itself never panics.
func Decode(raw string) (*models.TripRecord, error) {
	meta, _, err := SplitFrontmatter(raw)
	if err != nil {
		return nil, err
	}

	var trip models.TripRecord
	if err := yaml.Unmarshal([]byte(meta), &trip); err != nil {
		return nil, fmt.Errorf("invalid frontmatter: %w", err)
	}

	return &trip, nil
}
