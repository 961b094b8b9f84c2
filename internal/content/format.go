package content

import (
	"fmt"
	"strings"
)

// minBodyLength is the trimmed body length below which a document is
// flagged as very short
const minBodyLength = 100

// CheckFormat runs structural checks over a raw content document.
// The two delimiter checks are errors and short-circuit everything else;
// every body and metadata finding is a warning. This is a line-oriented
// heuristic, not a YAML parse — schema problems are the validators' job.
func CheckFormat(raw string) (errors, warnings []string) {
	meta, body, err := SplitFrontmatter(raw)
	if err != nil {
		return []string{err.Error()}, nil
	}

	warnings = append(warnings, scanMetadataLines(meta)...)
	warnings = append(warnings, checkBody(body)...)

	return nil, warnings
}

// scanMetadataLines flags frontmatter lines that look malformed: non-empty,
// not a comment, and neither a key:value line nor a list item
func scanMetadataLines(meta string) []string {
	var warnings []string

	for i, line := range strings.Split(meta, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if !strings.Contains(trimmed, ":") && !strings.HasPrefix(trimmed, "-") {
			warnings = append(warnings, fmt.Sprintf("frontmatter line %d: possible formatting issue: %q", i+1, trimmed))
		}
	}

	return warnings
}

// checkBody applies the advisory body heuristics
func checkBody(body string) []string {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return []string{"no content found after frontmatter"}
	}

	var warnings []string
	if !hasLeadingHeading(trimmed) {
		warnings = append(warnings, "consider adding a main heading (# Title) at the start of the content")
	}
	if len(trimmed) < minBodyLength {
		warnings = append(warnings, "content is very short, consider adding more details")
	}
	return warnings
}

// hasLeadingHeading reports whether the body starts with a level-1
// Markdown heading marker
func hasLeadingHeading(body string) bool {
	return len(body) > 1 && body[0] == '#' && (body[1] == ' ' || body[1] == '\t')
}
