package quizgen

import "strings"

// stripFences removes a Markdown code fence wrapping from raw model output.
// Models sometimes wrap the requested JSON in ```json ... ``` despite being
// told not to; the payload inside is kept as-is.
func stripFences(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}

	s = strings.TrimSuffix(strings.TrimSpace(s), "```")

	return strings.TrimSpace(s)
}
