package dialogue

import (
	"regexp"
	"strings"
	"unicode"
)

var techSeparatorPattern = regexp.MustCompile(`(?i),|;|\band\b|/|&`)

// ParseTechStack splits free-text tech-stack input into an ordered,
// de-duplicated list of normalized technology names. An empty result tells
// the caller to ask for clarification.
func ParseTechStack(techStack string) []string {
	rawTokens := techSeparatorPattern.Split(techStack, -1)

	technologies := make([]string, 0, len(rawTokens))
	seen := make(map[string]struct{}, len(rawTokens))

	for _, token := range rawTokens {
		tech := strings.TrimSpace(strings.Trim(token, " .;:-"))
		if tech == "" {
			continue
		}

		normalized := normalizeTech(tech)
		if _, ok := seen[normalized]; ok {
			continue
		}

		seen[normalized] = struct{}{}
		technologies = append(technologies, normalized)
	}

	return technologies
}

func normalizeTech(tech string) string {
	// Acronyms like SQL or C# stay untouched.
	if isAllUpper(tech) {
		return tech
	}

	// Dotted names keep everything after the first dot, e.g. node.js -> Node.js.
	if strings.Contains(tech, ".") {
		parts := strings.SplitN(tech, ".", 2)
		return capitalize(parts[0]) + "." + parts[1]
	}

	return capitalize(tech)
}

// isAllUpper reports whether the token has at least one letter and no
// lowercase letters.
func isAllUpper(s string) bool {
	hasUpper := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}

	return hasUpper
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}
