package dialogue

import "strings"

// Substring indicators that usually mean the candidate is describing real
// engineering work rather than giving a one-liner.
var technicalIndicators = []string{
	"implement", "architecture", "design", "optimize", "performance",
	"scale", "database", "api", "framework", "algorithm", "solution",
	"challenge", "problem", "approach", "method", "strategy",
}

const (
	minFollowupWords      = 10
	minFollowupIndicators = 2
)

// warrantsFollowup decides whether an answer is substantive enough to probe
// deeper. It is a cheap keyword heuristic, not semantic understanding, so
// both false positives and false negatives happen.
func warrantsFollowup(response string) bool {
	if len(strings.Fields(response)) < minFollowupWords {
		return false
	}

	responseLower := strings.ToLower(response)

	count := 0
	for _, indicator := range technicalIndicators {
		if strings.Contains(responseLower, indicator) {
			count++
		}
	}

	return count >= minFollowupIndicators
}
