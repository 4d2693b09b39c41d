package dialogue

import (
	"fmt"
	"strings"
	"talentscout/app/model"
	"unicode"
)

// renderTemplate substitutes {key} placeholders in an embedded prompt template.
func renderTemplate(template string, values map[string]any) string {
	for key, value := range values {
		template = strings.ReplaceAll(template, "{"+key+"}", fmt.Sprint(value))
	}

	return template
}

// lastTurns returns the last n history entries without copying.
func lastTurns(history []model.Message, n int) []model.Message {
	if len(history) <= n {
		return history
	}

	return history[len(history)-n:]
}

func lastStrings(items []string, n int) []string {
	if len(items) <= n {
		return items
	}

	return items[len(items)-n:]
}

// titleCase upper-cases the first letter of every word and lower-cases the
// rest, treating any non-letter as a word boundary ("o'neil" -> "O'Neil").
func titleCase(s string) string {
	runes := []rune(s)
	prevLetter := false

	for i, r := range runes {
		if unicode.IsLetter(r) {
			if prevLetter {
				runes[i] = unicode.ToLower(r)
			} else {
				runes[i] = unicode.ToUpper(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
	}

	return string(runes)
}
