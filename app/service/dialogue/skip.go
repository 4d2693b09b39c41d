package dialogue

import (
	"context"
	"log/slog"
	"strings"

	_ "embed"
)

//go:embed skip_prompt.txt
var skipPromptTemplate string

// isSkipResponse asks the model whether the answer means "I don't know /
// skip". Only a reply starting with "y" counts as a skip; a failed call
// defaults to treating the answer as a genuine attempt.
func (s *Session) isSkipResponse(ctx context.Context, input string) bool {
	prompt := renderTemplate(skipPromptTemplate, map[string]any{
		"response": input,
	})

	result, err := s.generator.Generate(ctx, prompt, nil)
	if err != nil {
		slog.Error("Skip classification failed", "error", err)
		return false
	}

	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(result)), "y")
}
