package dialogue

import (
	"context"
	"errors"
	"strings"
	"talentscout/app/model"
)

// stubGenerator replays scripted responses. Answers are matched by prompt
// substring first, then fall back to the default response.
type stubGenerator struct {
	response string
	answers  map[string]string
	err      error
	prompts  []string
}

func (g *stubGenerator) Generate(_ context.Context, prompt string, _ []model.Message) (string, error) {
	g.prompts = append(g.prompts, prompt)

	if g.err != nil {
		return "", g.err
	}

	for fragment, answer := range g.answers {
		if strings.Contains(prompt, fragment) {
			return answer, nil
		}
	}

	return g.response, nil
}

type stubValidators struct {
	email    bool
	phone    bool
	location bool
}

func (v stubValidators) Email(string) bool {
	return v.email
}

func (v stubValidators) Phone(string) bool {
	return v.phone
}

func (v stubValidators) Location(context.Context, string) bool {
	return v.location
}

func allValidStub() stubValidators {
	return stubValidators{email: true, phone: true, location: true}
}

type stubStore struct {
	saves         int
	err           error
	lastProfile   model.CandidateProfile
	lastResponses map[string]any
}

func (s *stubStore) SaveCandidate(_ context.Context, profile model.CandidateProfile, responses map[string]any) error {
	s.saves++
	s.lastProfile = profile
	s.lastResponses = responses

	return s.err
}

var errStubFailure = errors.New("stub failure")

func newTestSession(generator *stubGenerator, validators stubValidators, store *stubStore) *Session {
	return NewSession(generator, validators, store)
}
