package dialogue

import (
	"context"
	"talentscout/app/model"
)

// ConversationState drives the per-turn handler dispatch. Transitions only
// move forward, except TechnicalScreening which loops until every technology
// is covered.
type ConversationState int

const (
	StateIntroduction ConversationState = iota
	StateCollectingName
	StateCollectingPhone
	StateCollectingEmail
	StateCollectingLocation
	StateCollectingExperience
	StateCollectingPositions
	StateCollectingTechStack
	StateTechnicalScreening
	StateCompleted
)

func (s ConversationState) String() string {
	switch s {
	case StateIntroduction:
		return "introduction"
	case StateCollectingName:
		return "collecting_name"
	case StateCollectingPhone:
		return "collecting_phone"
	case StateCollectingEmail:
		return "collecting_email"
	case StateCollectingLocation:
		return "collecting_location"
	case StateCollectingExperience:
		return "collecting_experience"
	case StateCollectingPositions:
		return "collecting_positions"
	case StateCollectingTechStack:
		return "collecting_tech_stack"
	case StateTechnicalScreening:
		return "technical_screening"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// TechAssessment accumulates everything the candidate said about one technology.
type TechAssessment struct {
	Responses      []string `json:"responses"`
	QuestionsAsked int      `json:"questions_asked"`
}

// Snapshot is the read-only view handed to the presentation layer.
type Snapshot struct {
	State                string                 `json:"state"`
	Profile              model.CandidateProfile `json:"candidate_data"`
	TechnicalResponses   map[string]string      `json:"technical_responses"`
	CompletionPercentage int                    `json:"completion_percentage"`
}

// TechProgressEntry reports how far one technology's question loop has come.
type TechProgressEntry struct {
	Completed   int  `json:"completed"`
	Total       int  `json:"total"`
	IsCurrent   bool `json:"is_current"`
	IsCompleted bool `json:"is_completed"`
}

// TechProgress reports the overall technical screening position.
type TechProgress struct {
	Technologies     []string                     `json:"technologies"`
	CurrentTech      string                       `json:"current_tech"`
	CurrentTechIndex int                          `json:"current_tech_index"`
	Progress         map[string]TechProgressEntry `json:"progress"`
}

// Generator produces question and answer text from the language model.
// It may fail, every call site substitutes a local fallback.
type Generator interface {
	Generate(ctx context.Context, prompt string, history []model.Message) (string, error)
}

// ContactValidator answers yes/no about candidate contact fields.
type ContactValidator interface {
	Email(email string) bool
	Phone(phone string) bool
	Location(ctx context.Context, location string) bool
}

// CandidateStore persists one finished (or abandoned) screening.
type CandidateStore interface {
	SaveCandidate(ctx context.Context, profile model.CandidateProfile, responses map[string]any) error
}
