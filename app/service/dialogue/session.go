package dialogue

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"talentscout/app/model"

	"github.com/elliotchance/pie/v2"
)

const (
	maxExperienceYears = 30

	unhandledStateReply = "I'm sorry, something went wrong. Please refresh to try again. " +
		"If the issue persists, please contact support."
	internalErrorReply = "I apologize, but I encountered an error. " +
		"Please contact support if you are not able to continue with the next question."
)

var (
	exitTokens     = []string{"exit", "quit", "stop", "end", "goodbye", "bye", "done"}
	greetingTokens = []string{"hello", "hi", "hey", "start", "begin"}

	namePattern       = regexp.MustCompile(`^[a-zA-Z][a-zA-Z\s'’-]+$`)
	phoneNoisePattern = regexp.MustCompile(`[^\d+\-\s()]`)
)

// Session owns one candidate conversation from introduction to completion.
// All mutable state lives here and is touched by exactly one turn at a time.
type Session struct {
	mu sync.Mutex

	generator  Generator
	validators ContactValidator
	store      CandidateStore

	state              ConversationState
	profile            model.CandidateProfile
	technicalResponses map[string]string
	history            []model.Message

	techStack                []string
	currentTechIndex         int
	currentTechQuestionCount int
	assessments              map[string]*TechAssessment
}

func NewSession(generator Generator, validators ContactValidator, store CandidateStore) *Session {
	return &Session{
		generator:          generator,
		validators:         validators,
		store:              store,
		state:              StateIntroduction,
		technicalResponses: map[string]string{},
		assessments:        map[string]*TechAssessment{},
	}
}

// Handle processes one inbound message and returns exactly one reply.
// Nothing escapes this boundary: internal failures become an apology reply
// and the conversation stays usable.
func (s *Session) Handle(ctx context.Context, input string) (reply string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	input = strings.TrimSpace(input)

	slog.Info("Handling message", "state", s.state.String())

	defer func() {
		if r := recover(); r != nil {
			slog.Error("Recovered from panic while handling message",
				"state", s.state.String(),
				"panic", r)
			reply = internalErrorReply
			s.remember(input, reply)
		}
	}()

	if pie.Contains(exitTokens, strings.ToLower(input)) {
		reply = s.handleExit(ctx)
		s.remember(input, reply)
		return reply
	}

	switch s.state {
	case StateIntroduction:
		reply = s.handleIntroduction(input)
	case StateCollectingName:
		reply = s.handleNameCollection(input)
	case StateCollectingPhone:
		reply = s.handlePhoneCollection(input)
	case StateCollectingEmail:
		reply = s.handleEmailCollection(input)
	case StateCollectingLocation:
		reply = s.handleLocationCollection(ctx, input)
	case StateCollectingExperience:
		reply = s.handleExperienceCollection(input)
	case StateCollectingPositions:
		reply = s.handlePositionsCollection(input)
	case StateCollectingTechStack:
		reply = s.handleTechStackCollection(ctx, input)
	case StateTechnicalScreening:
		reply = s.handleTechnicalScreening(ctx, input)
	case StateCompleted:
		reply = s.handleCompleted(ctx, input)
	default:
		slog.Error("Unhandled conversation state", "state", int(s.state))
		reply = unhandledStateReply
	}

	s.remember(input, reply)

	return reply
}

func (s *Session) remember(input, reply string) {
	s.history = append(s.history,
		model.Message{Role: model.RoleUser, Content: input},
		model.Message{Role: model.RoleAssistant, Content: reply},
	)
}

func (s *Session) handleExit(ctx context.Context) string {
	slog.Info("Exit command received, attempting to save data")
	s.state = StateCompleted

	if s.profile.Name == "" || !s.profileHasData() {
		slog.Info("No significant data collected, nothing was saved")
		return "Thank you for visiting! Since we didn't collect complete information, " +
			"nothing was saved. Feel free to return anytime to complete the screening. " +
			"Have a great day!"
	}

	if err := s.store.SaveCandidate(ctx, s.profile, s.responsesPayload()); err != nil {
		slog.Error("Failed to save candidate data on exit",
			"name", s.profile.Name,
			"error", err,
			"telegram", true)
		return "Thank you for your time! There was a technical issue while saving your data, " +
			"but our team has been notified. Have a great day!"
	}

	slog.Info("Candidate data saved on exit", "name", s.profile.Name)

	return fmt.Sprintf("Thank you for your time %s! Your information has been saved securely. "+
		"Our team will review your responses and get back to you soon. "+
		"Have a great day!", s.profile.Name)
}

func (s *Session) handleIntroduction(input string) string {
	if !pie.Contains(greetingTokens, strings.ToLower(input)) {
		return "Welcome to TalentScout! Say 'hello' or 'start' whenever you're ready to begin the screening."
	}

	slog.Info("Transitioning state", "from", StateIntroduction.String(), "to", StateCollectingName.String())
	s.state = StateCollectingName

	return "Hello and welcome to TalentScout! I'm here to run a short initial screening to collect a few details and " +
		"ask some technical questions tailored to your skills. This should take about 10-15 minutes. To start, " +
		"what's your full name?"
}

func (s *Session) handleNameCollection(input string) string {
	if !namePattern.MatchString(input) {
		slog.Warn("Invalid name format received")
		return "Please provide a valid full name using letters only. Such as 'John Doe'."
	}

	nameParts := pie.Filter(strings.Fields(input), func(part string) bool {
		return len(part) > 1
	})
	if len(nameParts) < 2 {
		slog.Warn("Incomplete name received")
		return "Please provide your full name (first and last name). For example, 'Mike Smith'."
	}

	s.profile.Name = titleCase(input)
	slog.Info("Collected name", "name", s.profile.Name)
	s.state = StateCollectingPhone

	return fmt.Sprintf("Nice to meet you, %s! Please provide your phone number including the country code "+
		"e.g., +91 1122334455.", s.profile.Name)
}

func (s *Session) handlePhoneCollection(input string) string {
	phone := phoneNoisePattern.ReplaceAllString(input, "")

	if !s.validators.Phone(phone) {
		slog.Warn("Invalid phone number received")
		return "Validation failed! Please provide a valid phone number with country code."
	}

	s.profile.PhoneNumber = phone
	slog.Info("Collected phone number")
	s.state = StateCollectingEmail

	return "Great! Provide your deliverable email address e.g., mikesmith@gmail.com."
}

func (s *Session) handleEmailCollection(input string) string {
	email := strings.ToLower(input)

	if !s.validators.Email(email) {
		slog.Warn("Invalid email received")
		return "Invalid! Please provide a valid email address (e.g., john.doe@mail.com)."
	}

	s.profile.Email = email
	slog.Info("Collected email")
	s.state = StateCollectingLocation

	return "Perfect! Next, what's your current location? (City, Country)"
}

func (s *Session) handleLocationCollection(ctx context.Context, input string) string {
	if len(input) < 2 {
		slog.Warn("Location input too short")
		return "Please provide your current location e.g., New York, USA."
	}

	if !s.validators.Location(ctx, input) {
		slog.Warn("Location validation failed", "location", input)
		return "I couldn't verify that location. Please provide a valid city and country " +
			"e.g., 'New Delhi, India'."
	}

	s.profile.CurrentLocation = input
	slog.Info("Collected location", "location", input)
	s.state = StateCollectingExperience

	return "Location verified! How many years of professional experience do you have?"
}

func (s *Session) handleExperienceCollection(input string) string {
	experience, err := strconv.Atoi(input)
	if err != nil {
		slog.Warn("Experience input is not a number", "input", input)
		return "Please provide a valid number for years of experience."
	}

	if experience < 0 || experience > maxExperienceYears {
		slog.Warn("Unrealistic experience years received", "years", experience)
		return "Please provide a realistic number of years (0-30)."
	}

	s.profile.ExperienceYears = experience
	slog.Info("Collected experience", "years", experience)
	s.state = StateCollectingPositions

	return "Excellent! What type of positions are you interested in? " +
		"(e.g., Python Developer, Backend Developer, Frontend Developer, etc.)"
}

func (s *Session) handlePositionsCollection(input string) string {
	if len(input) < 3 {
		slog.Warn("Desired positions input too short")
		return "Please describe the type of positions you're interested in."
	}

	s.profile.DesiredPositions = input
	slog.Info("Collected desired positions", "positions", input)
	s.state = StateCollectingTechStack

	return "Great! Please list the programming languages, frameworks, databases, and tools you are proficient in. " +
		"(e.g., Python, JavaScript, React, Node.js, PostgreSQL, etc.)"
}

func (s *Session) handleTechStackCollection(ctx context.Context, input string) string {
	if len(input) < 3 {
		slog.Warn("Tech stack input too short")
		return "Please describe your technical skills and technologies you work with."
	}

	s.profile.TechStack = input

	techStack := ParseTechStack(input)
	slog.Info("Parsed tech stack", "technologies", techStack)

	if len(techStack) == 0 {
		slog.Warn("Could not parse any technologies from the input")
		return "I couldn't identify specific technologies from your input. " +
			"Please list them more clearly (e.g., Python, JavaScript, React, PostgreSQL)."
	}

	s.techStack = techStack
	for _, tech := range techStack {
		s.assessments[tech] = &TechAssessment{Responses: []string{}}
	}

	s.state = StateTechnicalScreening
	s.currentTechIndex = 0
	s.currentTechQuestionCount = 0
	slog.Info("Transitioning state", "to", StateTechnicalScreening.String())

	currentTech := techStack[0]
	question := s.generateTechnicalQuestion(ctx, currentTech, 1)

	return fmt.Sprintf("Perfect! I can see you work with %s. "+
		"Now let's dive into some technical questions to better understand your expertise.\n\n"+
		"Let's start with **%s**:\n\n%s",
		strings.Join(techStack, ", "), currentTech, question)
}

func (s *Session) handleCompleted(ctx context.Context, input string) string {
	prompt := fmt.Sprintf("The candidate %s has completed their screening. "+
		"They are asking: '%s'. Provide a helpful, professional response about "+
		"the hiring process, company information, or next steps. Keep it concise and friendly.",
		s.profile.Name, input)

	answer, err := s.generator.Generate(ctx, prompt, lastTurns(s.history, 6))
	if err != nil {
		slog.Error("Failed to generate post-completion answer", "error", err)
		answer = "I'm sorry, I couldn't generate an answer right now."
	}

	return answer + "\n\nIf you have any other questions, feel free to ask or contact our HR team directly!"
}

func (s *Session) profileHasData() bool {
	return s.profile.Name != "" ||
		s.profile.PhoneNumber != "" ||
		s.profile.Email != "" ||
		s.profile.CurrentLocation != "" ||
		s.profile.ExperienceYears > 0 ||
		s.profile.DesiredPositions != "" ||
		s.profile.TechStack != ""
}

// responsesPayload converts the raw technical responses for persistence.
func (s *Session) responsesPayload() map[string]any {
	payload := make(map[string]any, len(s.technicalResponses))
	for key, value := range s.technicalResponses {
		payload[key] = value
	}

	return payload
}

// State returns the current conversation state, for tests and the snapshot.
func (s *Session) State() ConversationState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Snapshot returns a read-only view for the presentation layer.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	responses := make(map[string]string, len(s.technicalResponses))
	for key, value := range s.technicalResponses {
		responses[key] = value
	}

	return Snapshot{
		State:                s.state.String(),
		Profile:              s.profile,
		TechnicalResponses:   responses,
		CompletionPercentage: s.completionPercentage(),
	}
}
