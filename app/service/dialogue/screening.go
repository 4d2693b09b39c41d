package dialogue

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	_ "embed"
)

//go:embed question_prompt.txt
var questionPromptTemplate string

//go:embed followup_prompt.txt
var followupPromptTemplate string

// questionsPerTech caps how many questions one technology gets before the
// loop advances to the next one.
const questionsPerTech = 5

const (
	questionFallback = "Unable to generate question, please try contacting support."
	followupFallback = "Can you elaborate more on the technical implementation details of what you just described?"
)

func (s *Session) handleTechnicalScreening(ctx context.Context, input string) string {
	if len(s.techStack) == 0 {
		slog.Error("Technical screening attempted with an empty tech stack list")
		return "There was an error with the technical screening. Let me restart the process."
	}

	currentTech := s.techStack[s.currentTechIndex]
	assessment := s.assessments[currentTech]

	assessment.Responses = append(assessment.Responses, input)
	responseKey := fmt.Sprintf("%s_q%d", currentTech, s.currentTechQuestionCount+1)
	s.technicalResponses[responseKey] = input
	slog.Info("Stored technical response", "key", responseKey)

	s.currentTechQuestionCount++
	assessment.QuestionsAsked = s.currentTechQuestionCount

	if s.currentTechQuestionCount < questionsPerTech {
		// Follow-up beats skip beats default advance, exactly one of the
		// three fires per turn.
		if warrantsFollowup(input) {
			slog.Info("Response quality warrants a follow-up question")
			followup := s.generateFollowupQuestion(ctx, currentTech, input)
			return fmt.Sprintf("That's interesting! Let me ask a follow-up:\n\n%s", followup)
		}

		if s.isSkipResponse(ctx, input) {
			slog.Info("Classified as a skip response")
			question := s.generateTechnicalQuestion(ctx, currentTech, s.currentTechQuestionCount+1)
			return fmt.Sprintf("No problem! Let's move on to the next question:\n\n%s", question)
		}

		slog.Info("Proceeding to the next technical question")
		question := s.generateTechnicalQuestion(ctx, currentTech, s.currentTechQuestionCount+1)
		return fmt.Sprintf("Great! Next %s question:\n\n%s", currentTech, question)
	}

	slog.Info("Completed all questions for technology", "technology", currentTech)
	s.currentTechIndex++
	s.currentTechQuestionCount = 0

	if s.currentTechIndex < len(s.techStack) {
		nextTech := s.techStack[s.currentTechIndex]
		slog.Info("Moving to next technology", "technology", nextTech)
		question := s.generateTechnicalQuestion(ctx, nextTech, 1)
		return fmt.Sprintf("Excellent work on %s! Now let's move to **%s**:\n\n%s",
			currentTech, nextTech, question)
	}

	return s.completeTechnicalScreening(ctx)
}

func (s *Session) generateTechnicalQuestion(ctx context.Context, technology string, questionNumber int) string {
	level := experienceLevel(s.profile.ExperienceYears)
	slog.Info("Generating technical question",
		"technology", technology,
		"number", questionNumber,
		"level", level)

	var previousResponses []string
	if assessment, ok := s.assessments[technology]; ok {
		previousResponses = lastStrings(assessment.Responses, 2)
	}

	prompt := renderTemplate(questionPromptTemplate, map[string]any{
		"level":              level,
		"technology":         technology,
		"years":              s.profile.ExperienceYears,
		"question_number":    questionNumber,
		"questions_total":    questionsPerTech,
		"previous_responses": strings.Join(previousResponses, " | "),
	})

	question, err := s.generator.Generate(ctx, prompt, s.history)
	if err != nil {
		slog.Error("Failed to generate technical question",
			"technology", technology,
			"error", err)
		return questionFallback
	}

	return strings.TrimSpace(question)
}

func (s *Session) generateFollowupQuestion(ctx context.Context, technology, previousResponse string) string {
	slog.Info("Generating follow-up question", "technology", technology)

	prompt := renderTemplate(followupPromptTemplate, map[string]any{
		"technology":        technology,
		"previous_response": previousResponse,
	})

	followup, err := s.generator.Generate(ctx, prompt, lastTurns(s.history, 4))
	if err != nil {
		slog.Error("Failed to generate follow-up question",
			"technology", technology,
			"error", err)
		return followupFallback
	}

	return strings.TrimSpace(followup)
}

func (s *Session) completeTechnicalScreening(ctx context.Context) string {
	slog.Info("Completing technical screening and saving data")

	// The session is done either way, a failed save must not strand the
	// candidate in the screening loop.
	s.state = StateCompleted

	allResponses := s.responsesPayload()
	allResponses["tech_assessments"] = s.assessments

	if err := s.store.SaveCandidate(ctx, s.profile, allResponses); err != nil {
		slog.Error("Failed to save candidate data at completion",
			"name", s.profile.Name,
			"error", err,
			"telegram", true)
		return "Thank you for completing the comprehensive technical screening! However, there was " +
			"a technical issue saving your data. Please contact our HR team directly with your information."
	}

	return fmt.Sprintf("Outstanding work, %s! You've completed the comprehensive technical screening "+
		"covering %s.\n\n"+
		"Your responses have been saved securely and show strong technical knowledge across "+
		"multiple technologies. Our technical team will review your detailed responses and "+
		"get back to you within 2-3 business days.\n\n"+
		"Thank you for your time and thorough answers! Do you have any questions about "+
		"the role or our company?",
		s.profile.Name, strings.Join(s.techStack, ", "))
}

func experienceLevel(years int) string {
	switch {
	case years <= 2:
		return "Junior"
	case years <= 5:
		return "Mid-Level"
	case years <= 10:
		return "Senior"
	default:
		return "Principal/Staff"
	}
}
