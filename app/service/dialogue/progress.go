package dialogue

// Weights of the two screening phases in the completion percentage: profile
// collection covers the first 60%, technical questions the remaining 40%.
const (
	profilePhaseWeight   = 60
	technicalPhaseWeight = 40
	profileFieldCount    = 7
)

// completionPercentage derives progress from the current state and collected
// data. It is recomputed on every call and never cached. Callers hold the
// session lock.
func (s *Session) completionPercentage() int {
	switch s.state {
	case StateCompleted:
		return 100

	case StateTechnicalScreening:
		if len(s.techStack) == 0 {
			return profilePhaseWeight
		}

		totalQuestions := len(s.techStack) * questionsPerTech
		answeredQuestions := len(s.technicalResponses)

		return profilePhaseWeight + answeredQuestions*technicalPhaseWeight/totalQuestions

	default:
		return s.completedProfileFields() * profilePhaseWeight / profileFieldCount
	}
}

func (s *Session) completedProfileFields() int {
	count := 0

	for _, filled := range []bool{
		s.profile.Name != "",
		s.profile.PhoneNumber != "",
		s.profile.Email != "",
		s.profile.CurrentLocation != "",
		s.profile.ExperienceYears > 0,
		s.profile.DesiredPositions != "",
		s.profile.TechStack != "",
	} {
		if filled {
			count++
		}
	}

	return count
}

// TechnicalProgress reports the per-technology question loop position for
// the presentation layer.
func (s *Session) TechnicalProgress() TechProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.techStack) == 0 {
		return TechProgress{
			Technologies: []string{},
			Progress:     map[string]TechProgressEntry{},
		}
	}

	progress := make(map[string]TechProgressEntry, len(s.techStack))
	for i, tech := range s.techStack {
		completed := 0
		if assessment, ok := s.assessments[tech]; ok {
			completed = len(assessment.Responses)
		}

		progress[tech] = TechProgressEntry{
			Completed:   completed,
			Total:       questionsPerTech,
			IsCurrent:   i == s.currentTechIndex,
			IsCompleted: completed >= questionsPerTech,
		}
	}

	currentTech := ""
	if s.currentTechIndex < len(s.techStack) {
		currentTech = s.techStack[s.currentTechIndex]
	}

	return TechProgress{
		Technologies:     s.techStack,
		CurrentTech:      currentTech,
		CurrentTechIndex: s.currentTechIndex,
		Progress:         progress,
	}
}
