package model

// CandidateProfile is everything collected from a candidate before the
// technical screening starts. Fields are filled once, in interview order.
type CandidateProfile struct {
	Name             string `json:"name"`
	PhoneNumber      string `json:"phone_number"`
	Email            string `json:"email"`
	CurrentLocation  string `json:"current_location"`
	ExperienceYears  int    `json:"experience_years"`
	DesiredPositions string `json:"desired_positions"`
	TechStack        string `json:"tech_stack"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one conversation turn, passed back to the model as context.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
