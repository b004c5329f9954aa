package domain

// AdvisingContext is the student context posted to the advising service.
type AdvisingContext struct {
	Courses     []StoredCourse `json:"courses"`
	Interests   []string       `json:"interests,omitempty"`
	CurrentYear string         `json:"current_year,omitempty"`
}

// ProgramRecommendation scores one candidate program for the student.
type ProgramRecommendation struct {
	Name        string  `json:"name"`
	Feasibility float64 `json:"feasibility_score_0_100"`
	Why         string  `json:"why"`
}

// Advice is the advising service's structured response.
type Advice struct {
	RecommendedPrograms []ProgramRecommendation `json:"recommended_programs"`
	CareerPaths         []string                `json:"career_paths"`
	Pros                []string                `json:"pros"`
	Cons                []string                `json:"cons"`
	NextSteps           []string                `json:"next_steps"`
}
