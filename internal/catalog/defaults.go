package catalog

// Category display names used by the built-in set.
const (
	catMotivation = "Personal & Motivation"
	catService    = "Customer Service"
	catTeamwork   = "Teamwork & Reliability"
	catScenarios  = "Workplace Scenarios"
)

// DefaultQuestions is the built-in catalog used when no questions file is
// available. It covers every category in both response modes so a session
// can always be assembled.
func DefaultQuestions() []Question {
	return []Question{
		{ID: "A1", Category: "A", CategoryName: catMotivation, Mode: ModeEither,
			Prompt: "Tell us about yourself and what interests you about working in retail.",
			Tips:   "Keep it professional. Mention your interests and why retail appeals to you."},
		{ID: "A2", Category: "A", CategoryName: catMotivation, Mode: ModeEither,
			Prompt: "Why do you want to work for this company in particular?",
			Tips:   "Show you know something about the company. Connect it to your own goals."},
		{ID: "A3", Category: "A", CategoryName: catMotivation, Mode: ModeTyped,
			Prompt: "What are you hoping to learn from your first job?",
			Tips:   "Think beyond money: skills, responsibility, working with people."},
		{ID: "B1", Category: "B", CategoryName: catService, Mode: ModeEither,
			Prompt: "What does excellent customer service mean to you?",
			Tips:   "Think about making customers feel valued and solving their problems."},
		{ID: "B2", Category: "B", CategoryName: catService, Mode: ModeEither,
			Prompt: "A customer can't find the product they're looking for. What do you do?",
			Tips:   "Walk them to the aisle, check stock, offer an alternative. Never just point."},
		{ID: "B3", Category: "B", CategoryName: catService, Mode: ModeTimed,
			Prompt: "How would you handle an upset customer at the register?",
			Tips:   "Stay calm, listen first, apologise for the inconvenience, then fix what you can."},
		{ID: "C1", Category: "C", CategoryName: catTeamwork, Mode: ModeEither,
			Prompt: "Describe a time you worked as part of a team. What was your role?",
			Tips:   "School projects and sports count. Focus on what you contributed."},
		{ID: "C2", Category: "C", CategoryName: catTeamwork, Mode: ModeEither,
			Prompt: "How do you make sure you're reliable, on time and prepared?",
			Tips:   "Give concrete habits: alarms, checking rosters, planning travel time."},
		{ID: "D1", Category: "D", CategoryName: catScenarios, Mode: ModeEither,
			Prompt: "You notice a spill in an aisle while helping a customer. What do you do?",
			Tips:   "Safety first: stay with the hazard or mark it, and get it dealt with quickly."},
		{ID: "D2", Category: "D", CategoryName: catScenarios, Mode: ModeEither,
			Prompt: "A teammate asks you to cover a task you haven't been trained on. How do you respond?",
			Tips:   "It's fine to say you'd check with a supervisor rather than guess."},
	}
}
