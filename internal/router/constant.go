package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Router prompts
const (
	PromptClassifierSystem = `You are a concise classifier. Map the student query to one of: ` +
		`admission_scholarship, academic_support, student_welfare, career_skill_development. ` +
		`Also determine the tone: 'urgent' if the student is asking for immediate help or indicates an emergency, otherwise 'normal'. ` +
		`Respond only with a single-line JSON object with keys 'unit' and 'tone', e.g. {"unit": "academic_support", "tone": "normal"}.`

	PromptStudentQuery = "Student query: %s"
)

// Router configuration
const (
	RouterTemperature = 0.1
)

// Error messages
const (
	ErrMsgLLMCallFailed    = "LLM call failed"
	ErrMsgEmptyResponse    = "empty LLM response"
	ErrMsgNoClassification = "no unit found in LLM response"
)
