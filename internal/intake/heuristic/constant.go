package heuristic

import "university-assistant/internal/intake"

// StartSentinel is the message a client sends to open a conversation.
const StartSentinel = "__start__"

var greetings = map[string]struct{}{
	"hi":             {},
	"hello":          {},
	"hey":            {},
	"hii":            {},
	"hiii":           {},
	"good morning":   {},
	"good afternoon": {},
	"good evening":   {},
}

// Messages this short (single token) are treated as noise or an acknowledgement.
const maxNoiseTokenLen = 3

// Messages longer than this count as a real question.
const minQueryLen = 10

type yearToken struct {
	token string
	year  intake.Year
}

// yearTable is scanned in order; the first token found in the text wins.
var yearTable = []yearToken{
	{"12", intake.Year12thPass},
	{"12th", intake.Year12thPass},
	{"12th_pass", intake.Year12thPass},
	{"1", intake.Year1st},
	{"1st", intake.Year1st},
	{"first", intake.Year1st},
	{"1st_year", intake.Year1st},
	{"2", intake.Year2nd},
	{"2nd", intake.Year2nd},
	{"second", intake.Year2nd},
	{"2nd_year", intake.Year2nd},
	{"3", intake.Year3rd},
	{"3rd", intake.Year3rd},
	{"third", intake.Year3rd},
	{"3rd_year", intake.Year3rd},
	{"4", intake.Year4th},
	{"4th", intake.Year4th},
	{"fourth", intake.Year4th},
	{"4th_year", intake.Year4th},
}

type unitKeyword struct {
	keyword string
	unit    intake.Unit
}

// unitTable is scanned in order; the first keyword contained in the text wins.
var unitTable = []unitKeyword{
	{"admission", intake.UnitAdmissionScholarship},
	{"admissions", intake.UnitAdmissionScholarship},
	{"scholarship", intake.UnitAdmissionScholarship},
	{"fees", intake.UnitAdmissionScholarship},
	{"eligibility", intake.UnitAdmissionScholarship},
	{"exam", intake.UnitAcademicSupport},
	{"exams", intake.UnitAcademicSupport},
	{"subject", intake.UnitAcademicSupport},
	{"attendance", intake.UnitAcademicSupport},
	{"grading", intake.UnitAcademicSupport},
	{"books", intake.UnitAcademicSupport},
	{"hostel", intake.UnitStudentWelfare},
	{"grievance", intake.UnitStudentWelfare},
	{"grievances", intake.UnitStudentWelfare},
	{"wellbeing", intake.UnitStudentWelfare},
	{"well-being", intake.UnitStudentWelfare},
	{"stressed", intake.UnitStudentWelfare},
	{"unwell", intake.UnitStudentWelfare},
	{"internship", intake.UnitCareerSkillDevelopment},
	{"placement", intake.UnitCareerSkillDevelopment},
	{"skills", intake.UnitCareerSkillDevelopment},
	{"resume", intake.UnitCareerSkillDevelopment},
}

// DefaultUnit is used when no keyword matches.
const DefaultUnit = intake.UnitAcademicSupport

// queryKeywords mark a short message as a real question.
var queryKeywords = []string{
	"scholarship", "admission", "exam", "exams", "attendance", "grading", "hostel",
	"grievance", "grievances", "wellbeing", "internship", "placement", "skills",
	"fees", "subject", "fee",
}

// urgentWords mark free-form classifier text as urgent.
var urgentWords = []string{"urgent", "emergency", "immediately", "asap"}
