package intake

import (
	"sync"
	"time"
)

// Year is the closed set of academic years a student can report.
type Year string

const (
	Year12thPass Year = "12th_pass"
	Year1st      Year = "1st_year"
	Year2nd      Year = "2nd_year"
	Year3rd      Year = "3rd_year"
	Year4th      Year = "4th_year"
)

// Years lists every valid Year in the order it is offered to the student.
var Years = []Year{Year12thPass, Year1st, Year2nd, Year3rd, Year4th}

// Unit is the business unit a finished query is routed to.
type Unit string

const (
	UnitAdmissionScholarship   Unit = "admission_scholarship"
	UnitAcademicSupport        Unit = "academic_support"
	UnitStudentWelfare         Unit = "student_welfare"
	UnitCareerSkillDevelopment Unit = "career_skill_development"
)

// Units lists every valid Unit.
var Units = []Unit{UnitAdmissionScholarship, UnitAcademicSupport, UnitStudentWelfare, UnitCareerSkillDevelopment}

var unitLabels = map[Unit]string{
	UnitAdmissionScholarship:   "Admission/Scholarship Unit",
	UnitAcademicSupport:        "Academic Support Unit",
	UnitStudentWelfare:         "Student Welfare Unit",
	UnitCareerSkillDevelopment: "Career/Skill Development Unit",
}

// Valid reports whether u is one of the four routing units.
func (u Unit) Valid() bool {
	_, ok := unitLabels[u]
	return ok
}

// Label returns the human-readable unit name, or the raw key for unknown units.
func (u Unit) Label() string {
	if label, ok := unitLabels[u]; ok {
		return label
	}
	return string(u)
}

// Tone is the urgency classification supplied by an external classifier.
type Tone string

const (
	ToneUrgent Tone = "urgent"
	ToneNormal Tone = "normal"
)

// Valid reports whether t is a known tone.
func (t Tone) Valid() bool {
	return t == ToneUrgent || t == ToneNormal
}

// State is the slot-filling record of one conversation.
// StudentName, AcademicYear, StudentQuery and RoutedUnit are write-once.
type State struct {
	SessionID      string
	StudentName    string
	AcademicYear   Year
	StudentQuery   string
	RoutedUnit     Unit
	Tone           Tone
	LastBotMessage string
	CreatedAt      time.Time
	Submitted      bool
}

// NewState creates an empty State for a session.
func NewState(sessionID string, createdAt time.Time) State {
	return State{
		SessionID: sessionID,
		CreatedAt: createdAt,
	}
}

// HasAnySlot reports whether any of name, year or query is filled.
func (s State) HasAnySlot() bool {
	return s.StudentName != "" || s.AcademicYear != "" || s.StudentQuery != ""
}

// IsComplete reports whether all three slots and the routed unit are set.
func (s State) IsComplete() bool {
	return s.StudentName != "" && s.AcademicYear != "" && s.StudentQuery != "" && s.RoutedUnit != ""
}

// Session pairs a State with the lock that serializes turns on it.
// The lock is per session; it is never shared across sessions.
type Session struct {
	sync.Mutex
	State State
}

// NewSession wraps a fresh State.
func NewSession(sessionID string, createdAt time.Time) *Session {
	return &Session{State: NewState(sessionID, createdAt)}
}

// Snapshot returns a copy of the State taken under the session lock.
func (s *Session) Snapshot() State {
	s.Lock()
	defer s.Unlock()
	return s.State
}

// Record is the canonical payload handed to the storage and webhook sinks.
type Record struct {
	StudentName  string
	AcademicYear Year
	StudentQuery string
	RoutedUnit   Unit
	Tone         Tone
	Timestamp    time.Time
}

// Classification is what a Classifier returns for a query.
type Classification struct {
	Unit Unit
	Tone Tone
}

// --- UseCase Inputs ---

type HandleInput struct {
	SessionID string // empty for a new conversation
	Message   string
}

// --- UseCase Outputs ---

type HandleOutput struct {
	Reply     string
	SessionID string
}

type DetailOutput struct {
	State State
}
