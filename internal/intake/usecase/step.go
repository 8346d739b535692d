package usecase

import (
	"context"
	"fmt"

	"university-assistant/internal/intake"
	"university-assistant/internal/intake/heuristic"
)

// step applies one message to st and returns the reply. The caller holds the session lock.
func (uc *implUseCase) step(ctx context.Context, st *intake.State, message string) string {
	reply := uc.nextReply(ctx, st, message)
	st.LastBotMessage = reply
	return reply
}

func (uc *implUseCase) nextReply(ctx context.Context, st *intake.State, message string) string {
	start := heuristic.IsStart(message)
	greeting := heuristic.IsGreeting(message)

	// 1. Greeting or explicit start
	if start || (greeting && !st.HasAnySlot()) {
		return msgIntro
	}

	// 2. Name and year are picked up whenever they appear
	if st.StudentName == "" {
		if name, ok := heuristic.ExtractName(message); ok {
			st.StudentName = name
		}
	}
	if st.AcademicYear == "" {
		if year, ok := heuristic.ExtractYear(message); ok {
			st.AcademicYear = year
		}
	}

	// 3. Query capture
	if st.StudentQuery == "" && !greeting {
		if query, ok := captureQuery(message); ok {
			st.StudentQuery = query
			uc.l.Infof(ctx, "internal.intake.usecase.step: session=%s captured query", st.SessionID)
		}
	}

	// 4. Ask for the first missing slot
	switch {
	case st.StudentName == "":
		return msgAskName
	case st.AcademicYear == "":
		return fmt.Sprintf(msgAskYear, st.StudentName, yearChoices)
	case st.StudentQuery == "":
		return fmt.Sprintf(msgAskQuery, st.StudentName)
	}

	// 5. Routing
	if st.RoutedUnit == "" {
		uc.route(ctx, st)
	}

	// 6. Completion
	if st.IsComplete() {
		if heuristic.IsGreeting(st.StudentQuery) {
			return msgAskFullQuery
		}
		if st.Submitted {
			return msgAlreadySubmitted
		}
		uc.submit(ctx, *st)
		st.Submitted = true
		return fmt.Sprintf(msgSubmitted, st.StudentName, st.RoutedUnit.Label())
	}

	// 7. Fallback
	return msgMoreDetails
}

// captureQuery decides whether message carries the student's query.
// A prefixed message is taken as-is after the prefix; otherwise name or year
// statements are skipped and the text must look like a real question.
func captureQuery(message string) (string, bool) {
	if heuristic.HasQueryPrefix(message) {
		if q := heuristic.StripQueryPrefix(message); q != "" {
			return q, true
		}
		return "", false
	}
	if _, ok := heuristic.ExtractName(message); ok {
		return "", false
	}
	if _, ok := heuristic.ExtractYear(message); ok {
		return "", false
	}
	if heuristic.LooksLikeQuery(message) {
		return message, true
	}
	return "", false
}
