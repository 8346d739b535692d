package usecase

import (
	"strings"

	"university-assistant/internal/intake"
)

const (
	msgIntro            = "Hi, My name is iMu. I am here to help you what to do according to your query. Could you please tell me your full name?"
	msgAskName          = "Hi! Could you please tell me your full name?"
	msgAskYear          = "Thanks, %s. Which education year are you in? (%s)"
	msgAskQuery         = "Thanks, %s. Could you please briefly describe your question or issue? (You may start with 'My query is', 'Query is', or 'Question is'. This is optional.)"
	msgAskFullQuery     = "Could you please write the full question or issue you'd like help with?"
	msgSubmitted        = "Thank you %s. Your query has been submitted to the %s. They will reach out to you."
	msgAlreadySubmitted = "Your query is already submitted."
	msgMoreDetails      = "Can you provide more details?"
)

var yearChoices = func() string {
	parts := make([]string, len(intake.Years))
	for i, y := range intake.Years {
		parts[i] = string(y)
	}
	return strings.Join(parts, " / ")
}()
