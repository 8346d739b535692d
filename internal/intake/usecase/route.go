package usecase

import (
	"context"
	"errors"

	"university-assistant/internal/intake"
	"university-assistant/internal/intake/heuristic"
)

// route sets the routed unit, and the tone when a classifier answers.
// Any classifier failure falls back to keyword routing without a tone.
func (uc *implUseCase) route(ctx context.Context, st *intake.State) {
	if uc.classifier != nil {
		c, err := uc.classifier.Classify(ctx, st.StudentQuery)
		switch {
		case err == nil && c.Unit.Valid():
			st.RoutedUnit = c.Unit
			if c.Tone.Valid() {
				st.Tone = c.Tone
			}
			uc.l.Infof(ctx, "internal.intake.usecase.route: session=%s classified unit=%s tone=%s", st.SessionID, st.RoutedUnit, st.Tone)
			return
		case err == nil:
			uc.l.Warnf(ctx, "internal.intake.usecase.route: session=%s classifier returned unknown unit %q", st.SessionID, c.Unit)
		case errors.Is(err, intake.ErrClassifierUnavailable):
			uc.l.Debugf(ctx, "internal.intake.usecase.route: classifier disabled")
		default:
			uc.l.Warnf(ctx, "internal.intake.usecase.route: session=%s classifier failed: %v", st.SessionID, err)
		}
	}

	st.RoutedUnit = heuristic.RouteUnit(st.StudentQuery)
	uc.l.Infof(ctx, "internal.intake.usecase.route: session=%s routed unit=%s", st.SessionID, st.RoutedUnit)
}
