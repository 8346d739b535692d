package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"university-assistant/internal/intake"
	"university-assistant/internal/intake/heuristic"
	"university-assistant/internal/intake/repository"
)

// submit hands the finished record to the storage and webhook sinks in parallel.
// Sink errors are logged and never returned; the caller marks the session submitted regardless.
func (uc *implUseCase) submit(ctx context.Context, st intake.State) {
	// Sinks outlive the request.
	ctx = context.WithoutCancel(ctx)
	rec := buildRecord(st)

	var g errgroup.Group
	g.Go(func() error {
		err := uc.records.Insert(ctx, repository.InsertRecordOptions{
			Collection: uc.collection,
			Record:     rec,
		})
		if err != nil {
			uc.l.Errorf(ctx, "internal.intake.usecase.submit: session=%s storage insert failed: %v", st.SessionID, err)
		}
		return nil
	})

	if uc.notifier != nil {
		g.Go(func() error {
			if err := uc.notifier.Post(ctx, buildWebhookPayload(rec)); err != nil {
				uc.l.Errorf(ctx, "internal.intake.usecase.submit: session=%s webhook failed: %v", st.SessionID, err)
			}
			return nil
		})
	} else {
		uc.l.Debugf(ctx, "internal.intake.usecase.submit: webhook not configured")
	}

	_ = g.Wait()
	uc.l.Infof(ctx, "internal.intake.usecase.submit: session=%s dispatched to %s", st.SessionID, rec.RoutedUnit)
}

func buildRecord(st intake.State) intake.Record {
	return intake.Record{
		StudentName:  st.StudentName,
		AcademicYear: st.AcademicYear,
		StudentQuery: heuristic.StripQueryPrefix(st.StudentQuery),
		RoutedUnit:   st.RoutedUnit,
		Tone:         st.Tone,
		Timestamp:    st.CreatedAt,
	}
}

func buildWebhookPayload(rec intake.Record) webhookPayload {
	p := webhookPayload{
		StudentName:  rec.StudentName,
		AcademicYear: string(rec.AcademicYear),
		StudentQuery: rec.StudentQuery,
		Unit:         string(rec.RoutedUnit),
	}
	if rec.Tone != "" {
		tone := string(rec.Tone)
		p.Tone = &tone
	}
	return p
}
