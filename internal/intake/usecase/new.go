package usecase

import (
	"university-assistant/internal/intake"
	"university-assistant/internal/intake/repository"
	pkgLog "university-assistant/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	sessions   repository.SessionRepository
	records    repository.RecordRepository
	notifier   intake.Notifier
	classifier intake.Classifier
	collection string
}

// New creates a new intake UseCase instance.
// notifier and classifier may be nil; routing then uses keywords only and no webhook is sent.
func New(
	l pkgLog.Logger,
	sessions repository.SessionRepository,
	records repository.RecordRepository,
	notifier intake.Notifier,
	classifier intake.Classifier,
	collection string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		sessions:   sessions,
		records:    records,
		notifier:   notifier,
		classifier: classifier,
		collection: collection,
	}
}
