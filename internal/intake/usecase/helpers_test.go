package usecase

import (
	"context"
	"errors"
	"sync"

	"university-assistant/internal/intake"
	"university-assistant/internal/intake/repository"
	"university-assistant/internal/intake/repository/memory"
	pkgLog "university-assistant/pkg/log"
)

type mockRecords struct {
	mu      sync.Mutex
	inserts []repository.InsertRecordOptions
	err     error
}

func (m *mockRecords) Insert(ctx context.Context, opt repository.InsertRecordOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inserts = append(m.inserts, opt)
	return m.err
}

func (m *mockRecords) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.inserts)
}

type mockNotifier struct {
	mu       sync.Mutex
	payloads []any
	err      error
}

func (m *mockNotifier) Post(ctx context.Context, payload any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payloads = append(m.payloads, payload)
	return m.err
}

func (m *mockNotifier) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.payloads)
}

type mockClassifier struct {
	result intake.Classification
	err    error
	calls  int
}

func (m *mockClassifier) Classify(ctx context.Context, text string) (intake.Classification, error) {
	m.calls++
	return m.result, m.err
}

var errSinkDown = errors.New("sink down")

type fixture struct {
	uc       *implUseCase
	records  *mockRecords
	notifier *mockNotifier
}

func newFixture(classifier intake.Classifier) fixture {
	records := &mockRecords{}
	notifier := &mockNotifier{}
	uc := New(pkgLog.NewNop(), memory.New(pkgLog.NewNop()), records, notifier, classifier, repository.DefaultCollection)
	return fixture{uc: uc, records: records, notifier: notifier}
}

// say sends msg on sessionID and returns the reply and resolved session id.
func (f fixture) say(sessionID, msg string) (string, string) {
	out, err := f.uc.Handle(context.Background(), intake.HandleInput{SessionID: sessionID, Message: msg})
	if err != nil {
		panic(err)
	}
	return out.Reply, out.SessionID
}

func (f fixture) state(sessionID string) intake.State {
	out, err := f.uc.Detail(context.Background(), sessionID)
	if err != nil {
		panic(err)
	}
	return out.State
}
