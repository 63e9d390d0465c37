package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/afklabs/afk-responder/internal/biz/domain"
	"github.com/afklabs/afk-responder/internal/biz/usecase"
	"github.com/afklabs/afk-responder/internal/locale"
)

const selfID int64 = 1000

// Mock implementations

type memSettingsRepo struct {
	mu     sync.Mutex
	stored *domain.Settings
}

func (m *memSettingsRepo) Load(ctx context.Context) (*domain.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stored == nil {
		return nil, nil
	}
	return m.stored.Clone(), nil
}

func (m *memSettingsRepo) Save(ctx context.Context, s *domain.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stored = s.Clone()
	return nil
}

func (m *memSettingsRepo) Close() error { return nil }

type mockResponder struct {
	mu      sync.Mutex
	reply   string
	err     error
	calls   int
	prompts []string
}

func (m *mockResponder) Generate(ctx context.Context, model, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

type mockMessenger struct {
	mu    sync.Mutex
	err   error
	calls int
	texts []string
	chats []int64
	repl  []int
}

func (m *mockMessenger) SendReply(ctx context.Context, chatID int64, replyToMessageID int, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.chats = append(m.chats, chatID)
	m.repl = append(m.repl, replyToMessageID)
	m.texts = append(m.texts, text)
	return m.err
}

type mockNotifier struct {
	mu    sync.Mutex
	calls int
	texts []string
}

func (m *mockNotifier) NotifyAdmin(ctx context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.texts = append(m.texts, text)
	return nil
}

type fixture struct {
	pipeline  *Pipeline
	manager   *usecase.SettingsManager
	responder *mockResponder
	messenger *mockMessenger
	notifier  *mockNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	manager := usecase.NewSettingsManager(&memSettingsRepo{}, zap.NewNop())
	require.NoError(t, manager.Load(context.Background()))

	locales := locale.NewResolver()
	responder := &mockResponder{reply: "I'm away, back soon"}
	messenger := &mockMessenger{}
	notifier := &mockNotifier{}

	p := NewPipeline(
		manager,
		usecase.NewClassifierUsecase(selfID, usecase.ClassifierOptions{}),
		usecase.NewPromptUsecase(locales),
		responder, messenger, notifier,
		locales, zap.NewNop(), time.Second,
	)
	return &fixture{pipeline: p, manager: manager, responder: responder, messenger: messenger, notifier: notifier}
}

func directMessage(senderID int64, text string) *domain.InboundMessage {
	return &domain.InboundMessage{
		MessageID:     7,
		ChatID:        senderID,
		ChatIsPrivate: true,
		Sender:        &domain.Sender{ID: senderID, Name: "Alice"},
		Text:          text,
		Time:          time.Now(),
	}
}

func (f *fixture) listen(t *testing.T) {
	t.Helper()
	f.manager.Update(context.Background(), func(s *domain.Settings) { s.IsListening = true })
}

func TestPipelineListeningOffHasNoEffects(t *testing.T) {
	f := newFixture(t)

	outcome := f.pipeline.Handle(context.Background(), directMessage(42, "hi"))

	assert.Equal(t, OutcomeDiscarded, outcome)
	assert.Equal(t, 0, f.responder.calls)
	assert.Equal(t, 0, f.messenger.calls)
	assert.Empty(t, f.manager.Snapshot().Ledger)
}

func TestPipelineDirectMessageEndToEnd(t *testing.T) {
	f := newFixture(t)
	f.listen(t)

	outcome := f.pipeline.Handle(context.Background(), directMessage(42, "hi"))

	assert.Equal(t, OutcomeSent, outcome)
	require.Equal(t, 1, f.responder.calls)
	assert.Contains(t, f.responder.prompts[0], "hi")

	ledger := f.manager.Snapshot().Ledger
	require.Contains(t, ledger, "42")
	assert.Equal(t, string(domain.KindDirect), ledger["42"].Kind)

	require.Equal(t, 1, f.messenger.calls)
	assert.Equal(t, int64(42), f.messenger.chats[0])
	assert.Equal(t, 7, f.messenger.repl[0])
}

func TestPipelineAppendsSuffixWithBlankLine(t *testing.T) {
	f := newFixture(t)
	f.listen(t)
	f.manager.Update(context.Background(), func(s *domain.Settings) {
		s.Persona.Suffix = "- AFK"
	})

	f.pipeline.Handle(context.Background(), directMessage(42, "hi"))

	require.Len(t, f.messenger.texts, 1)
	assert.Equal(t, "I'm away, back soon\n\n- AFK", f.messenger.texts[0])
}

func TestPipelineEmptySuffixSendsReplyVerbatim(t *testing.T) {
	f := newFixture(t)
	f.listen(t)
	f.manager.Update(context.Background(), func(s *domain.Settings) {
		s.Persona.Suffix = ""
	})

	f.pipeline.Handle(context.Background(), directMessage(42, "hi"))

	require.Len(t, f.messenger.texts, 1)
	assert.Equal(t, "I'm away, back soon", f.messenger.texts[0])
}

func TestPipelineAIFailureNotifiesAdminOnce(t *testing.T) {
	f := newFixture(t)
	f.listen(t)
	f.responder.err = context.DeadlineExceeded

	outcome := f.pipeline.Handle(context.Background(), directMessage(42, "hi"))

	assert.Equal(t, OutcomeSendFailed, outcome)
	assert.Equal(t, 1, f.notifier.calls, "exactly one admin notification")
	assert.Equal(t, 0, f.messenger.calls, "nothing is sent to the original chat")
	// The interaction is still recorded: it triggered an attempt.
	assert.Contains(t, f.manager.Snapshot().Ledger, "42")
}

func TestPipelineSendFailureNotifiesAdmin(t *testing.T) {
	f := newFixture(t)
	f.listen(t)
	f.messenger.err = errors.New("peer invalid")

	outcome := f.pipeline.Handle(context.Background(), directMessage(42, "hi"))

	assert.Equal(t, OutcomeSendFailed, outcome)
	assert.Equal(t, 1, f.notifier.calls)
}

func TestPipelineIgnoresIrrelevantGroupMessage(t *testing.T) {
	f := newFixture(t)
	f.listen(t)

	msg := &domain.InboundMessage{
		MessageID: 8,
		ChatID:    -500,
		Sender:    &domain.Sender{ID: 42, Name: "Alice"},
		Text:      "random chatter",
	}
	outcome := f.pipeline.Handle(context.Background(), msg)

	assert.Equal(t, OutcomeDiscarded, outcome)
	assert.Empty(t, f.manager.Snapshot().Ledger)
}

func TestPipelineTurningOffMidstreamStopsNextEvent(t *testing.T) {
	f := newFixture(t)
	f.listen(t)

	f.pipeline.Handle(context.Background(), directMessage(42, "hi"))
	require.Equal(t, 1, f.messenger.calls)

	// Admin turns listening off between events; also clears the ledger.
	f.manager.Update(context.Background(), func(s *domain.Settings) { s.IsListening = false })
	assert.Empty(t, f.manager.Snapshot().Ledger)

	outcome := f.pipeline.Handle(context.Background(), directMessage(43, "hello"))
	assert.Equal(t, OutcomeDiscarded, outcome)
	assert.Equal(t, 1, f.messenger.calls)
}
