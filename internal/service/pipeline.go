// Package service orchestrates the autoresponse pipeline: classify an
// inbound event, update the interaction ledger, synthesize the persona
// prompt, call the AI collaborator, and send the reply.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/afklabs/afk-responder/internal/biz/domain"
	"github.com/afklabs/afk-responder/internal/biz/repo"
	"github.com/afklabs/afk-responder/internal/biz/usecase"
	"github.com/afklabs/afk-responder/internal/locale"
)

// Outcome is the terminal state of one pipeline run.
type Outcome string

const (
	OutcomeDiscarded  Outcome = "discarded"
	OutcomeSent       Outcome = "sent"
	OutcomeSendFailed Outcome = "send-failed"
)

// Pipeline processes inbound events end to end. Every failure is absorbed
// here: nothing that happens inside a run may terminate the listener.
type Pipeline struct {
	settings   *usecase.SettingsManager
	classifier *usecase.ClassifierUsecase
	prompts    *usecase.PromptUsecase
	responder  repo.ResponderRepo
	messenger  repo.MessengerRepo
	notifier   repo.NotifierRepo
	locales    *locale.Resolver
	logger     *zap.Logger
	aiTimeout  time.Duration
}

// NewPipeline wires the autoresponse pipeline.
func NewPipeline(
	settings *usecase.SettingsManager,
	classifier *usecase.ClassifierUsecase,
	prompts *usecase.PromptUsecase,
	responder repo.ResponderRepo,
	messenger repo.MessengerRepo,
	notifier repo.NotifierRepo,
	locales *locale.Resolver,
	logger *zap.Logger,
	aiTimeout time.Duration,
) *Pipeline {
	if aiTimeout <= 0 {
		aiTimeout = 30 * time.Second
	}
	return &Pipeline{
		settings:   settings,
		classifier: classifier,
		prompts:    prompts,
		responder:  responder,
		messenger:  messenger,
		notifier:   notifier,
		locales:    locales,
		logger:     logger.Named("pipeline"),
		aiTimeout:  aiTimeout,
	}
}

// Handle runs one inbound event through the pipeline and returns its
// terminal outcome. The settings snapshot is taken fresh per event, never
// cached across events.
func (p *Pipeline) Handle(ctx context.Context, msg *domain.InboundMessage) Outcome {
	logger := p.logger.With(zap.String("trace_id", uuid.NewString()))

	snapshot := p.settings.Snapshot()

	ev := p.classifier.Classify(msg, snapshot.IsListening)
	if ev == nil {
		logger.Debug("event not relevant",
			zap.Int64("chat_id", msg.ChatID),
			zap.Int("message_id", msg.MessageID))
		return OutcomeDiscarded
	}

	logger = logger.With(
		zap.String("sender_id", ev.SenderID),
		zap.String("kind", string(ev.Kind)),
		zap.Int64("chat_id", ev.ChatID),
	)
	logger.Info("relevant message", zap.String("sender", ev.DisplayName))

	// Record the interaction before calling out; the ledger reflects who
	// triggered an autoresponse attempt, delivered or not.
	current := p.settings.Update(ctx, func(s *domain.Settings) {
		s.RecordInteraction(ev.SenderID, ev.DisplayName, ev.OriginLink, string(ev.Kind), time.Now())
	})

	prompt := p.prompts.Synthesize(current.Persona, current.Language, ev)

	aiCtx, cancel := context.WithTimeout(ctx, p.aiTimeout)
	reply, err := p.responder.Generate(aiCtx, current.ModelName, prompt)
	cancel()
	if err != nil {
		logger.Error("ai call failed", zap.Error(err))
		p.notifyAdmin(ctx, current.Language, "error_ai", err)
		return OutcomeSendFailed
	}

	if current.Persona.Suffix != "" {
		reply = reply + "\n\n" + current.Persona.Suffix
	}

	if err := p.messenger.SendReply(ctx, ev.ChatID, ev.MessageID, reply); err != nil {
		logger.Error("send reply failed", zap.Error(err))
		p.notifyAdmin(ctx, current.Language, "error_sending", err)
		return OutcomeSendFailed
	}

	logger.Info("autoresponse sent", zap.Int("message_id", ev.MessageID))
	return OutcomeSent
}

// notifyAdmin emits one out-of-band failure notice. A notification failure
// is only logged; there is nothing further to escalate to.
func (p *Pipeline) notifyAdmin(ctx context.Context, lang, key string, cause error) {
	text := p.locales.Get(lang, key, locale.Args{"error": cause.Error()})
	if err := p.notifier.NotifyAdmin(ctx, text); err != nil {
		p.logger.Error("admin notification failed", zap.Error(err))
	}
}
