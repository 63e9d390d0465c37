package usecase

import (
	"github.com/afklabs/afk-responder/internal/biz/domain"
)

// ClassifierOptions tune the relevance classifier.
type ClassifierOptions struct {
	// ReplyBeforeMention flips the tie-break when a group message both
	// mentions the own account and replies to one of its messages.
	// Default is mention-first.
	ReplyBeforeMention bool
}

// ClassifierUsecase decides whether an inbound event warrants an
// autoresponse and classifies the interaction kind. Pure, no side effects.
type ClassifierUsecase struct {
	selfID int64
	opts   ClassifierOptions
}

// NewClassifierUsecase creates a classifier bound to the own account id.
func NewClassifierUsecase(selfID int64, opts ClassifierOptions) *ClassifierUsecase {
	return &ClassifierUsecase{selfID: selfID, opts: opts}
}

// Classify returns the classified event, or nil when the message is not
// relevant. A nil result is a normal outcome, not an error. Rules apply in
// order, first match wins:
//  1. listening disabled -> nil
//  2. own message or service notification -> nil
//  3. private chat from someone else -> direct
//  4. mentions the own account -> mention
//  5. reply to a message authored by the own account -> reply
//  6. otherwise -> nil
func (uc *ClassifierUsecase) Classify(msg *domain.InboundMessage, listening bool) *domain.ClassifiedEvent {
	if !listening {
		return nil
	}
	if msg.Sender == nil || msg.Sender.ID == uc.selfID {
		return nil
	}

	var kind domain.InteractionKind
	switch {
	case msg.ChatIsPrivate:
		kind = domain.KindDirect
	case uc.opts.ReplyBeforeMention && msg.ReplyToSender == uc.selfID:
		kind = domain.KindReply
	case msg.MentionsSelf:
		kind = domain.KindMention
	case msg.ReplyToSender == uc.selfID:
		kind = domain.KindReply
	default:
		return nil
	}

	return &domain.ClassifiedEvent{
		SenderID:    msg.Sender.StringID(),
		DisplayName: msg.Sender.DisplayName(),
		ChatID:      msg.ChatID,
		MessageID:   msg.MessageID,
		Text:        msg.Text,
		OriginLink:  msg.OriginLink,
		Kind:        kind,
	}
}
