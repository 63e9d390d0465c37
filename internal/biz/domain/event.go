package domain

import (
	"strconv"
	"time"
)

// InteractionKind classifies why an inbound message warranted a reply.
type InteractionKind string

const (
	KindDirect  InteractionKind = "direct"
	KindMention InteractionKind = "mention"
	KindReply   InteractionKind = "reply"
)

// Sender is the normalized message author: a user or a channel posting on
// its own behalf. Resolution happens once at ingestion so nothing downstream
// has to probe for the two shapes.
type Sender struct {
	ID        int64
	Name      string
	IsChannel bool
}

// StringID returns the sender id in the form used as the ledger key.
func (s Sender) StringID() string {
	return strconv.FormatInt(s.ID, 10)
}

// DisplayName returns a human-readable name, falling back to the id.
func (s Sender) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return "ID:" + s.StringID()
}

// InboundMessage is a raw normalized event from the listener plane.
type InboundMessage struct {
	MessageID     int
	ChatID        int64
	ChatIsPrivate bool
	Sender        *Sender // nil for service notifications
	Text          string
	MentionsSelf  bool
	ReplyToSender int64 // author id of the replied-to message, 0 if none
	OriginLink    string
	Time          time.Time
}

// ClassifiedEvent is the ephemeral result of relevance classification,
// constructed once per relevant message and discarded when the pipeline
// finishes.
type ClassifiedEvent struct {
	SenderID    string
	DisplayName string
	ChatID      int64
	MessageID   int
	Text        string
	OriginLink  string
	Kind        InteractionKind
}
