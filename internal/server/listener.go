// Package server runs the two event loops: the passive listener on the
// owner's traffic (data plane) and the admin control bot (control plane).
package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/afklabs/afk-responder/internal/biz/domain"
	"github.com/afklabs/afk-responder/internal/service"
	"github.com/afklabs/afk-responder/telegram"
)

// chatQueueSize bounds each per-chat worker queue. Overflow drops the event
// rather than blocking the poll loop.
const chatQueueSize = 16

// Listener consumes inbound messages and feeds them to the autoresponse
// pipeline. Events for the same chat are handled in arrival order by a
// dedicated worker; chats proceed independently.
type Listener struct {
	client   *telegram.Client
	pipeline *service.Pipeline
	logger   *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc

	workersMu sync.Mutex
	workers   map[int64]chan *domain.InboundMessage

	// Message deduplication cache
	seenMu sync.Mutex
	seen   map[string]time.Time
}

// NewListener creates the data-plane server.
func NewListener(client *telegram.Client, pipeline *service.Pipeline, logger *zap.Logger) *Listener {
	ctx, cancel := context.WithCancel(context.Background())
	return &Listener{
		client:   client,
		pipeline: pipeline,
		logger:   logger.Named("listener"),
		ctx:      ctx,
		cancel:   cancel,
		workers:  make(map[int64]chan *domain.InboundMessage),
		seen:     make(map[string]time.Time),
	}
}

// Start begins polling and blocks until Stop is called.
func (l *Listener) Start() error {
	l.client.OnMessage(l.handle)
	l.logger.Info("listener starting",
		zap.Int64("self_id", l.client.SelfID()),
		zap.String("username", l.client.SelfUsername()))
	return l.client.Start()
}

// Stop ends polling and releases the workers. In-flight pipeline runs are
// not preempted beyond context cancellation.
func (l *Listener) Stop() {
	l.client.Stop()
	l.cancel()
}

func (l *Listener) handle(m *telegram.Message) {
	key := fmt.Sprintf("%d:%d", m.ChatID, m.MessageID)
	if l.isSeen(key) {
		return
	}
	l.markSeen(key)

	msg := toDomain(m)
	ch := l.chatQueue(m.ChatID)
	select {
	case ch <- msg:
	default:
		l.logger.Warn("chat queue full, dropping event",
			zap.Int64("chat_id", m.ChatID),
			zap.Int("message_id", m.MessageID))
	}
}

// chatQueue returns the worker queue for a chat, starting the worker on
// first use.
func (l *Listener) chatQueue(chatID int64) chan *domain.InboundMessage {
	l.workersMu.Lock()
	defer l.workersMu.Unlock()

	ch, ok := l.workers[chatID]
	if !ok {
		ch = make(chan *domain.InboundMessage, chatQueueSize)
		l.workers[chatID] = ch
		go l.runWorker(ch)
	}
	return ch
}

func (l *Listener) runWorker(ch <-chan *domain.InboundMessage) {
	for {
		select {
		case <-l.ctx.Done():
			return
		case msg := <-ch:
			l.pipeline.Handle(l.ctx, msg)
		}
	}
}

func (l *Listener) isSeen(key string) bool {
	l.seenMu.Lock()
	defer l.seenMu.Unlock()
	_, ok := l.seen[key]
	return ok
}

func (l *Listener) markSeen(key string) {
	l.seenMu.Lock()
	defer l.seenMu.Unlock()
	l.seen[key] = time.Now()

	// Expire old entries while holding the lock anyway.
	cutoff := time.Now().Add(-5 * time.Minute)
	for k, ts := range l.seen {
		if ts.Before(cutoff) {
			delete(l.seen, k)
		}
	}
}

func toDomain(m *telegram.Message) *domain.InboundMessage {
	msg := &domain.InboundMessage{
		MessageID:     m.MessageID,
		ChatID:        m.ChatID,
		ChatIsPrivate: m.ChatIsPrivate,
		Text:          m.Text,
		MentionsSelf:  m.MentionsSelf,
		ReplyToSender: m.ReplyToSender,
		OriginLink:    m.OriginLink,
		Time:          m.Time,
	}
	if m.SenderID != 0 {
		msg.Sender = &domain.Sender{
			ID:        m.SenderID,
			Name:      m.SenderName,
			IsChannel: m.SenderIsChan,
		}
	}
	return msg
}
