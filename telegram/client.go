// Package telegram wraps the Telegram Bot API for the data plane: long-poll
// updates normalized into messages, plus reply and plain sends.
package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf16"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Message is a normalized inbound Telegram message.
type Message struct {
	MessageID     int
	ChatID        int64
	ChatIsPrivate bool
	SenderID      int64
	SenderName    string
	SenderIsChan  bool
	Text          string
	MentionsSelf  bool
	ReplyToSender int64
	OriginLink    string
	Time          time.Time
}

// Client wraps one bot connection.
type Client struct {
	bot       *tgbotapi.BotAPI
	onMessage func(*Message)
	cancel    context.CancelFunc
}

// NewClient connects and authorizes the bot.
func NewClient(token string, debug bool) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth failed: %w", err)
	}
	bot.Debug = debug
	return &Client{bot: bot}, nil
}

// SelfID returns the authorized account id.
func (c *Client) SelfID() int64 {
	return c.bot.Self.ID
}

// SelfUsername returns the authorized account username, without the @.
func (c *Client) SelfUsername() string {
	return c.bot.Self.UserName
}

// OnMessage registers the inbound message handler.
func (c *Client) OnMessage(handler func(*Message)) {
	c.onMessage = handler
}

// Start begins long polling and blocks until Stop is called.
func (c *Client) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := c.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			c.bot.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			if c.onMessage != nil {
				c.onMessage(c.normalize(update.Message))
			}
		}
	}
}

// Stop ends the polling loop.
func (c *Client) Stop() {
	if c.cancel != nil {
		c.cancel()
	}
}

// SendReply sends text as a reply to the given message.
func (c *Client) SendReply(ctx context.Context, chatID int64, replyToMessageID int, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyToMessageID = replyToMessageID
	if _, err := c.bot.Send(msg); err != nil {
		return fmt.Errorf("send reply failed: %w", err)
	}
	return nil
}

// SendText sends a plain message.
func (c *Client) SendText(ctx context.Context, chatID int64, text string) error {
	if _, err := c.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("send message failed: %w", err)
	}
	return nil
}

// normalize flattens a raw update into a Message, resolving the
// user-or-channel sender and the mention/reply context up front.
func (c *Client) normalize(m *tgbotapi.Message) *Message {
	msg := &Message{
		MessageID:     m.MessageID,
		ChatID:        m.Chat.ID,
		ChatIsPrivate: m.Chat.IsPrivate(),
		Text:          m.Text,
		MentionsSelf:  c.mentionsSelf(m),
		OriginLink:    originLink(m),
		Time:          time.Unix(int64(m.Date), 0),
	}

	switch {
	case m.From != nil:
		msg.SenderID = m.From.ID
		msg.SenderName = strings.TrimSpace(m.From.FirstName + " " + m.From.LastName)
		if msg.SenderName == "" {
			msg.SenderName = m.From.UserName
		}
	case m.SenderChat != nil:
		msg.SenderID = m.SenderChat.ID
		msg.SenderName = m.SenderChat.Title
		msg.SenderIsChan = true
	}

	if m.ReplyToMessage != nil && m.ReplyToMessage.From != nil {
		msg.ReplyToSender = m.ReplyToMessage.From.ID
	}

	return msg
}

// mentionsSelf checks message entities for a mention of the own account:
// either @username text mentions or rich text_mention entities.
func (c *Client) mentionsSelf(m *tgbotapi.Message) bool {
	self := "@" + strings.ToLower(c.bot.Self.UserName)
	for _, e := range m.Entities {
		switch e.Type {
		case "mention":
			if strings.ToLower(mentionText(m.Text, e)) == self {
				return true
			}
		case "text_mention":
			if e.User != nil && e.User.ID == c.bot.Self.ID {
				return true
			}
		}
	}
	return false
}

// mentionText extracts the entity substring. Entity offsets are in UTF-16
// code units per the Bot API.
func mentionText(text string, e tgbotapi.MessageEntity) string {
	u16 := utf16.Encode([]rune(text))
	if e.Offset < 0 || e.Offset+e.Length > len(u16) {
		return ""
	}
	return string(utf16.Decode(u16[e.Offset : e.Offset+e.Length]))
}

// originLink builds a human-followable t.me link for group messages.
// Private chats have no public link; the ledger addresses those senders via
// tg://user ids instead.
func originLink(m *tgbotapi.Message) string {
	if m.Chat.IsPrivate() {
		return ""
	}
	if m.Chat.UserName != "" {
		return fmt.Sprintf("https://t.me/%s/%d", m.Chat.UserName, m.MessageID)
	}
	if m.Chat.IsSuperGroup() || m.Chat.IsChannel() {
		// Internal link form for private supergroups/channels.
		internal := -m.Chat.ID - 1000000000000
		if internal > 0 {
			return fmt.Sprintf("https://t.me/c/%d/%d", internal, m.MessageID)
		}
	}
	return ""
}
