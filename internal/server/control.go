package server

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/afklabs/afk-responder/internal/biz/usecase"
	"github.com/afklabs/afk-responder/internal/locale"
)

// Control runs the admin bot: command and callback handling for the single
// configured owner, rendering the usecase's Views onto the Bot API.
type Control struct {
	bot     *tgbotapi.BotAPI
	admin   *usecase.AdminUsecase
	locales *locale.Resolver
	ownerID int64
	logger  *zap.Logger
}

// NewControl creates the control-plane server.
func NewControl(bot *tgbotapi.BotAPI, admin *usecase.AdminUsecase, locales *locale.Resolver, ownerID int64, logger *zap.Logger) *Control {
	return &Control{
		bot:     bot,
		admin:   admin,
		locales: locales,
		ownerID: ownerID,
		logger:  logger.Named("control"),
	}
}

// Start consumes control-bot updates until the context is cancelled.
// Updates are handled sequentially, so admin inputs apply in the order
// received.
func (c *Control) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := c.bot.GetUpdatesChan(u)

	c.logger.Info("control bot started", zap.String("username", c.bot.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			c.bot.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			c.handleUpdate(ctx, update)
		}
	}
}

// SendText sends a plain message on the control connection. Used for admin
// failure notifications from the data plane.
func (c *Control) SendText(ctx context.Context, chatID int64, text string) error {
	_, err := c.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (c *Control) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		q := update.CallbackQuery
		// Acknowledge the press regardless of outcome.
		if _, err := c.bot.Request(tgbotapi.NewCallback(q.ID, "")); err != nil {
			c.logger.Warn("callback ack failed", zap.Error(err))
		}
		if q.From == nil || q.From.ID != c.ownerID {
			return
		}
		if q.Message == nil {
			return
		}
		views := c.admin.HandleCallback(ctx, q.Data)
		c.render(q.Message.Chat.ID, q.Message.MessageID, views)

	case update.Message != nil:
		m := update.Message
		if m.From == nil {
			return
		}
		if m.From.ID != c.ownerID {
			if m.IsCommand() {
				c.reply(m.Chat.ID, c.locales.Get(locale.FallbackLanguage, "not_owner", nil))
			}
			return
		}
		var views []usecase.View
		if m.IsCommand() {
			views = c.admin.HandleCommand(ctx, m.Command())
		} else {
			views = c.admin.HandleText(ctx, m.Text)
		}
		c.render(m.Chat.ID, 0, views)
	}
}

// render maps views onto sends and in-place edits. editMsgID is the menu
// message a callback arrived from; zero means nothing to edit.
func (c *Control) render(chatID int64, editMsgID int, views []usecase.View) {
	for _, v := range views {
		if v.Edit && editMsgID != 0 {
			c.edit(chatID, editMsgID, v)
			continue
		}
		c.send(chatID, v)
	}
}

func (c *Control) send(chatID int64, v usecase.View) {
	msg := tgbotapi.NewMessage(chatID, v.Text)
	if len(v.Keyboard) > 0 {
		msg.ReplyMarkup = markup(v.Keyboard)
	}
	if v.HTML {
		msg.ParseMode = tgbotapi.ModeHTML
	}
	msg.DisableWebPagePreview = v.NoPreview
	if _, err := c.bot.Send(msg); err != nil {
		c.logger.Error("send failed", zap.Error(err))
	}
}

func (c *Control) edit(chatID int64, msgID int, v usecase.View) {
	var cfg tgbotapi.Chattable
	if len(v.Keyboard) > 0 {
		e := tgbotapi.NewEditMessageTextAndMarkup(chatID, msgID, v.Text, markup(v.Keyboard))
		if v.HTML {
			e.ParseMode = tgbotapi.ModeHTML
		}
		e.DisableWebPagePreview = v.NoPreview
		cfg = e
	} else {
		e := tgbotapi.NewEditMessageText(chatID, msgID, v.Text)
		if v.HTML {
			e.ParseMode = tgbotapi.ModeHTML
		}
		e.DisableWebPagePreview = v.NoPreview
		cfg = e
	}
	if _, err := c.bot.Send(cfg); err != nil {
		// Editing fails when the content is unchanged; fall back to a send.
		c.logger.Debug("edit failed, sending instead", zap.Error(err))
		c.send(chatID, v)
	}
}

func (c *Control) reply(chatID int64, text string) {
	if _, err := c.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		c.logger.Error("send failed", zap.Error(err))
	}
}

func markup(rows [][]usecase.Button) tgbotapi.InlineKeyboardMarkup {
	kb := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		r := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			r = append(r, tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Action))
		}
		kb = append(kb, r)
	}
	return tgbotapi.NewInlineKeyboardMarkup(kb...)
}
