package data

import (
	"context"

	"github.com/afklabs/afk-responder/internal/biz/repo"
	"github.com/afklabs/afk-responder/telegram"
)

// telegramRepo adapts the data-plane Telegram client to the messenger
// interface.
type telegramRepo struct {
	client *telegram.Client
}

// NewTelegramRepo creates a messenger backed by the listener connection.
func NewTelegramRepo(client *telegram.Client) repo.MessengerRepo {
	return &telegramRepo{client: client}
}

func (r *telegramRepo) SendReply(ctx context.Context, chatID int64, replyToMessageID int, text string) error {
	return r.client.SendReply(ctx, chatID, replyToMessageID, text)
}

// adminNotifier delivers failure notices to the owner through the control
// bot connection, keeping them off the data plane.
type adminNotifier struct {
	send    func(ctx context.Context, chatID int64, text string) error
	ownerID int64
}

// NewAdminNotifier creates a notifier that sends to the owner's control
// chat. send is the control bot's plain-send primitive.
func NewAdminNotifier(send func(ctx context.Context, chatID int64, text string) error, ownerID int64) repo.NotifierRepo {
	return &adminNotifier{send: send, ownerID: ownerID}
}

func (n *adminNotifier) NotifyAdmin(ctx context.Context, text string) error {
	return n.send(ctx, n.ownerID, text)
}
