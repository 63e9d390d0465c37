package repo

import "context"

// MessengerRepo sends outbound messages on the data plane.
type MessengerRepo interface {
	// SendReply sends text addressed as a reply to the given message.
	SendReply(ctx context.Context, chatID int64, replyToMessageID int, text string) error
}

// NotifierRepo delivers out-of-band failure notices to the admin via the
// control channel. The end user who triggered the failure sees nothing.
type NotifierRepo interface {
	NotifyAdmin(ctx context.Context, text string) error
}
