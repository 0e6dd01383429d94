package middleware

import (
	"context"
	"log/slog"

	"github.com/sushihelp/supportbot/core/logger"
	"github.com/sushihelp/supportbot/core/telegram/callbacks"
	"github.com/sushihelp/supportbot/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

// Logger stamps a rid into the update's context and logs a single receipt
// line per update at debug level. The per-update context derives from
// base, so handlers blocked on it observe process shutdown.
func Logger(base context.Context) tele.MiddlewareFunc {
	if base == nil {
		base = context.Background()
	}
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			upd := c.Update()
			var chatID, userID int64
			if chat := c.Chat(); chat != nil {
				chatID = chat.ID
			}
			if user := c.Sender(); user != nil {
				userID = user.ID
			}

			rid := logger.BuildRID(upd.ID, chatID, userID)
			ctx := logger.WithRID(base, rid)
			ctx = logger.WithUpdateMeta(ctx, upd.ID, userID, chatID)
			helpers.StoreContext(c, ctx)

			attrs := []slog.Attr{
				slog.Int("update_id", upd.ID),
				slog.Int64("chat_id", chatID),
				slog.Int64("user_id", userID),
			}
			switch {
			case upd.Callback != nil:
				key, payload := callbacks.Parse(upd.Callback)
				attrs = append(attrs, slog.String("cb_key", logger.SanitizeLimit(key, 64)))
				if payload != "" {
					attrs = append(attrs, slog.String("payload", logger.SanitizeLimit(payload, 64)))
				}
			case upd.Message != nil:
				if t := c.Text(); t != "" {
					attrs = append(attrs, slog.String("payload", logger.SanitizeLimit(t, 256)))
				}
			}
			logger.Debug(ctx, "tg", "update.received", attrs...)

			return next(c)
		}
	}
}
