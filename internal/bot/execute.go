package bot

import (
	"context"
	"log/slog"
	"time"

	"github.com/sushihelp/supportbot/core/logger"
	"github.com/sushihelp/supportbot/core/telegram/keyboard"
	"github.com/sushihelp/supportbot/internal/flow"

	tele "gopkg.in/telebot.v4"
)

// execute performs the action list in order inside the handler goroutine.
// EditPrior targets the message produced by the most recent SendText in
// the same list. A failed step abandons the rest; the committed session is
// not rolled back and the user recovers via /start.
func (b *Bot) execute(ctx context.Context, c tele.Context, actions []flow.Action) error {
	var prior *tele.Message
	for i, a := range actions {
		switch act := a.(type) {
		case flow.SendText:
			if err := pause(ctx, act.Delay); err != nil {
				return err
			}
			msg, err := c.Bot().Send(c.Recipient(), act.Body, sendOptions(act.Menu)...)
			if err != nil {
				logger.Error(ctx, component, "action.send",
					slog.Int("step", i),
					slog.String("err", err.Error()),
				)
				return err
			}
			prior = msg

		case flow.EditPrior:
			if err := pause(ctx, act.Delay); err != nil {
				return err
			}
			if prior == nil {
				logger.Warn(ctx, component, "action.edit.no_prior",
					slog.Int("step", i),
				)
				continue
			}
			msg, err := c.Bot().Edit(prior, act.Body)
			if err != nil {
				logger.Error(ctx, component, "action.edit",
					slog.Int("step", i),
					slog.String("err", err.Error()),
				)
				return err
			}
			prior = msg
		}
	}
	return nil
}

func sendOptions(menu flow.Menu) []interface{} {
	if len(menu) == 0 {
		return nil
	}
	return []interface{}{markupFor(menu)}
}

// markupFor converts a rendered flow menu into a Telebot inline keyboard.
func markupFor(menu flow.Menu) *tele.ReplyMarkup {
	rows := make([][]keyboard.InlineBtn, 0, len(menu))
	for _, row := range menu {
		r := make([]keyboard.InlineBtn, 0, len(row))
		for _, btn := range row {
			r = append(r, keyboard.InlineBtn{
				Text:   btn.Label,
				Unique: btn.Unique,
				Data:   btn.Data,
			})
		}
		rows = append(rows, r)
	}
	return keyboard.InlineButtonsRows(rows...)
}

// pause sleeps for the action's suggested delay, bailing out early when
// the bot is shutting down.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
