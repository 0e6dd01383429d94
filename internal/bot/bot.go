// Package bot is the dispatcher: it decodes Telegram updates into flow
// events, serializes them through the session store and executes the
// resulting actions against the Telegram API.
package bot

import (
	"context"
	"errors"
	"log/slog"
	"unicode/utf8"

	"github.com/sushihelp/supportbot/core/logger"
	"github.com/sushihelp/supportbot/core/telegram"
	"github.com/sushihelp/supportbot/core/telegram/callbacks"
	"github.com/sushihelp/supportbot/core/telegram/helpers"
	"github.com/sushihelp/supportbot/internal/flow"
	"github.com/sushihelp/supportbot/internal/session"
	"github.com/sushihelp/supportbot/internal/ticket"

	tele "gopkg.in/telebot.v4"
)

const component = "bot"

// selectionFailedHint is sent when a callback cannot be resolved, e.g. a
// press on a menu that was rendered before a sweep or restart.
const selectionFailedHint = "An error occurred. Please try /start again."

// Bot wires the conversation flow to a session store and a ticket archive.
type Bot struct {
	store   session.Store
	archive ticket.Archive
}

// New builds a Bot. A nil archive falls back to ticket.NopArchive.
func New(store session.Store, archive ticket.Archive) *Bot {
	if archive == nil {
		archive = ticket.NopArchive{}
	}
	return &Bot{store: store, archive: archive}
}

// Registry returns the command, callback and text routing for Run.
func (b *Bot) Registry() *telegram.Registry {
	reg := telegram.NewRegistry()

	reg.RegisterCommand("/start", telegram.Command{
		Description: "Start the conversation",
		Handler: func(c tele.Context) error {
			return b.apply(c, flow.Start{Name: firstName(c)})
		},
	})
	reg.RegisterCommand("/ping", telegram.Command{
		Description: "Check that the bot is alive",
		Handler: func(c tele.Context) error {
			return b.apply(c, flow.StatusQuery{})
		},
	})

	mustCallback(reg, flow.CallbackLanguage, func(c tele.Context) error {
		return b.apply(c, flow.LanguageChosen{Code: callbacks.Payload(c)})
	})
	mustCallback(reg, flow.CallbackIssue, func(c tele.Context) error {
		idx, err := callbacks.PayloadInt(c)
		if err != nil {
			return c.Send(selectionFailedHint)
		}
		return b.apply(c, flow.IssueChosen{Index: idx})
	})
	mustCallback(reg, flow.CallbackBack, func(c tele.Context) error {
		return b.apply(c, flow.Back{Name: firstName(c)})
	})
	mustCallback(reg, flow.CallbackRestart, func(c tele.Context) error {
		return b.apply(c, flow.Restart{Name: firstName(c)})
	})

	reg.SetTextHandler(func(c tele.Context) error {
		// Transition drops the event unless the session is waiting for a
		// wallet address, so free-form text outside the flow is ignored.
		return b.apply(c, flow.WalletSubmitted{Text: c.Text()})
	})

	return reg
}

// apply runs one event through the state machine. The store's Update holds
// the per-store lock across the transition, so two updates for the same
// user cannot interleave; actions are executed after the new session value
// is committed and are never rolled back.
func (b *Bot) apply(c tele.Context, ev flow.Event) error {
	ctx := helpers.BuildContext(c)
	userID := c.Sender().ID

	var (
		actions []flow.Action
		prev    flow.Session
		next    flow.Session
	)
	err := b.store.Update(userID, func(s flow.Session) (flow.Session, error) {
		prev = s
		var terr error
		next, actions, terr = flow.Transition(s, ev)
		return next, terr
	})
	if err != nil {
		if errors.Is(err, flow.ErrInvalidSelection) {
			logger.Warn(ctx, component, "event.invalid_selection",
				slog.String("state", string(prev.State)),
			)
			// The callback query was already acknowledged by the router, so
			// the hint goes out as a regular message.
			return c.Send(selectionFailedHint)
		}
		return err
	}

	logger.Debug(ctx, component, "event.applied",
		slog.String("from", string(prev.State)),
		slog.String("to", string(next.State)),
		slog.Int("actions", len(actions)),
	)

	if w, ok := ev.(flow.WalletSubmitted); ok && walletAccepted(prev, w) {
		b.saveTicket(ctx, next, w.Text)
	}

	return b.execute(ctx, c, actions)
}

// walletAccepted reports whether the submitted text passed validation
// against the session that received it.
func walletAccepted(prev flow.Session, w flow.WalletSubmitted) bool {
	return prev.State == flow.StateWallet &&
		utf8.RuneCountInString(w.Text) <= flow.WalletMaxLen
}

func (b *Bot) saveTicket(ctx context.Context, s flow.Session, wallet string) {
	t := ticket.New(s.UserID, s.Language, s.Issue, wallet)
	if err := b.archive.Save(ctx, t); err != nil {
		// Best effort: the user already got their confirmation flow.
		logger.Warn(ctx, component, "ticket.save",
			slog.String("ticket_id", t.ID.String()),
			slog.String("err", err.Error()),
		)
		return
	}
	logger.Info(ctx, component, "ticket.saved",
		slog.String("ticket_id", t.ID.String()),
		slog.String("issue", logger.SanitizeLimit(s.Issue, 64)),
	)
}

func mustCallback(reg *telegram.Registry, key string, h tele.HandlerFunc) {
	if err := reg.RegisterCallback(key, h); err != nil {
		logger.Warn(context.Background(), component, "register.callback",
			slog.String("key", key),
			slog.String("err", err.Error()),
		)
	}
}

func firstName(c tele.Context) string {
	if u := c.Sender(); u != nil && u.FirstName != "" {
		return u.FirstName
	}
	return "User"
}
