package flow

import (
	"errors"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/sushihelp/supportbot/internal/catalog"
)

// ErrInvalidSelection reports a callback value that cannot be resolved
// against the catalog for the session's language. The dispatcher only ever
// passes values sourced from menus this package rendered, so hitting this
// means a stale or forged callback; the session is left untouched.
var ErrInvalidSelection = errors.New("flow: selection does not match a rendered menu")

// WalletMaxLen is the longest accepted wallet address, in runes.
const WalletMaxLen = 100

// Suggested spacing between the processing animation steps.
const (
	frameDelay    = time.Second
	operatorDelay = 500 * time.Millisecond
)

var processingFrames = [...]string{"🔄 Processing...", "⏳ Processing...", "✅ Processed!"}

// Transition applies one event to a session and returns the next session
// value plus the ordered actions the dispatcher must execute. It is a pure
// function: no I/O, no hidden state, never blocks. Events that do not
// apply to the current state are dropped (unchanged session, no actions,
// no error), mirroring how the source filtered handlers by state.
func Transition(s Session, ev Event) (Session, []Action, error) {
	switch e := ev.(type) {
	case Start:
		return reset(s, e.Name)

	case Restart:
		return reset(s, e.Name)

	case StatusQuery:
		entry := catalog.MustGet(s.Language)
		return s, []Action{SendText{Body: entry.Ping}}, nil

	case LanguageChosen:
		if s.State != StateLanguage {
			return s, nil, nil
		}
		if !catalog.Supported(e.Code) {
			return s, nil, ErrInvalidSelection
		}
		next := s
		next.Language = e.Code
		next.State = StateIssue
		return next, []Action{issuePrompt(e.Code)}, nil

	case IssueChosen:
		if s.State != StateIssue {
			return s, nil, nil
		}
		entry := catalog.MustGet(s.Language)
		if e.Index < 0 || e.Index >= len(entry.Issues) {
			return s, nil, ErrInvalidSelection
		}
		next := s
		next.Issue = entry.Issues[e.Index]
		next.State = StateWallet
		return next, []Action{SendText{Body: entry.Wallet, Menu: backMenu(entry)}}, nil

	case Back:
		switch s.State {
		case StateIssue:
			// Back to the language menu; the greeting is rendered in the
			// already-chosen language, unlike the default-language /start.
			next := s
			next.State = StateLanguage
			return next, []Action{greeting(s.Language, e.Name)}, nil
		case StateWallet:
			next := s
			next.State = StateIssue
			return next, []Action{issuePrompt(s.Language)}, nil
		default:
			return s, nil, nil
		}

	case WalletSubmitted:
		if s.State != StateWallet {
			return s, nil, nil
		}
		entry := catalog.MustGet(s.Language)
		if utf8.RuneCountInString(e.Text) > WalletMaxLen {
			// Validation failure is a self-loop, not an error.
			return s, []Action{SendText{Body: entry.WalletTooLong, Menu: backMenu(entry)}}, nil
		}
		return s, []Action{
			SendText{Body: processingFrames[0]},
			EditPrior{Body: processingFrames[1], Delay: frameDelay},
			EditPrior{Body: processingFrames[2], Delay: frameDelay},
			SendText{Body: entry.Operator, Menu: restartMenu(entry), Delay: operatorDelay},
		}, nil
	}

	return s, nil, nil
}

// reset discards progress and re-renders the default-language greeting.
func reset(s Session, name string) (Session, []Action, error) {
	next := Session{UserID: s.UserID, State: StateLanguage}
	return next, []Action{greeting(catalog.DefaultLanguage, name)}, nil
}

func greeting(code, name string) SendText {
	entry := catalog.MustGet(code)
	if name == "" {
		name = "User"
	}
	return SendText{
		Body: catalog.Fill(entry.Start, "name", name),
		Menu: languageMenu(),
	}
}

// languageMenu lays the supported languages out two per row.
func languageMenu() Menu {
	var menu Menu
	var row []Button
	for _, l := range catalog.Languages {
		row = append(row, Button{Label: l.Label, Unique: CallbackLanguage, Data: l.Code})
		if len(row) == 2 {
			menu = append(menu, row)
			row = nil
		}
	}
	if len(row) > 0 {
		menu = append(menu, row)
	}
	return menu
}

func issuePrompt(code string) SendText {
	entry := catalog.MustGet(code)
	menu := make(Menu, 0, len(entry.Issues)+1)
	for i, label := range entry.Issues {
		menu = append(menu, []Button{{Label: label, Unique: CallbackIssue, Data: strconv.Itoa(i)}})
	}
	menu = append(menu, []Button{{Label: entry.Back, Unique: CallbackBack, Data: "lang"}})
	return SendText{
		Body: catalog.Fill(entry.Welcome, "lang_name", catalog.LanguageName(code)),
		Menu: menu,
	}
}

func backMenu(entry catalog.Entry) Menu {
	return Menu{{{Label: entry.Back, Unique: CallbackBack, Data: "issue"}}}
}

func restartMenu(entry catalog.Entry) Menu {
	return Menu{{{Label: entry.Restart, Unique: CallbackRestart}}}
}
