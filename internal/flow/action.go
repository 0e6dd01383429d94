package flow

import "time"

// Callback uniques referenced by menu buttons. The dispatcher registers a
// handler per unique and decodes the button data back into an Event.
const (
	CallbackLanguage = "lang"
	CallbackIssue    = "issue"
	CallbackBack     = "back"
	CallbackRestart  = "restart"
)

// Button is one inline menu option: a label plus the callback token the
// dispatcher will receive when it is pressed.
type Button struct {
	Label  string
	Unique string
	Data   string
}

// Menu is an ordered list of button rows. A nil Menu means plain text.
type Menu [][]Button

// Action is one outbound step the dispatcher must execute, in order.
type Action interface{ isAction() }

// SendText sends a new message with an optional inline menu. Delay is a
// suggested minimum spacing before execution, not a hard requirement.
type SendText struct {
	Body  string
	Menu  Menu
	Delay time.Duration
}

// EditPrior replaces the text of the message produced by the most recent
// SendText in the same action list. Correlating by message id is the
// dispatcher's job.
type EditPrior struct {
	Body  string
	Delay time.Duration
}

func (SendText) isAction()  {}
func (EditPrior) isAction() {}
