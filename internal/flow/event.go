package flow

// Event is an inbound conversation event decoded by the dispatcher.
// The set is closed; Transition matches on the concrete types below.
type Event interface{ isEvent() }

// Start begins a new conversation, resetting any prior progress.
type Start struct {
	// Name is the user's display name for the greeting placeholder.
	Name string
}

// Restart is the in-conversation equivalent of Start.
type Restart struct {
	Name string
}

// LanguageChosen carries the language code picked from the language menu.
type LanguageChosen struct {
	Code string
}

// IssueChosen carries the zero-based index picked from the issue menu.
type IssueChosen struct {
	Index int
}

// Back navigates one step backwards from the issue or wallet prompt.
type Back struct {
	Name string
}

// WalletSubmitted carries the wallet address text entered by the user.
type WalletSubmitted struct {
	Text string
}

// StatusQuery asks for a liveness reply and never mutates the session.
type StatusQuery struct{}

func (Start) isEvent()           {}
func (Restart) isEvent()         {}
func (LanguageChosen) isEvent()  {}
func (IssueChosen) isEvent()     {}
func (Back) isEvent()            {}
func (WalletSubmitted) isEvent() {}
func (StatusQuery) isEvent()     {}
