// Package flow implements the support-intake conversation as an explicit
// state machine: a closed event vocabulary, a closed action vocabulary and
// a single pure Transition function. It performs no I/O; executing actions
// and persisting sessions belong to the dispatcher.
package flow

// State identifies the user's position in the conversation.
type State string

const (
	// StateNone means no conversation has been started (or it was swept).
	StateNone State = "none"
	// StateLanguage means the bot is waiting for a language choice.
	StateLanguage State = "language"
	// StateIssue means the bot is waiting for an issue category choice.
	StateIssue State = "issue"
	// StateWallet means the bot is waiting for a wallet address.
	StateWallet State = "wallet"
)

// Session is the per-user conversation progress record. It is stored and
// replaced as a whole value; Issue keeps a copy of the chosen catalog
// label rather than an index into it.
type Session struct {
	UserID   int64
	State    State
	Language string
	Issue    string
}
