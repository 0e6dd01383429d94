package bot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tele "gopkg.in/telebot.v4"

	"github.com/sushihelp/supportbot/internal/flow"
	"github.com/sushihelp/supportbot/internal/session"
)

// fakeContext implements just enough of tele.Context for dispatcher tests;
// untouched methods panic through the nil embedded interface.
type fakeContext struct {
	tele.Context

	update tele.Update
	sender *tele.User
	chat   *tele.Chat

	store     map[string]interface{}
	sent      []string
	responded int
}

func (f *fakeContext) Update() tele.Update        { return f.update }
func (f *fakeContext) Sender() *tele.User         { return f.sender }
func (f *fakeContext) Chat() *tele.Chat           { return f.chat }
func (f *fakeContext) Callback() *tele.Callback   { return f.update.Callback }
func (f *fakeContext) Get(key string) interface{} { return f.store[key] }

func (f *fakeContext) Set(key string, val interface{}) {
	if f.store == nil {
		f.store = make(map[string]interface{})
	}
	f.store[key] = val
}

func (f *fakeContext) Send(what interface{}, _ ...interface{}) error {
	if s, ok := what.(string); ok {
		f.sent = append(f.sent, s)
	}
	return nil
}

func (f *fakeContext) Respond(_ ...*tele.CallbackResponse) error {
	f.responded++
	return nil
}

func TestWalletAccepted(t *testing.T) {
	waiting := flow.Session{State: flow.StateWallet, Language: "en", Issue: "x"}

	tests := []struct {
		name string
		prev flow.Session
		text string
		want bool
	}{
		{"accepted", waiting, "0xabc", true},
		{"exactly max", waiting, strings.Repeat("a", flow.WalletMaxLen), true},
		{"too long", waiting, strings.Repeat("a", flow.WalletMaxLen+1), false},
		{"wrong state", flow.Session{State: flow.StateIssue}, "0xabc", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := walletAccepted(tt.prev, flow.WalletSubmitted{Text: tt.text})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMarkupFor(t *testing.T) {
	menu := flow.Menu{
		{
			{Label: "🇬🇧 English", Unique: flow.CallbackLanguage, Data: "en"},
			{Label: "🇷🇺 Русский", Unique: flow.CallbackLanguage, Data: "ru"},
		},
		{
			{Label: "⬅️ Back", Unique: flow.CallbackBack, Data: "lang"},
		},
	}

	markup := markupFor(menu)
	require.Len(t, markup.InlineKeyboard, 2)
	require.Len(t, markup.InlineKeyboard[0], 2)

	btn := markup.InlineKeyboard[0][0]
	assert.Equal(t, "🇬🇧 English", btn.Text)
	assert.Equal(t, flow.CallbackLanguage, btn.Unique)
	assert.Equal(t, "en", btn.Data)
}

func TestSendOptionsOmitsEmptyMenu(t *testing.T) {
	assert.Nil(t, sendOptions(nil))
	assert.Nil(t, sendOptions(flow.Menu{}))
	assert.Len(t, sendOptions(flow.Menu{{{Label: "x", Unique: "y"}}}), 1)
}

// A stale or forged callback must produce user-visible feedback as a plain
// message: the callback route has already answered the query before
// dispatching, so a second Respond would be rejected by the API.
func TestInvalidSelectionSendsHintWithoutSecondRespond(t *testing.T) {
	store := session.NewMemoryStore()
	store.Put(1, flow.Session{State: flow.StateLanguage})
	b := New(store, nil)

	c := &fakeContext{
		update: tele.Update{ID: 5, Callback: &tele.Callback{Unique: flow.CallbackLanguage, Data: "xx"}},
		sender: &tele.User{ID: 1, FirstName: "Ann"},
		chat:   &tele.Chat{ID: 1},
	}

	err := b.apply(c, flow.LanguageChosen{Code: "xx"})
	require.NoError(t, err)

	require.Len(t, c.sent, 1)
	assert.Equal(t, selectionFailedHint, c.sent[0])
	assert.Zero(t, c.responded, "query was answered by the route already")
	assert.Equal(t, flow.StateLanguage, store.Get(1).State, "session must stay untouched")
}

func TestUnparsableIssuePayloadSendsHint(t *testing.T) {
	store := session.NewMemoryStore()
	store.Put(1, flow.Session{State: flow.StateIssue, Language: "en"})
	b := New(store, nil)
	reg := b.Registry()

	handler, ok := reg.GetCallback(flow.CallbackIssue)
	require.True(t, ok)

	c := &fakeContext{
		update: tele.Update{ID: 6, Callback: &tele.Callback{Unique: flow.CallbackIssue, Data: "not-a-number"}},
		sender: &tele.User{ID: 1},
		chat:   &tele.Chat{ID: 1},
	}
	require.NoError(t, handler(c))

	require.Len(t, c.sent, 1)
	assert.Equal(t, selectionFailedHint, c.sent[0])
	assert.Zero(t, c.responded)
	assert.Equal(t, flow.StateIssue, store.Get(1).State)
}

func TestRegistryWiring(t *testing.T) {
	b := New(nil, nil)
	reg := b.Registry()

	require.Contains(t, reg.Commands(), "/start")
	require.Contains(t, reg.Commands(), "/ping")

	for _, key := range []string{
		flow.CallbackLanguage,
		flow.CallbackIssue,
		flow.CallbackBack,
		flow.CallbackRestart,
	} {
		_, ok := reg.GetCallback(key)
		assert.True(t, ok, "callback %q not registered", key)
	}
	assert.NotNil(t, reg.TextHandler())
}
