package session

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sushihelp/supportbot/internal/flow"
)

func TestMemoryStoreGetFresh(t *testing.T) {
	store := NewMemoryStore()
	s := store.Get(42)
	assert.Equal(t, int64(42), s.UserID)
	assert.Equal(t, flow.StateNone, s.State)
	assert.Zero(t, store.Len())
}

func TestMemoryStorePutGet(t *testing.T) {
	store := NewMemoryStore()
	store.Put(1, flow.Session{State: flow.StateIssue, Language: "ru"})

	got := store.Get(1)
	assert.Equal(t, int64(1), got.UserID)
	assert.Equal(t, flow.StateIssue, got.State)
	assert.Equal(t, "ru", got.Language)
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStoreUpdateErrorKeepsValue(t *testing.T) {
	store := NewMemoryStore()
	store.Put(1, flow.Session{State: flow.StateLanguage})

	boom := errors.New("boom")
	err := store.Update(1, func(s flow.Session) (flow.Session, error) {
		s.State = flow.StateWallet
		return s, boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, flow.StateLanguage, store.Get(1).State)
}

func TestMemoryStoreUpdateMissingUser(t *testing.T) {
	store := NewMemoryStore()
	err := store.Update(9, func(s flow.Session) (flow.Session, error) {
		assert.Equal(t, flow.StateNone, s.State)
		s.State = flow.StateLanguage
		return s, nil
	})
	require.NoError(t, err)
	assert.Equal(t, flow.StateLanguage, store.Get(9).State)
}

func TestMemoryStoreClearAll(t *testing.T) {
	store := NewMemoryStore()
	for i := int64(1); i <= 5; i++ {
		store.Put(i, flow.Session{State: flow.StateIssue})
	}
	require.Equal(t, 5, store.Len())

	store.ClearAll()
	assert.Zero(t, store.Len())
	assert.Equal(t, flow.StateNone, store.Get(1).State)
}

func TestMemoryStoreSnapshot(t *testing.T) {
	store := NewMemoryStore()
	store.Put(1, flow.Session{State: flow.StateIssue, Language: "en"})
	store.Put(2, flow.Session{State: flow.StateWallet, Language: "ru"})

	snap := store.Snapshot()
	require.Len(t, snap, 2)

	// Mutating the snapshot must not leak into the store.
	snap[0].Language = "xx"
	assert.NotEqual(t, "xx", store.Get(snap[0].UserID).Language)
}

// Concurrent updates for the same user must serialize: both fields of the
// session always come from the same writer.
func TestMemoryStoreNoTornWrites(t *testing.T) {
	store := NewMemoryStore()
	pairs := []flow.Session{
		{State: flow.StateIssue, Language: "en", Issue: "en-issue"},
		{State: flow.StateWallet, Language: "ru", Issue: "ru-issue"},
	}

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := pairs[i%2]
			_ = store.Update(7, func(flow.Session) (flow.Session, error) {
				return p, nil
			})
		}(i)
	}
	wg.Wait()

	got := store.Get(7)
	found := false
	for _, p := range pairs {
		p.UserID = 7
		if got == p {
			found = true
		}
	}
	assert.True(t, found, "torn write: %+v", got)
}
