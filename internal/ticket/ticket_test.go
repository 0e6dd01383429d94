package ticket

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	before := time.Now().UTC()
	tk := New(42, "ru", "issue label", "0xabc")

	assert.NotEqual(t, uuid.Nil, tk.ID)
	assert.Equal(t, int64(42), tk.UserID)
	assert.Equal(t, "ru", tk.Language)
	assert.Equal(t, "issue label", tk.Issue)
	assert.Equal(t, "0xabc", tk.Wallet)
	require.False(t, tk.CreatedAt.Before(before))
	assert.Equal(t, time.UTC, tk.CreatedAt.Location())
}

func TestNewIDsAreUnique(t *testing.T) {
	a := New(1, "en", "x", "w")
	b := New(1, "en", "x", "w")
	assert.NotEqual(t, a.ID, b.ID)
}

func TestNopArchive(t *testing.T) {
	assert.NoError(t, NopArchive{}.Save(context.Background(), Ticket{}))
}
