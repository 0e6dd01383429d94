package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryLanguageIsComplete(t *testing.T) {
	for _, l := range Languages {
		t.Run(l.Code, func(t *testing.T) {
			e, ok := Get(l.Code)
			require.True(t, ok)
			assert.Contains(t, e.Start, "{name}")
			assert.Contains(t, e.Welcome, "{lang_name}")
			assert.NotEmpty(t, e.Wallet)
			assert.NotEmpty(t, e.Operator)
			assert.NotEmpty(t, e.Restart)
			assert.NotEmpty(t, e.Back)
			assert.NotEmpty(t, e.WalletTooLong)
			assert.NotEmpty(t, e.Ping)
			assert.Len(t, e.Issues, 6)
		})
	}
}

func TestMenuOrderIsStable(t *testing.T) {
	codes := make([]string, 0, len(Languages))
	for _, l := range Languages {
		codes = append(codes, l.Code)
	}
	assert.Equal(t, []string{"en", "ru", "es", "zh", "fr"}, codes)
}

func TestSupported(t *testing.T) {
	for _, l := range Languages {
		assert.True(t, Supported(l.Code))
	}
	assert.False(t, Supported("de"))
	assert.False(t, Supported(""))
	assert.False(t, Supported("EN"), "codes are case sensitive")
}

func TestMustGetFallsBack(t *testing.T) {
	assert.Equal(t, MustGet(DefaultLanguage), MustGet("nope"))
	assert.Equal(t, MustGet(DefaultLanguage), MustGet(""))
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "Русский", LanguageName("ru"))
	assert.Equal(t, "xx", LanguageName("xx"), "unknown codes pass through")
}

func TestFill(t *testing.T) {
	got := Fill("hi {name}, {name}!", "name", "Ann")
	assert.Equal(t, "hi Ann, Ann!", got)

	// Missing placeholder leaves the template untouched.
	assert.Equal(t, "plain", Fill("plain", "name", "Ann"))
}

func TestGreetingsMentionRestartCommand(t *testing.T) {
	for _, l := range Languages {
		e := MustGet(l.Code)
		assert.True(t, strings.Contains(e.Start, "/start"), "start text for %s", l.Code)
	}
}
