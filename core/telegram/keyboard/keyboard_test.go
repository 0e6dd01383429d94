package keyboard

import "testing"

func TestInlineButtonsRows(t *testing.T) {
	markup := InlineButtonsRows(
		[]InlineBtn{
			{Text: "🇬🇧 English", Unique: "lang", Data: "en"},
			{Text: "🇷🇺 Русский", Unique: "lang", Data: "ru"},
		},
		[]InlineBtn{
			{Text: "⬅️ Back", Unique: "back", Data: "lang"},
		},
	)

	if len(markup.InlineKeyboard) != 2 {
		t.Fatalf("rows = %d, want 2", len(markup.InlineKeyboard))
	}
	if len(markup.InlineKeyboard[0]) != 2 || len(markup.InlineKeyboard[1]) != 1 {
		t.Fatalf("unexpected row widths: %d, %d",
			len(markup.InlineKeyboard[0]), len(markup.InlineKeyboard[1]))
	}

	btn := markup.InlineKeyboard[0][1]
	if btn.Text != "🇷🇺 Русский" {
		t.Fatalf("text = %q", btn.Text)
	}
	if btn.Unique != "lang" {
		t.Fatalf("unique = %q", btn.Unique)
	}
}

func TestInlineButtonsOnePerRow(t *testing.T) {
	markup := InlineButtons([]InlineBtn{
		{Text: "a", Unique: "x"},
		{Text: "b", Unique: "y"},
		{Text: "c", Unique: "z"},
	})
	if len(markup.InlineKeyboard) != 3 {
		t.Fatalf("rows = %d, want 3", len(markup.InlineKeyboard))
	}
	for i, row := range markup.InlineKeyboard {
		if len(row) != 1 {
			t.Fatalf("row %d width = %d, want 1", i, len(row))
		}
	}
}
