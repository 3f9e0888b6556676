package notifier

import (
	"testing"
)

func TestNewTelegramDisabledWithoutCredentials(t *testing.T) {
	cases := []Config{
		{},
		{BotToken: "123:abc"},
		{ChatID: "42"},
	}
	for _, config := range cases {
		n := NewTelegram(config)
		if n.Enabled() {
			t.Errorf("expected disabled notifier for config %+v", config)
		}
	}
}

func TestNewTelegramDisabledWithBadChatID(t *testing.T) {
	n := NewTelegram(Config{BotToken: "123:abc", ChatID: "not-a-number"})
	if n.Enabled() {
		t.Fatal("expected disabled notifier for non numeric chat id")
	}
}

func TestNotifyDisabledIsNoop(t *testing.T) {
	n := NewTelegram(Config{})
	// must not panic or block
	n.Notify("claimed 10.5 XLM")
}
