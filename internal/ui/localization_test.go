package ui

import (
	"sync"
	"testing"
)

func TestLocalization_GetText(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText(KeyNext); got != "Next" {
		t.Errorf("Expected 'Next', got %q", got)
	}

	l.SetLanguage("pt")
	if got := l.GetText(KeyNext); got != "Próxima" {
		t.Errorf("Expected 'Próxima', got %q", got)
	}

	// Unknown languages are ignored
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "pt" {
		t.Errorf("Expected language to stay 'pt', got %q", l.GetCurrentLanguage())
	}

	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("Expected key fallback, got %q", got)
	}
}

func TestLocalization_Format(t *testing.T) {
	l := NewLocalization()
	if got := l.Format(KeyPageOf, 2, 5); got != "Page 2 of 5" {
		t.Errorf("Expected 'Page 2 of 5', got %q", got)
	}
}

func TestLocalization_ConcurrentSwitch(t *testing.T) {
	l := NewLocalization()
	valid := map[string]bool{"Next": true, "Próxima": true, "Вперёд": true}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			l.SetLanguage([]string{"en", "ru", "pt"}[i%3])
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			if got := l.GetText(KeyNext); !valid[got] {
				t.Errorf("Unexpected text %q", got)
				return
			}
			_ = l.Format(KeyLoaded, i, 1)
		}
	}()
	wg.Wait()
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	for lang, texts := range l.texts {
		for key := range l.texts["en"] {
			if _, ok := texts[key]; !ok {
				t.Errorf("Language %s is missing %s", lang, key)
			}
		}
	}
}

func TestSystemLanguage(t *testing.T) {
	tests := []struct {
		locales []string
		want    string
	}{
		{[]string{"ru_RU.UTF-8"}, "ru"},
		{[]string{"pt_BR.UTF-8"}, "pt"},
		{[]string{"en_US.UTF-8"}, "en"},
		{[]string{"", "ru_RU.UTF-8"}, "ru"},
		{[]string{"C"}, "en"},
		{[]string{"ja_JP.UTF-8"}, "en"},
		{nil, "en"},
	}
	for _, tt := range tests {
		if got := systemLanguage(tt.locales...); got != tt.want {
			t.Errorf("systemLanguage(%v) = %q, want %q", tt.locales, got, tt.want)
		}
	}
}
