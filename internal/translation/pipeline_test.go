package translation

import (
	"context"
	"errors"
	"testing"

	"github.com/dlukic-dev/agency-ai-assistant/pkg/logging"
)

type fakeRemote struct {
	reply string
	err   error
	calls int
}

func (f *fakeRemote) Translate(_ context.Context, text, sourceLang, targetLang string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newTestPipeline(remote RemoteTranslator) *Pipeline {
	return NewPipeline(NewCache(DefaultCacheSize), NewDictionary(), remote, logging.Default())
}

func TestTranslatePassThrough(t *testing.T) {
	p := newTestPipeline(nil)
	tests := []struct {
		name           string
		target, source string
	}{
		{"empty target", "", "en"},
		{"same language", "sr", "sr"},
		{"english target", "en", "sr"},
		{"english to english", "en", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := p.Translate(context.Background(), "anything", tt.target, tt.source)
			if res.Text != "anything" || res.Method != MethodNone {
				t.Errorf("got %+v", res)
			}
		})
	}
}

func TestTranslateDictionaryThenCache(t *testing.T) {
	p := newTestPipeline(nil)
	text := "You're welcome! If you have any other questions, I'm here to help."

	first := p.Translate(context.Background(), text, "sr", "en")
	if first.Method != MethodManual {
		t.Fatalf("first method = %s, want manual", first.Method)
	}
	if first.Text == text {
		t.Fatal("text should have been translated")
	}

	second := p.Translate(context.Background(), text, "sr", "en")
	if second.Method != MethodCache {
		t.Errorf("second method = %s, want cache", second.Method)
	}
	if second.Text != first.Text {
		t.Errorf("cache returned %q, want %q", second.Text, first.Text)
	}
}

func TestTranslateDictionaryPrefixMatch(t *testing.T) {
	p := newTestPipeline(nil)
	text := "I'd be happy to help you book a consultation with our team. Extra tail."

	res := p.Translate(context.Background(), text, "sr", "en")
	if res.Method != MethodManual {
		t.Fatalf("method = %s", res.Method)
	}
	if got, want := res.Text, " Extra tail."; len(got) < len(want) || got[len(got)-len(want):] != want {
		t.Errorf("tail should be kept verbatim: %q", got)
	}
}

func TestTranslateRemoteTier(t *testing.T) {
	remote := &fakeRemote{reply: "prevedeno"}
	p := newTestPipeline(remote)

	res := p.Translate(context.Background(), "something the dictionary has never seen", "sr", "en")
	if res.Method != MethodAPI || res.Text != "prevedeno" {
		t.Fatalf("got %+v", res)
	}
	if remote.calls != 1 {
		t.Fatalf("remote calls = %d", remote.calls)
	}

	// Second request is served from cache without touching the provider.
	res = p.Translate(context.Background(), "something the dictionary has never seen", "sr", "en")
	if res.Method != MethodCache || remote.calls != 1 {
		t.Errorf("got %+v, remote calls = %d", res, remote.calls)
	}
}

func TestTranslateFallbackNeverCached(t *testing.T) {
	remote := &fakeRemote{err: errors.New("provider down")}
	p := newTestPipeline(remote)

	res := p.Translate(context.Background(), "untranslatable text", "sr", "en")
	if res.Method != MethodFallback || res.Text != "untranslatable text" {
		t.Fatalf("got %+v", res)
	}

	// The failure is retried, not replayed from cache.
	remote.err = nil
	remote.reply = "sada radi"
	res = p.Translate(context.Background(), "untranslatable text", "sr", "en")
	if res.Method != MethodAPI || res.Text != "sada radi" {
		t.Errorf("got %+v, want recovered provider result", res)
	}
}

func TestTranslateNoRemoteFallsBack(t *testing.T) {
	p := newTestPipeline(nil)
	res := p.Translate(context.Background(), "text without a curated entry", "sr", "en")
	if res.Method != MethodFallback || res.Text != "text without a curated entry" {
		t.Errorf("got %+v", res)
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello, how are you?", "en"},
		{"Koliko košta izrada sajta?", "sr"},
		{"zdravo svima", "sr"},
		{"hvala", "sr"},
		{"I want a website", "en"},
		{"", "en"},
	}
	for _, tt := range tests {
		if got := DetectLanguage(tt.input); got != tt.want {
			t.Errorf("DetectLanguage(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
