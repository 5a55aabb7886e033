package assistant

import (
	"strings"
	"testing"
)

func TestNextQuestionLocales(t *testing.T) {
	en := NextQuestion("email", "en")
	sr := NextQuestion("email", "sr")
	if en == "" || sr == "" || en == sr {
		t.Errorf("en = %q, sr = %q", en, sr)
	}
	if !strings.Contains(strings.ToLower(en), "email") {
		t.Errorf("en question should mention the field: %q", en)
	}
}

func TestNextQuestionUnknownLocaleFallsBackToEnglish(t *testing.T) {
	if got := NextQuestion("firstName", "de"); got != NextQuestion("firstName", "en") {
		t.Errorf("got %q", got)
	}
}

func TestNextQuestionUnknownFieldIsGeneric(t *testing.T) {
	got := NextQuestion("favoriteColor", "en")
	if got != genericFollowUp["en"] {
		t.Errorf("got %q", got)
	}
	if got = NextQuestion("favoriteColor", "sr"); got != genericFollowUp["sr"] {
		t.Errorf("got %q", got)
	}
}

func TestNextQuestionCoversRequiredFields(t *testing.T) {
	for _, intent := range []Intent{IntentBooking, IntentContact} {
		for _, field := range RequiredFields(intent) {
			for _, locale := range []string{"en", "sr"} {
				if _, ok := followUpQuestions[field][locale]; !ok {
					t.Errorf("no %s question for required field %q", locale, field)
				}
			}
		}
	}
}
