package assistant

import "testing"

func classify(t *testing.T, text string) Classification {
	t.Helper()
	bag := newTestExtractor().Extract(text)
	return NewClassifier().Classify(text, bag)
}

func TestClassifyIntents(t *testing.T) {
	tests := []struct {
		input string
		want  Intent
	}{
		{"I want to book a consultation", IntentBooking},
		{"Can we schedule an appointment for next week?", IntentBooking},
		{"Zelim da zakazem termin", IntentBooking},
		{"How much does a website cost?", IntentPricing},
		{"Koliko košta izrada sajta?", IntentPricing},
		{"What services do you offer?", IntentServices},
		{"Sta nudite od usluga?", IntentServices},
		{"How can I get in touch with your team?", IntentContact},
		{"How long does a project usually take?", IntentTimeline},
		{"How do we get started?", IntentGettingStarted},
		{"Hello!", IntentGreeting},
		{"Dobar dan", IntentGreeting},
		{"Thanks, that helps a lot", IntentThanks},
		{"Hvala!", IntentThanks},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := classify(t, tt.input)
			if got.Intent != tt.want {
				t.Errorf("Classify(%q) = %s, want %s (scores %v)", tt.input, got.Intent, tt.want, got.Scores)
			}
		})
	}
}

func TestClassifyNoMatchFallsBackToQuestion(t *testing.T) {
	got := classify(t, "lorem ipsum dolor")
	if got.Intent != IntentQuestion {
		t.Errorf("Intent = %s, want question", got.Intent)
	}
	if got.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0", got.Confidence)
	}
}

func TestClassifyTieResolvesByOrder(t *testing.T) {
	// "call" scores booking low, "send" scores contact low. Booking is
	// evaluated first and wins the tie.
	got := classify(t, "send a call")
	if got.Intent != IntentBooking {
		t.Errorf("Intent = %s, want booking (scores %v)", got.Intent, got.Scores)
	}
}

func TestClassifyConfidenceClamped(t *testing.T) {
	got := classify(t, "book")
	if got.Confidence != 1 {
		t.Errorf("Confidence = %v, want 1", got.Confidence)
	}
}

func TestClassifyConfidenceScalesWithLength(t *testing.T) {
	short := classify(t, "price?")
	long := classify(t, "so I was wondering if you could maybe tell me something about the price of things")
	if short.Confidence <= long.Confidence {
		t.Errorf("short %v should be more confident than long %v", short.Confidence, long.Confidence)
	}
}

func TestClassifyActionCueBoostsBooking(t *testing.T) {
	plain := classify(t, "a meeting sometime")
	boosted := classify(t, "I want a meeting sometime")
	if boosted.Scores[IntentBooking] != plain.Scores[IntentBooking]+2 {
		t.Errorf("booking score %v, want %v+2", boosted.Scores[IntentBooking], plain.Scores[IntentBooking])
	}
}

func TestClassifyPriceMentionBoost(t *testing.T) {
	got := classify(t, "we have around 2000 eur for this")
	if got.Intent != IntentPricing {
		t.Errorf("Intent = %s, want pricing (scores %v)", got.Intent, got.Scores)
	}
}

func TestClassifyDurationMentionBoost(t *testing.T) {
	got := classify(t, "it should be done in 3 weeks")
	if got.Intent != IntentTimeline {
		t.Errorf("Intent = %s, want timeline (scores %v)", got.Intent, got.Scores)
	}
}

func TestMatchKeywordWordBoundaries(t *testing.T) {
	tests := []struct {
		text, kw string
		want     bool
	}{
		{"hi there", "hi", true},
		{"this is fine", "hi", false},
		{"the cost is high", "cost", true},
		{"costume party", "cost", false},
		{"how much is it", "how much", true},
		{"is it done?", "?", true},
	}
	for _, tt := range tests {
		if got := matchKeyword(tt.text, tt.kw); got != tt.want {
			t.Errorf("matchKeyword(%q, %q) = %v, want %v", tt.text, tt.kw, got, tt.want)
		}
	}
}
