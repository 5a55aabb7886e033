package assistant

import (
	"strings"
)

// Intent is the coarse category of what the user wants.
type Intent string

const (
	IntentBooking        Intent = "booking"
	IntentPricing        Intent = "pricing"
	IntentServices       Intent = "services"
	IntentContact        Intent = "contact"
	IntentGreeting       Intent = "greeting"
	IntentThanks         Intent = "thanks"
	IntentTimeline       Intent = "timeline"
	IntentQuestion       Intent = "question"
	IntentGettingStarted Intent = "getting_started"
)

// intentOrder fixes the evaluation order. Ties resolve to the intent listed
// first, so the more actionable intents sit at the top. This order is
// observable behavior and must not be reshuffled casually.
var intentOrder = []Intent{
	IntentBooking,
	IntentPricing,
	IntentServices,
	IntentContact,
	IntentTimeline,
	IntentGettingStarted,
	IntentGreeting,
	IntentThanks,
	IntentQuestion,
}

const (
	scoreHigh   = 3
	scoreMedium = 2
	scoreLow    = 1
)

// intentKeywords holds the three keyword tiers per intent, English and
// Serbian mixed. Matching is substring containment on the lowercased message,
// except single short words which match on word boundaries.
var intentKeywords = map[Intent]struct {
	high   []string
	medium []string
	low    []string
}{
	IntentBooking: {
		high:   []string{"book", "booking", "schedule", "appointment", "consultation", "rezervis", "zakaz", "termin"},
		medium: []string{"meeting", "sastanak", "razgovor", "available", "slobodno"},
		low:    []string{"calendar", "kalendar", "call"},
	},
	IntentPricing: {
		high:   []string{"price", "pricing", "cost", "how much", "quote", "cena", "cenovnik", "koliko kosta", "koliko košta"},
		medium: []string{"budget", "budzet", "budžet", "estimate", "afford", "rate"},
		low:    []string{"pay", "money", "novac", "plat"},
	},
	IntentServices: {
		high:   []string{"services", "what do you offer", "what do you do", "usluge", "sta nudite", "šta nudite"},
		medium: []string{"portfolio", "specialize", "offer", "nudite"},
		low:    []string{"website", "sajt", "app", "design", "dizajn"},
	},
	IntentContact: {
		high:   []string{"contact", "get in touch", "reach you", "kontakt", "javiti se"},
		medium: []string{"email you", "phone", "telefon", "poruka", "message you"},
		low:    []string{"send", "posalji", "pošalji"},
	},
	IntentTimeline: {
		high:   []string{"how long", "timeline", "deadline", "koliko dugo", "koliko traje", "rok"},
		medium: []string{"duration", "trajanje", "when can", "kada moze", "kada može"},
		low:    []string{"soon", "uskoro"},
	},
	IntentGettingStarted: {
		high:   []string{"get started", "getting started", "start a project", "how do we start", "kako da pocnemo", "kako da počnemo", "saradnja"},
		medium: []string{"begin", "first step", "next step", "pocetak", "početak"},
		low:    []string{"process", "proces"},
	},
	IntentGreeting: {
		high:   []string{"hello", "hey", "zdravo", "dobar dan", "dobro jutro", "good morning", "good afternoon", "cao", "ćao"},
		medium: []string{"greetings", "pozdrav"},
		low:    []string{"hi"},
	},
	IntentThanks: {
		high:   []string{"thank", "thanks", "hvala"},
		medium: []string{"appreciate", "zahvalan"},
		low:    []string{"great", "super"},
	},
	IntentQuestion: {
		high:   []string{},
		medium: []string{"can you", "could you", "mozete li", "možete li", "da li"},
		low:    []string{"how", "what", "why", "kako", "sta", "šta", "zasto", "zašto", "?"},
	},
}

var actionCues = []string{
	"want", "need", "make", "create", "build", "looking for",
	"zelim", "želim", "trebam", "treba mi", "hocu", "hoću", "napravi",
}

var questionCues = []string{
	"how", "what", "when", "why", "which", "koliko",
	"kako", "sta", "šta", "kada", "koji", "da li",
}

// Classification is the scored result for one message.
type Classification struct {
	Intent     Intent             `json:"intent"`
	Confidence float64            `json:"confidence"`
	Scores     map[Intent]float64 `json:"-"`
}

// Classifier scores intents from weighted keyword matches plus contextual
// boosts derived from the extracted entities.
type Classifier struct{}

// NewClassifier creates a keyword-scoring intent classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify scores the message against every intent and returns the winner.
// The bag supplies numeric price/duration mentions for score boosts.
func (c *Classifier) Classify(text string, bag EntityBag) Classification {
	lower := strings.ToLower(text)
	scores := make(map[Intent]float64, len(intentOrder))

	for _, intent := range intentOrder {
		tiers := intentKeywords[intent]
		score := 0.0
		for _, kw := range tiers.high {
			if matchKeyword(lower, kw) {
				score += scoreHigh
			}
		}
		for _, kw := range tiers.medium {
			if matchKeyword(lower, kw) {
				score += scoreMedium
			}
		}
		for _, kw := range tiers.low {
			if matchKeyword(lower, kw) {
				score += scoreLow
			}
		}
		scores[intent] = score
	}

	// Contextual boosts only amplify intents that already matched.
	if scores[IntentBooking] > 0 && containsAny(lower, actionCues) {
		scores[IntentBooking] += 2
	}
	if containsAny(lower, questionCues) {
		if scores[IntentPricing] > 0 {
			scores[IntentPricing]++
		}
		if scores[IntentServices] > 0 {
			scores[IntentServices]++
		}
	}
	if len(bag.PriceMentions) > 0 {
		scores[IntentPricing] += 2
	}
	if len(bag.DurationMentions) > 0 {
		scores[IntentTimeline] += 2
	}

	top := IntentQuestion
	topScore := 0.0
	for _, intent := range intentOrder {
		if scores[intent] > topScore {
			top = intent
			topScore = scores[intent]
		}
	}

	confidence := 0.0
	if topScore > 0 {
		words := len(strings.Fields(text))
		confidence = topScore / float64(words+1)
		if confidence > 1 {
			confidence = 1
		}
	}

	return Classification{Intent: top, Confidence: confidence, Scores: scores}
}

// matchKeyword checks containment; short single words are matched on word
// boundaries so "hi" does not fire inside "this".
func matchKeyword(lower, kw string) bool {
	if kw == "?" {
		return strings.Contains(lower, "?")
	}
	if len(kw) <= 4 && !strings.Contains(kw, " ") {
		return containsWord(lower, kw)
	}
	return strings.Contains(lower, kw)
}

func containsWord(lower, word string) bool {
	idx := 0
	for {
		i := strings.Index(lower[idx:], word)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(word)
		beforeOK := start == 0 || !isWordChar(lower[start-1])
		afterOK := end == len(lower) || !isWordChar(lower[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '\''
}

func containsAny(lower string, cues []string) bool {
	for _, cue := range cues {
		if matchKeyword(lower, cue) {
			return true
		}
	}
	return false
}
