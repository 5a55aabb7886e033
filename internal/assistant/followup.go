package assistant

// followUpQuestions maps a missing slot to the canned question that collects
// it, per locale. The table is the single-slot-at-a-time state machine: the
// first missing required field selects the question, and a fully filled
// session has no next state.
var followUpQuestions = map[string]map[string]string{
	"firstName": {
		"en": "Great! Could you tell me your name?",
		"sr": "Odlično! Kako se zovete?",
	},
	"lastName": {
		"en": "And your last name?",
		"sr": "A vaše prezime?",
	},
	"email": {
		"en": "What email address can we reach you at?",
		"sr": "Na koju email adresu možemo da vas kontaktiramo?",
	},
	"phone": {
		"en": "Could you share a phone number as well?",
		"sr": "Možete li da podelite i broj telefona?",
	},
	"service": {
		"en": "Which service are you interested in: web development, mobile apps, design, marketing, or something else?",
		"sr": "Koja usluga vas zanima: izrada sajta, mobilne aplikacije, dizajn, marketing ili nešto drugo?",
	},
	"message": {
		"en": "What would you like to tell us? Feel free to describe your question or project.",
		"sr": "Šta biste želeli da nam poručite? Slobodno opišite vaše pitanje ili projekat.",
	},
}

var genericFollowUp = map[string]string{
	"en": "Is there anything else I can help you with?",
	"sr": "Mogu li još nečim da vam pomognem?",
}

// NextQuestion returns the localized question for the first missing field.
// Unknown fields and unknown locales fall back to a generic English prompt.
func NextQuestion(field, locale string) string {
	if locale != "sr" {
		locale = "en"
	}
	if byLocale, ok := followUpQuestions[field]; ok {
		if q, ok := byLocale[locale]; ok {
			return q
		}
	}
	return genericFollowUp[locale]
}
