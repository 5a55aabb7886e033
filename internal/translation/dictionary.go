package translation

import "strings"

// phrasePair is one curated translation. The dictionary covers the canned
// responses the assistant itself generates, so the common path never needs
// the remote provider.
type phrasePair struct {
	src string
	dst string
}

// Dictionary resolves translations from a curated phrase table: first an
// exact match, then a prefix-anchored substring match that replaces only the
// matched span.
type Dictionary struct {
	pairs map[langKey][]phrasePair
}

type langKey struct {
	source string
	target string
}

// NewDictionary builds the curated English↔Serbian dictionary.
func NewDictionary() *Dictionary {
	enSR := []phrasePair{
		{"Hello! I'm the assistant for our consulting agency. I can help you learn about our services, get a price estimate, or book a free consultation. What can I do for you?",
			"Zdravo! Ja sam asistent naše konsultantske agencije. Mogu da vam pomognem da saznate više o našim uslugama, dobijete procenu cene ili zakažete besplatne konsultacije. Šta mogu da učinim za vas?"},
		{"You're welcome! If you have any other questions, I'm here to help.",
			"Nema na čemu! Ako imate još pitanja, tu sam da pomognem."},
		{"We offer web development, mobile apps, UI/UX design, digital marketing, SEO, e-commerce, and branding. Which of these is closest to what you need?",
			"Nudimo izradu sajtova, mobilne aplikacije, UI/UX dizajn, digitalni marketing, SEO, e-commerce i brending. Šta od toga je najbliže onome što vam treba?"},
		{"I'd be happy to help you book a consultation with our team.",
			"Rado ću vam pomoći da zakažete konsultacije sa našim timom."},
		{"I can pass your message along to our team.",
			"Mogu da prosledim vašu poruku našem timu."},
		{"Project timelines depend on scope: a typical website takes 4-8 weeks, larger applications 3-6 months. Tell me a bit about your project and I can be more specific.",
			"Rokovi zavise od obima posla: tipičan sajt traje 4-8 nedelja, veće aplikacije 3-6 meseci. Recite mi nešto više o projektu pa mogu biti precizniji."},
		{"Getting started is simple: we schedule a free consultation, discuss your goals, and then prepare a proposal with scope, timeline, and price. Shall we book that first call?",
			"Početak je jednostavan: zakažemo besplatne konsultacije, razgovaramo o vašim ciljevima i zatim pripremimo ponudu sa obimom, rokom i cenom. Da zakažemo taj prvi razgovor?"},
		{"That's a good question. Could you tell me a bit more about what you're looking for, so I can point you in the right direction?",
			"Dobro pitanje. Možete li mi reći nešto više o tome šta tražite, da vas uputim u pravom smeru?"},
		{"Would you like to book a free consultation for an exact quote?",
			"Da li želite da zakažete besplatne konsultacije za tačnu ponudu?"},
		{"Great! Could you tell me your name?",
			"Odlično! Kako se zovete?"},
		{"What email address can we reach you at?",
			"Na koju email adresu možemo da vas kontaktiramo?"},
		{"Which service are you interested in: web development, mobile apps, design, marketing, or something else?",
			"Koja usluga vas zanima: izrada sajta, mobilne aplikacije, dizajn, marketing ili nešto drugo?"},
		{"What would you like to tell us? Feel free to describe your question or project.",
			"Šta biste želeli da nam poručite? Slobodno opišite vaše pitanje ili projekat."},
		{"Is there anything else I can help you with?",
			"Mogu li još nečim da vam pomognem?"},
		{"Thank you! We have received your request and will get back to you within one business day.",
			"Hvala vam! Primili smo vaš zahtev i javićemo vam se u roku od jednog radnog dana."},
	}

	return &Dictionary{pairs: map[langKey][]phrasePair{
		{"en", "sr"}: enSR,
	}}
}

// Lookup resolves text for the language pair. A prefix-anchored hit replaces
// only the matched span and keeps the remainder verbatim.
func (d *Dictionary) Lookup(text, sourceLang, targetLang string) (string, bool) {
	pairs, ok := d.pairs[langKey{source: sourceLang, target: targetLang}]
	if !ok {
		return "", false
	}

	trimmed := strings.TrimSpace(text)
	for _, p := range pairs {
		if trimmed == p.src {
			return p.dst, true
		}
	}
	for _, p := range pairs {
		if strings.HasPrefix(trimmed, p.src) {
			return p.dst + trimmed[len(p.src):], true
		}
	}
	return "", false
}

// Languages lists the locales the curated dictionary can produce.
func (d *Dictionary) Languages() []string {
	return []string{"en", "sr"}
}
