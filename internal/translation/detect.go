package translation

import "strings"

// serbianStopwords are common Serbian function words unlikely to appear in
// English text.
var serbianStopwords = []string{
	" je ", " sam ", " mi ", " da ", " li ", " za ", " na ", " ne ",
	"zdravo", "hvala", "koliko", "kako", "molim", "zelim", "želim",
	"usluge", "cena", "sajt", "zakaz",
}

// DetectLanguage guesses between "sr" and "en" from diacritics and stopwords.
// It backs the /detect endpoint and defaults to English when unsure.
func DetectLanguage(text string) string {
	lower := " " + strings.ToLower(strings.TrimSpace(text)) + " "

	for _, r := range lower {
		switch r {
		case 'č', 'ć', 'š', 'ž', 'đ':
			return "sr"
		}
	}

	for _, w := range serbianStopwords {
		if strings.Contains(lower, w) {
			return "sr"
		}
	}
	return "en"
}
