package assistant

// Readiness says whether a session has every slot its intent requires.
type Readiness struct {
	Ready   bool     `json:"ready"`
	Missing []string `json:"missing"`
}

// requiredFields lists the slots each submission intent needs, in the order
// they should be collected. Intents without an entry use the booking set.
var requiredFields = map[Intent][]string{
	IntentBooking: {"firstName", "email", "service"},
	IntentContact: {"firstName", "email", "message"},
}

// RequiredFields returns the required slot list for an intent.
func RequiredFields(intent Intent) []string {
	if fields, ok := requiredFields[intent]; ok {
		return fields
	}
	return requiredFields[IntentBooking]
}

// CheckReadiness derives the missing-required-fields set for the session's
// current intent. It is a pure function of the session: Ready is true iff
// Missing is empty.
func CheckReadiness(s *Session) Readiness {
	missing := []string{}
	for _, field := range RequiredFields(s.Intent) {
		if s.Slots.Get(field) == "" {
			missing = append(missing, field)
		}
	}
	return Readiness{Ready: len(missing) == 0, Missing: missing}
}
