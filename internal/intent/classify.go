package intent

import "strings"

var keywords = []struct {
	word   string
	intent Intent
}{
	{"schedule", ScheduleMeeting},
	{"email", RespondEmail},
	{"reminder", SetReminder},
}

// Classify returns the intent of the first matching keyword, or None.
// Matching is a case-sensitive substring check.
func Classify(text string) Intent {
	for _, k := range keywords {
		if strings.Contains(text, k.word) {
			return k.intent
		}
	}
	return None
}
