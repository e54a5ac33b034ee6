package assistant

// GenerateEmailInput is the input for drafting an email.
type GenerateEmailInput struct {
	Subject string
	Context string
}

// GenerateEmailOutput holds the drafted email body.
type GenerateEmailOutput struct {
	EmailBody string
	Provider  string
}

// SuggestionsInput is the input for proactive suggestions.
type SuggestionsInput struct {
	Context string
}

// SuggestionsOutput holds the suggested actions as free text.
type SuggestionsOutput struct {
	Suggestions string
	Provider    string
}
