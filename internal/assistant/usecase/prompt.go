package usecase

import "fmt"

func buildEmailPrompt(subject, context string) string {
	return fmt.Sprintf("Write a professional email about: %s. Context: %s", subject, context)
}

func buildSuggestionsPrompt(context string) string {
	return fmt.Sprintf("Based on the context: %s, suggest useful actions.", context)
}
