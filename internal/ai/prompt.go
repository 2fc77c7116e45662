package ai

import (
	"fmt"
	"strings"
)

// MapModelName resolves public model aliases onto API model identifiers.
// Unknown aliases fall back to gpt-3.5-turbo.
func MapModelName(alias string) string {
	switch strings.TrimSpace(alias) {
	case "openai-gpt4":
		return "gpt-4"
	case "openai-gpt3.5":
		return "gpt-3.5-turbo"
	case "anthropic-claude":
		// Only OpenAI models are reachable through this client for now.
		return "gpt-4"
	case "":
		return "gpt-3.5-turbo"
	default:
		return alias
	}
}

// LanguageName expands ISO language codes into the names used in prompts.
// Unknown codes fall back to English.
func LanguageName(code string) string {
	names := map[string]string{
		"en": "English",
		"es": "Spanish",
		"fr": "French",
		"de": "German",
		"it": "Italian",
		"pt": "Portuguese",
		"ja": "Japanese",
		"ko": "Korean",
		"zh": "Chinese",
	}
	if name, ok := names[strings.ToLower(strings.TrimSpace(code))]; ok {
		return name
	}
	return "English"
}

func buildGenerationPrompt(campaignName, campaignDescription, language, instructions string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create marketing content for the campaign %q", campaignName)

	if strings.TrimSpace(campaignDescription) != "" {
		fmt.Fprintf(&b, " with the following description: %s", campaignDescription)
	}
	if language != "en" {
		fmt.Fprintf(&b, ". Write the content in %s", LanguageName(language))
	}
	if strings.TrimSpace(instructions) != "" {
		fmt.Fprintf(&b, ". Additional requirements: %s", instructions)
	}
	b.WriteString(". The content should be engaging, persuasive, and suitable for marketing purposes.")

	return b.String()
}

func buildTranslationPrompt(text, sourceLanguage, targetLanguage string) string {
	return fmt.Sprintf(
		"Translate the following text from %s to %s. Maintain the tone, style, and marketing effectiveness of the original content:\n\n%s",
		LanguageName(sourceLanguage),
		LanguageName(targetLanguage),
		text,
	)
}
