package llm

import (
	"strings"

	"mailtriage/internal/domain"
)

// Truncate returns at most maxRunes runes of s. maxRunes <= 0 means no limit.
func Truncate(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return s
	}
	count := 0
	for i := range s {
		if count == maxRunes {
			return s[:i]
		}
		count++
	}
	return s
}

// BuildClassificationPrompt returns the prompt asking the model to label
// normalized email content with one of the two categories.
func BuildClassificationPrompt(normalized string, maxChars int) string {
	return `You are an email triage assistant. Classify the email content below into exactly one of two categories:

` + string(domain.CategoryRequiresAction) + `: emails that need an action, a reply or a follow-up (for example technical questions, requests, status inquiries, problem reports, support).
` + string(domain.CategoryNoActionNeeded) + `: social or informational emails that need no action (for example thanks, greetings, congratulations, general announcements).

The content has been preprocessed: lowercased, with punctuation, numbers and stop words removed.

Email content: ` + Truncate(normalized, maxChars) + `

Reply ONLY with a compact JSON object, no markdown and no code fences:
{"category": "` + string(domain.CategoryRequiresAction) + `" or "` + string(domain.CategoryNoActionNeeded) + `", "reasoning": "one short sentence explaining the choice, in the language of the email"}`
}

// BuildReplyPrompt returns the prompt asking the model to draft a reply to
// the raw email, conditioned on its category.
func BuildReplyPrompt(raw string, category domain.Category, maxChars int) string {
	var b strings.Builder
	email := Truncate(raw, maxChars)

	if category == domain.CategoryNoActionNeeded {
		b.WriteString("Write a polite but firm reply to this email, which needs no action:\n\n")
		b.WriteString("Email: " + email + "\n\n")
		b.WriteString("IMPORTANT: the reply must be 2 to 3 lines long.\n")
		b.WriteString("The reply must be:\n")
		b.WriteString("- Courteous and concise\n")
		b.WriteString("- Redirecting to the appropriate channels if needed\n")
		b.WriteString("- Not inviting further exchange\n")
	} else {
		b.WriteString("Based on this email, which requires action, write a SHORT professional reply:\n\n")
		b.WriteString("Email: " + email + "\n\n")
		b.WriteString("IMPORTANT: the reply must be 2 to 5 lines long.\n")
		b.WriteString("The reply must be:\n")
		b.WriteString("- Professional and cordial\n")
		b.WriteString("- Thanking the sender for getting in touch\n")
		b.WriteString("- Confirming receipt\n")
		b.WriteString("- Indicating the next steps\n")
	}
	b.WriteString("\nWrite the reply in the same language as the email.\n")
	b.WriteString("Format: the reply text only, with no introduction, subject line or explanation.")
	return b.String()
}
