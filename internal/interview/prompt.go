package interview

import "strings"

const (
	systemPrompt = "You are an interviewer."

	placeholder = "{job description}"
)

// FormatPrompt substitutes every placeholder occurrence in template with the
// job description verbatim.
func FormatPrompt(template, jobDescription string) string {
	return strings.ReplaceAll(template, placeholder, jobDescription)
}
