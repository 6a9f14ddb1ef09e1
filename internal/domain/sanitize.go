package domain

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
	`\`, "&#x5C;",
	"`", "&#96;",
)

// SanitizeText prepares a text field for storage:
//   - trims leading/trailing whitespace
//   - escapes HTML-significant characters (& < > " ' / \ `)
//
// Inner whitespace and letter case are preserved.
func SanitizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return htmlEscaper.Replace(text)
}
