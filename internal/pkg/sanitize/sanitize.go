// Package sanitize cleans raw model output before display and persistence:
// it splits an optional explanation segment off the command, strips markdown
// code fences, and removes terminal escape sequences.
package sanitize

import "strings"

// ExplanationSeparator is the literal token the system prompt asks the model
// to place between the command and an optional explanation.
const ExplanationSeparator = "###"

// Sanitize splits raw model output into a command and an optional
// explanation. The split happens on the first occurrence of the separator;
// without one, the explanation is empty. Code fences are stripped from the
// command side only.
func Sanitize(raw string) (command, explanation string) {
	command = raw
	if idx := strings.Index(raw, ExplanationSeparator); idx >= 0 {
		command = raw[:idx]
		explanation = strings.TrimSpace(raw[idx+len(ExplanationSeparator):])
	}
	command = strings.TrimSpace(StripFences(command))
	return command, explanation
}

// StripFences removes a leading and trailing markdown code-fence marker,
// with or without a language tag, from the text.
func StripFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return text
	}
	trimmed = trimmed[3:]
	// Drop the language tag on the opening fence line.
	if nl := strings.IndexByte(trimmed, '\n'); nl >= 0 {
		first := strings.TrimSpace(trimmed[:nl])
		if !strings.ContainsAny(first, " \t") {
			trimmed = trimmed[nl+1:]
		}
	}
	trimmed = strings.TrimSpace(trimmed)
	trimmed = strings.TrimSuffix(trimmed, "```")
	return strings.TrimSpace(trimmed)
}

// StripANSI removes CSI-style escape sequences (ESC, '[', parameter bytes,
// final letter) from text. Bare ESC bytes are dropped as well: the output
// never contains 0x1b, so stripping is idempotent even when removing a
// sequence would otherwise pull an ESC and a literal '[' together.
func StripANSI(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if text[i] != 0x1b {
			b.WriteByte(text[i])
			continue
		}
		if i+1 < len(text) && text[i+1] == '[' {
			j := i + 2
			for j < len(text) && (text[j] < 0x40 || text[j] > 0x7e) {
				j++
			}
			if j < len(text) {
				i = j
			} else {
				i = len(text)
			}
		}
	}
	return b.String()
}
