package services

import "strings"

// directPrefixes are command names whose presence at the start of an edit
// instruction marks it as a replacement command rather than a description.
// A direct command outside this list still round-trips through the model;
// that false negative is accepted.
var directPrefixes = []string{"find", "grep", "ls", "cat", "curl", "git", "docker", "kubectl"}

// isDirectCommand classifies edit input: shell connectors or a known
// command prefix mean the text replaces the pending command verbatim;
// anything else is a natural-language modification for the model.
func isDirectCommand(text string) bool {
	t := strings.TrimSpace(text)
	if strings.Contains(t, "|") || strings.Contains(t, "&&") || strings.Contains(t, ";") {
		return true
	}
	fields := strings.Fields(t)
	if len(fields) == 0 {
		return false
	}
	for _, prefix := range directPrefixes {
		if fields[0] == prefix {
			return true
		}
	}
	return false
}
