package llm

import "strings"

// StripFence removes a Markdown code fence wrapping a model reply.
// Models routinely wrap output in ``` or ```json blocks even when asked
// for bare text, so every reply that feeds a parser goes through here.
func StripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		// Drop the rest of the opening fence line ("json", "text", ...).
		s = s[idx+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}

	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
