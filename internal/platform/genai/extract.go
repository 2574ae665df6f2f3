package genai

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSON is returned when a model reply contains no parseable JSON object.
var ErrNoJSON = errors.New("genai: no JSON object found in model reply")

// ExtractJSON pulls a JSON object out of a model reply. Replies are expected
// to be bare JSON, but models sometimes wrap the object in a markdown code
// fence; a single ```json fence is tolerated. Anything else is an error.
func ExtractJSON(reply string, v interface{}) error {
	trimmed := strings.TrimSpace(reply)

	if json.Unmarshal([]byte(trimmed), v) == nil {
		return nil
	}

	fenced, ok := stripFence(trimmed)
	if !ok {
		return ErrNoJSON
	}
	if err := json.Unmarshal([]byte(fenced), v); err != nil {
		return ErrNoJSON
	}
	return nil
}

// stripFence removes a surrounding markdown code fence, returning the inner
// text. The opening fence may carry a language tag ("```json").
func stripFence(s string) (string, bool) {
	start := strings.Index(s, "```")
	if start < 0 {
		return "", false
	}
	rest := s[start+3:]

	// Drop the language tag on the opening fence line.
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		firstLine := strings.TrimSpace(rest[:nl])
		if firstLine == "json" || firstLine == "JSON" || firstLine == "" {
			rest = rest[nl+1:]
		}
	}

	end := strings.Index(rest, "```")
	if end < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:end]), true
}
