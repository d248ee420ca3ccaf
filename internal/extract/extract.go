// Package extract pulls a JSON document out of free-form model output.
// Models wrap their answer in fenced code blocks, prose, or nothing at
// all; extraction is tolerant of the wrapping but not of malformed JSON
// content.
package extract

import (
	"bytes"
	"encoding/json"
	"strings"
)

const fence = "```"

// JSON locates and parses a JSON object in text. Attempts, in order:
// the content of a ```json fenced block, any other fenced block, the
// whole trimmed text, and finally the substring between the first '{'
// and the last '}'. A parse failure at one step falls through to the
// next; nil means no step succeeded. nil is the designed "could not
// extract" signal the fallback chain keys off, not an error.
func JSON(text string) map[string]any {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	if i := strings.Index(text, fence+"json"); i >= 0 {
		body := text[i+len(fence+"json"):]
		if end := strings.Index(body, fence); end >= 0 {
			body = body[:end]
		}
		if doc := parse(body); doc != nil {
			return doc
		}
	} else if strings.Contains(text, fence) {
		// Odd-indexed segments are the fenced contents.
		segments := strings.Split(text, fence)
		for i := 1; i < len(segments); i += 2 {
			body := strings.TrimSpace(segments[i])
			body = strings.TrimPrefix(body, "json")
			if doc := parse(body); doc != nil {
				return doc
			}
		}
	}

	if doc := parse(text); doc != nil {
		return doc
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return parse(text[start : end+1])
	}
	return nil
}

// parse decodes s as a JSON object. Numbers stay json.Number so the
// validator can tell integers from floats.
func parse(s string) map[string]any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil
	}
	return doc
}
