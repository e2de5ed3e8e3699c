// In file: internal/reason/extractor.go

// Package reason implements the tool-invocation loop: scanning model text
// for TOOL_CALL directives, dispatching them against the tool registry, and
// orchestrating the two-phase exchange with the model.
package reason

import (
	"regexp"
	"strings"
)

// Request is one uninterpreted tool invocation extracted from model text.
// It is ephemeral: produced by Extract, consumed by the dispatcher, and
// discarded once its result has been recorded.
type Request struct {
	// Name of the tool the model wants to call.
	Name string
	// RawArgs is the exact text between the parentheses, kept for
	// rendering the call back to the model as name(args).
	RawArgs string
	// Args are the comma-separated argument tokens with surrounding
	// whitespace stripped. Empty for zero-argument calls.
	Args []string
}

// toolCallPattern matches TOOL_CALL: name(args). The argument group
// excludes parentheses, so a fragment with unbalanced parentheses simply
// fails to match and that occurrence is skipped, without affecting the
// rest of the text.
var toolCallPattern = regexp.MustCompile(`TOOL_CALL:\s*([A-Za-z_][A-Za-z0-9_]*)\(([^()]*)\)`)

// Extract scans free text for TOOL_CALL directives and returns the requests
// in left-to-right order of their position in the text. Duplicate calls are
// preserved as separate requests. Text outside matches is ignored. Extract
// is pure: repeated calls on the same text yield identical results.
func Extract(text string) []Request {
	matches := toolCallPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	requests := make([]Request, 0, len(matches))
	for _, m := range matches {
		requests = append(requests, Request{
			Name:    m[1],
			RawArgs: m[2],
			Args:    splitArgs(m[2]),
		})
	}
	return requests
}

// splitArgs tokenizes the parenthesis content. A blank content means a
// zero-argument call and yields no tokens.
func splitArgs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	args := make([]string, len(parts))
	for i, p := range parts {
		args[i] = strings.TrimSpace(p)
	}
	return args
}
