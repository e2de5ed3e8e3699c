// In file: internal/reason/prompt.go
package reason

import (
	"fmt"
	"strings"

	"github.com/dileep-u-k/tool-reasoner/internal/tools"
)

// initialPrompt builds the first prompt of a session: the user's query, the
// rendered tool catalog, and worked examples that establish the TOOL_CALL
// syntax. The catalog is rendered verbatim in registration order.
func initialPrompt(query string, catalog []tools.CatalogEntry) string {
	var b strings.Builder

	b.WriteString("You are an intelligent assistant that solves problems step-by-step and uses tools when needed.\n\n")

	b.WriteString("Available Tools:\n")
	for _, entry := range catalog {
		fmt.Fprintf(&b, "- %s: %s\n", entry.Name, entry.Description)
	}

	b.WriteString(`
Instructions:
1. Break down the problem into logical steps using chain-of-thought reasoning.
2. Identify whether any tools are needed to solve parts of the problem.
3. When you need a tool, write the call on its own line as: TOOL_CALL: tool_name(arguments)
4. After the tool results come back, continue your reasoning with them.
5. Finish with a clear final answer on its own line.

Examples of tool calls:
TOOL_CALL: average(18, 50)
TOOL_CALL: count_vowels(Multimodality)
TOOL_CALL: factorial(5)

`)
	fmt.Fprintf(&b, "Query: %s\n\n", query)
	b.WriteString("Think step by step and use tools when necessary:")
	return b.String()
}

// followUpPrompt builds the second-phase prompt: the model's previous
// reasoning plus every tool result, asking for a final answer to the
// original query. Failed calls are included as explanatory text so the
// model can reason about the failure.
func followUpPrompt(query, previousReasoning string, results []Result) string {
	var b strings.Builder

	b.WriteString("Based on your previous reasoning and the following tool results, provide a clear final answer.\n\n")

	b.WriteString("Previous reasoning:\n")
	b.WriteString(previousReasoning)
	b.WriteString("\n\nTool results:\n")
	for _, res := range results {
		b.WriteString(res.Render())
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "\nProvide a concise final answer to the original query: %s", query)
	return b.String()
}
