// In file: cmd/console/main.go

// Command console is an interactive front end to the reasoning loop: read
// a query from stdin, run one session against the configured model, print
// the answer and optionally the tool breakdown.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/dileep-u-k/tool-reasoner/internal/llm"
	"github.com/dileep-u-k/tool-reasoner/internal/reason"
	"github.com/dileep-u-k/tool-reasoner/internal/tools"
)

const defaultModel = "gpt-4o"

var exampleQueries = []string{
	"What's the square root of the average of 18 and 50?",
	"How many vowels are in the word 'Multimodality'?",
	"Is the number of letters in 'machine' greater than the number of vowels in 'reasoning'?",
	"What's 15 factorial divided by 10 factorial?",
	"How many consonants are in the longest word: 'artificial', 'intelligence', or 'reasoning'?",
}

func main() {
	log.SetFlags(0)

	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: No .env file found, relying on system environment variables.")
	}

	modelID := os.Getenv("DEFAULT_MODEL")
	if modelID == "" {
		modelID = defaultModel
	}

	client, err := newClientForModel(modelID)
	if err != nil {
		log.Fatalf("❌ Error: %v", err)
	}

	registry := tools.NewRegistry()
	if err := tools.RegisterMathTools(registry); err != nil {
		log.Fatalf("❌ Error registering math tools: %v", err)
	}
	if err := tools.RegisterStringTools(registry); err != nil {
		log.Fatalf("❌ Error registering string tools: %v", err)
	}

	fmt.Println("🚀 Tool-Enhanced Reasoning Console")
	fmt.Printf("Ask me anything! I can use %d mathematical and string analysis tools to help.\n", registry.Count())
	fmt.Println("Type 'quit' to exit.")
	fmt.Println()
	fmt.Println("Example queries you can try:")
	for i, q := range exampleQueries {
		fmt.Printf("%d. %s\n", i+1, q)
	}
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Enter your query (or 'quit' to exit): ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(query) {
		case "quit", "exit", "q":
			fmt.Println("👋 Goodbye!")
			return
		case "":
			fmt.Println("Please enter a query.")
			continue
		}

		session := reason.NewSession(client, registry, reason.Config{Model: modelID})
		outcome, err := session.Run(context.Background(), query)
		if err != nil {
			fmt.Printf("❌ Error: %v\n", err)
			continue
		}

		fmt.Printf("\n✅ Final Answer: %s\n", outcome.Answer)

		if len(outcome.ToolsUsed) > 0 {
			fmt.Print("\nWould you like to see the detailed breakdown? (y/n): ")
			if !scanner.Scan() {
				break
			}
			if answer := strings.ToLower(strings.TrimSpace(scanner.Text())); answer == "y" || answer == "yes" {
				fmt.Println("\n📊 Detailed Breakdown:")
				fmt.Printf("Rounds: %d | Tokens used: %d\n", outcome.Rounds, outcome.Usage.TotalTokens)
				for _, use := range outcome.ToolsUsed {
					if use.Failed {
						fmt.Printf("  - %s(%s) -> error: %s\n", use.Tool, use.Arguments, use.Result)
					} else {
						fmt.Printf("  - %s(%s) = %s\n", use.Tool, use.Arguments, use.Result)
					}
				}
			}
		}
		fmt.Println()
	}
}

// newClientForModel builds the provider client matching the model prefix,
// validating that the provider's API key is present.
func newClientForModel(modelID string) (llm.LLMClient, error) {
	switch {
	case strings.HasPrefix(modelID, "gpt"):
		return llm.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"))
	case strings.HasPrefix(modelID, "claude"):
		return llm.NewAnthropicClient(os.Getenv("ANTHROPIC_API_KEY"))
	case strings.HasPrefix(modelID, "gemini"):
		return llm.NewGeminiClient(os.Getenv("GEMINI_API_KEY"), modelID)
	case strings.HasPrefix(modelID, "mistral"):
		return llm.NewMistralClient(os.Getenv("MISTRAL_API_KEY"))
	}
	return nil, fmt.Errorf("unknown model provider for %q", modelID)
}
