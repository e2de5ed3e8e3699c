// In file: internal/reason/session.go
package reason

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/dileep-u-k/tool-reasoner/internal/api"
	"github.com/dileep-u-k/tool-reasoner/internal/llm"
	"github.com/dileep-u-k/tool-reasoner/internal/tools"
)

// State identifies where a session is in its lifecycle. A session moves
// Idle -> AwaitingInitialResponse -> ExtractingCalls -> Dispatching ->
// AwaitingFinalResponse -> (back to ExtractingCalls, bounded) -> Done,
// with StateError terminal on an unrecoverable model-communication
// failure.
type State int

const (
	StateIdle State = iota
	StateAwaitingInitialResponse
	StateExtractingCalls
	StateDispatching
	StateAwaitingFinalResponse
	StateDone
	StateError
)

// DefaultMaxToolRounds bounds how many extract/dispatch/re-prompt cycles a
// session may run. The reference behavior needs at most one, but nothing in
// the text protocol stops a model from requesting tools forever; after the
// cap the latest model text is taken verbatim as the answer.
const DefaultMaxToolRounds = 3

// Config controls one session's generation and looping behavior.
type Config struct {
	Model         string
	MaxToolRounds int
	MaxTokens     int
	Temperature   *float32
}

// Outcome is everything a session produces for one query.
type Outcome struct {
	Answer string
	// Rounds is the number of tool dispatch rounds that ran.
	Rounds    int
	ToolsUsed []api.ToolUse
	Usage     api.Usage
	// Transcript is the ordered prompt/response record, in wall-clock
	// exchange order.
	Transcript []llm.Message
}

// Session orchestrates the two-phase exchange with the model for a single
// query: initial prompt with the tool catalog, extraction, dispatch,
// follow-up prompt with results, final extraction, answer assembly. A
// session is single-use and owns its transcript; nothing about it is
// shared between queries except the read-only registry behind the
// dispatcher.
type Session struct {
	client     llm.LLMClient
	dispatcher *Dispatcher
	catalog    []tools.CatalogEntry
	cfg        Config

	state      State
	transcript []llm.Message
	usage      api.Usage
}

// NewSession creates a session over a ready-to-use model client and the
// shared tool registry.
func NewSession(client llm.LLMClient, registry *tools.Registry, cfg Config) *Session {
	if cfg.MaxToolRounds <= 0 {
		cfg.MaxToolRounds = DefaultMaxToolRounds
	}
	return &Session{
		client:     client,
		dispatcher: NewDispatcher(registry),
		catalog:    registry.Catalog(),
		cfg:        cfg,
		state:      StateIdle,
	}
}

// State reports the session's current lifecycle state.
func (s *Session) State() State { return s.state }

// Run processes one query to completion. Tool-level failures are recovered
// into the follow-up prompt; only model-communication failure (after the
// client's internal retries) aborts the session, in which case no partial
// answer is fabricated.
func (s *Session) Run(ctx context.Context, query string) (*Outcome, error) {
	outcome := &Outcome{}

	s.state = StateAwaitingInitialResponse
	text, err := s.exchange(ctx, initialPrompt(query, s.catalog))
	if err != nil {
		s.state = StateError
		return nil, fmt.Errorf("initial model exchange failed: %w", err)
	}

	for {
		s.state = StateExtractingCalls
		requests := Extract(text)
		if len(requests) == 0 {
			// The model answered directly; no tool round needed.
			break
		}
		if outcome.Rounds >= s.cfg.MaxToolRounds {
			log.Printf("⚠️ Tool round cap (%d) reached; answering from latest text.", s.cfg.MaxToolRounds)
			break
		}

		s.state = StateDispatching
		results, err := s.dispatcher.Dispatch(ctx, requests)
		if err != nil {
			s.state = StateError
			return nil, fmt.Errorf("dispatch cancelled: %w", err)
		}
		outcome.Rounds++
		for _, res := range results {
			use := api.ToolUse{Tool: res.Request.Name, Arguments: res.Request.RawArgs}
			if res.Err != nil {
				use.Result = res.Err.Error()
				use.Failed = true
			} else {
				use.Result = res.Value.String()
			}
			outcome.ToolsUsed = append(outcome.ToolsUsed, use)
		}

		s.state = StateAwaitingFinalResponse
		text, err = s.exchange(ctx, followUpPrompt(query, text, results))
		if err != nil {
			s.state = StateError
			return nil, fmt.Errorf("follow-up model exchange failed: %w", err)
		}
	}

	s.state = StateDone
	outcome.Answer = finalAnswer(text)
	outcome.Usage = s.usage
	outcome.Transcript = s.transcript
	return outcome, nil
}

// exchange sends one prompt, records both sides in the transcript, and
// accumulates token usage. The transcript is append-only and carried as
// conversation history on every call, so the model keeps its earlier
// reasoning in view during the follow-up.
func (s *Session) exchange(ctx context.Context, prompt string) (string, error) {
	s.transcript = append(s.transcript, llm.Message{Role: llm.RoleUser, Content: prompt})

	result, err := s.client.Generate(ctx, s.transcript, &llm.GenerationConfig{
		Model:       s.cfg.Model,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return "", err
	}

	s.transcript = append(s.transcript, llm.Message{Role: llm.RoleAssistant, Content: result.Content})
	s.usage.Add(result.Usage)
	return result.Content, nil
}

// finalAnswer selects the user-visible answer from the model's last text:
// the last non-empty line that is not itself a TOOL_CALL directive. If no
// such line exists the whole trimmed text is returned.
func finalAnswer(text string) string {
	lines := strings.Split(text, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" || strings.HasPrefix(line, "TOOL_CALL:") {
			continue
		}
		return line
	}
	return strings.TrimSpace(text)
}
