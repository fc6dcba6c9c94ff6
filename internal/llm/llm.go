// Package llm talks to the generative-AI drafting backends. Providers turn a
// natural-language request into structured contract or template JSON, edit
// individual sections, rewrite selected text, and convert uploaded PDF
// contracts into reusable templates.
package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/8bitGames/auto-contract/internal/config"
	"github.com/8bitGames/auto-contract/internal/store"
)

var (
	// ErrMalformedResponse is returned when the model output is not valid
	// JSON after fence stripping, or fails schema validation. The caller
	// surfaces a retry prompt; it is never fatal.
	ErrMalformedResponse = errors.New("AI response could not be parsed")

	// ErrEmptyResponse is returned when the model produced no text.
	ErrEmptyResponse = errors.New("empty response from AI")

	// ErrUnsupported is returned for operations the configured provider
	// cannot perform (e.g. PDF analysis outside gemini).
	ErrUnsupported = errors.New("operation not supported by the configured LLM provider")
)

// ContractDraft is the structured contract returned by the drafting service.
type ContractDraft struct {
	Title     string                  `json:"title"`
	Sections  []store.ContractSection `json:"sections"`
	Variables map[string]string       `json:"variables,omitempty"`
}

// TemplateDraft is the structured template returned by the drafting service.
type TemplateDraft struct {
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Sections     []store.Section `json:"sections"`
	HTMLTemplate string          `json:"htmlTemplate"`
}

// EditSectionRequest asks for a single contract section to be rewritten.
// FullContract, when set, is summarized into a drafting context that is
// cached under a content-hash key; follow-up requests pass CacheKey instead
// of re-sending the whole document.
type EditSectionRequest struct {
	SectionTitle   string
	CurrentContent string
	UserRequest    string
	FullContract   *ContractDraft
	CacheKey       string
}

// EditSectionResult carries the rewritten content and the cache key the
// client should send on subsequent edits of the same contract.
type EditSectionResult struct {
	Content  string
	CacheKey string
}

// Drafter generates and edits contract documents via an LLM provider.
type Drafter interface {
	DraftContract(ctx context.Context, userRequest string) (*ContractDraft, error)
	DraftTemplate(ctx context.Context, userRequest string) (*TemplateDraft, error)
	EditSection(ctx context.Context, req EditSectionRequest) (*EditSectionResult, error)
	ModifyText(ctx context.Context, selectedText, userRequest, surrounding string) (string, error)
	ParseDocument(ctx context.Context, pdf []byte) (*TemplateDraft, error)
}

// New creates a Drafter based on the config. Returns nil when LLMProvider is
// unset, meaning the AI endpoints are disabled.
func New(cfg *config.Config) (Drafter, error) {
	switch cfg.LLM.Provider {
	case "":
		return nil, nil
	case "gemini":
		return newGeminiDrafter(cfg), nil
	case "openai", "openai-compatible":
		return newOpenAIDrafter(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %q", cfg.LLM.Provider)
	}
}
