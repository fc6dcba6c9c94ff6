package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/8bitGames/auto-contract/internal/config"
)

const (
	defaultOpenAIBaseURL = "https://api.openai.com"
	defaultOpenAIModel   = "gpt-4o-mini"
)

// openaiDrafter implements Drafter against the chat-completions API. It
// covers every operation except PDF analysis, which needs multimodal input
// the completions endpoint does not take.
type openaiDrafter struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	cache   *contextCache
}

func newOpenAIDrafter(cfg *config.Config) *openaiDrafter {
	model := cfg.LLM.Model
	if model == "" {
		model = defaultOpenAIModel
	}
	baseURL := cfg.LLM.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}
	return &openaiDrafter{
		apiKey:  cfg.LLM.APIKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
		cache:   newContextCache(),
	}
}

type openaiRequest struct {
	Model       string          `json:"model"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature float64         `json:"temperature"`
	Messages    []openaiMessage `json:"messages"`
}

type openaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openaiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (o *openaiDrafter) generate(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	body := openaiRequest{
		Model:       o.model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		Messages:    []openaiMessage{{Role: "user", Content: prompt}},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := o.baseURL + "/v1/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("openai request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai API returned %d: %s", resp.StatusCode, respBody)
	}

	var apiResp openaiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(apiResp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	text := strings.TrimSpace(apiResp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func (o *openaiDrafter) DraftContract(ctx context.Context, userRequest string) (*ContractDraft, error) {
	prompt, err := renderPrompt("draft_contract", promptData{UserRequest: userRequest})
	if err != nil {
		return nil, err
	}
	raw, err := o.generate(ctx, prompt, draftTemperature, draftMaxTokens)
	if err != nil {
		return nil, err
	}
	var draft ContractDraft
	if err := decodeJSON(raw, contractSchema, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (o *openaiDrafter) DraftTemplate(ctx context.Context, userRequest string) (*TemplateDraft, error) {
	prompt, err := renderPrompt("draft_template", promptData{UserRequest: userRequest})
	if err != nil {
		return nil, err
	}
	raw, err := o.generate(ctx, prompt, draftTemperature, draftMaxTokens)
	if err != nil {
		return nil, err
	}
	var draft TemplateDraft
	if err := decodeJSON(raw, templateSchema, &draft); err != nil {
		return nil, err
	}
	normalizeTemplate(&draft)
	return &draft, nil
}

func (o *openaiDrafter) EditSection(ctx context.Context, req EditSectionRequest) (*EditSectionResult, error) {
	docContext, cacheKey := o.cache.resolve(req)
	prompt, err := renderPrompt("edit_section", promptData{
		SectionTitle:   req.SectionTitle,
		CurrentContent: req.CurrentContent,
		UserRequest:    req.UserRequest,
		Context:        docContext,
	})
	if err != nil {
		return nil, err
	}
	content, err := o.generate(ctx, prompt, editTemperature, draftMaxTokens)
	if err != nil {
		return nil, err
	}
	return &EditSectionResult{Content: content, CacheKey: cacheKey}, nil
}

func (o *openaiDrafter) ModifyText(ctx context.Context, selectedText, userRequest, surrounding string) (string, error) {
	prompt, err := renderPrompt("modify_text", promptData{
		SelectedText: selectedText,
		UserRequest:  userRequest,
		Surrounding:  surrounding,
	})
	if err != nil {
		return "", err
	}
	return o.generate(ctx, prompt, editTemperature, draftMaxTokens)
}

func (o *openaiDrafter) ParseDocument(ctx context.Context, pdf []byte) (*TemplateDraft, error) {
	return nil, ErrUnsupported
}
