package llm

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/8bitGames/auto-contract/internal/config"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	defaultGeminiModel   = "gemini-2.5-flash"

	// Token ceilings per operation. Document parsing returns an entire HTML
	// template and needs far more headroom than a single clause rewrite.
	draftMaxTokens = 8192
	parseMaxTokens = 32768

	// Drafting uses a slightly higher temperature than editing; edits should
	// stay close to the existing text.
	draftTemperature = 0.5
	editTemperature  = 0.3
)

type geminiDrafter struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	cache   *contextCache
}

func newGeminiDrafter(cfg *config.Config) *geminiDrafter {
	model := cfg.LLM.Model
	if model == "" {
		model = defaultGeminiModel
	}
	baseURL := cfg.LLM.BaseURL
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	return &geminiDrafter{
		apiKey:  cfg.LLM.APIKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
		cache:   newContextCache(),
	}
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *geminiBlob `json:"inlineData,omitempty"`
}

type geminiBlob struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// generate sends the parts to the generateContent endpoint and returns the
// first candidate's text.
func (g *geminiDrafter) generate(ctx context.Context, parts []geminiPart, temperature float64, maxTokens int) (string, error) {
	body := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: parts}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     temperature,
			MaxOutputTokens: maxTokens,
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API returned %d: %s", resp.StatusCode, respBody)
	}

	var apiResp geminiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(apiResp.Candidates) == 0 || len(apiResp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	text := strings.TrimSpace(apiResp.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func (g *geminiDrafter) DraftContract(ctx context.Context, userRequest string) (*ContractDraft, error) {
	prompt, err := renderPrompt("draft_contract", promptData{UserRequest: userRequest})
	if err != nil {
		return nil, err
	}
	raw, err := g.generate(ctx, []geminiPart{{Text: prompt}}, draftTemperature, draftMaxTokens)
	if err != nil {
		return nil, err
	}
	var draft ContractDraft
	if err := decodeJSON(raw, contractSchema, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (g *geminiDrafter) DraftTemplate(ctx context.Context, userRequest string) (*TemplateDraft, error) {
	prompt, err := renderPrompt("draft_template", promptData{UserRequest: userRequest})
	if err != nil {
		return nil, err
	}
	raw, err := g.generate(ctx, []geminiPart{{Text: prompt}}, draftTemperature, draftMaxTokens)
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

func (g *geminiDrafter) EditSection(ctx context.Context, req EditSectionRequest) (*EditSectionResult, error) {
	docContext, cacheKey := g.cache.resolve(req)
	prompt, err := renderPrompt("edit_section", promptData{
		SectionTitle:   req.SectionTitle,
		CurrentContent: req.CurrentContent,
		UserRequest:    req.UserRequest,
		Context:        docContext,
	})
	if err != nil {
		return nil, err
	}
	content, err := g.generate(ctx, []geminiPart{{Text: prompt}}, editTemperature, draftMaxTokens)
	if err != nil {
		return nil, err
	}
	return &EditSectionResult{Content: content, CacheKey: cacheKey}, nil
}

func (g *geminiDrafter) ModifyText(ctx context.Context, selectedText, userRequest, surrounding string) (string, error) {
	prompt, err := renderPrompt("modify_text", promptData{
		SelectedText: selectedText,
		UserRequest:  userRequest,
		Surrounding:  surrounding,
	})
	if err != nil {
		return "", err
	}
	return g.generate(ctx, []geminiPart{{Text: prompt}}, editTemperature, draftMaxTokens)
}

func (g *geminiDrafter) ParseDocument(ctx context.Context, pdf []byte) (*TemplateDraft, error) {
	prompt, err := renderPrompt("parse_document", promptData{})
	if err != nil {
		return nil, err
	}
	parts := []geminiPart{
		{InlineData: &geminiBlob{
			MIMEType: "application/pdf",
			Data:     base64.StdEncoding.EncodeToString(pdf),
		}},
		{Text: prompt},
	}
	raw, err := g.generate(ctx, parts, editTemperature, parseMaxTokens)
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
