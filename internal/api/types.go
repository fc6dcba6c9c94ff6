package api

import (
	"time"

	"github.com/8bitGames/auto-contract/internal/store"
)

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// --- Template types ---

// CreateTemplateRequest is the request body for POST /api/v1/templates.
// HTMLTemplate may be omitted; a default scaffold is generated from the
// section declarations.
type CreateTemplateRequest struct {
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	Sections     []store.Section `json:"sections"`
	HTMLTemplate string          `json:"html_template,omitempty"`
	Source       string          `json:"source,omitempty"`
}

// UpdateTemplateRequest is the request body for PUT /api/v1/templates/{id}.
type UpdateTemplateRequest struct {
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	Sections     []store.Section `json:"sections"`
	HTMLTemplate string          `json:"html_template"`
}

// TemplateResponse is the JSON representation of a template. Built-in
// templates carry Builtin=true and omit the HTML body, since they render
// through code.
type TemplateResponse struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Sections     []store.Section `json:"sections"`
	HTMLTemplate string          `json:"html_template,omitempty"`
	Source       string          `json:"source,omitempty"`
	Builtin      bool            `json:"builtin"`
	CreatedAt    *time.Time      `json:"created_at,omitempty"`
	UpdatedAt    *time.Time      `json:"updated_at,omitempty"`
}

// TemplateListResponse is the response for the template list endpoint.
type TemplateListResponse struct {
	Templates []*TemplateResponse `json:"templates"`
}

// PlaceholdersResponse lists the {{id}} placeholders found in a template
// body, in first-occurrence order.
type PlaceholdersResponse struct {
	Placeholders []string `json:"placeholders"`
}

// PreviewResponse carries rendered HTML.
type PreviewResponse struct {
	HTML string `json:"html"`
}

// --- Contract types ---

// CreateContractRequest is the request body for POST /api/v1/contracts.
type CreateContractRequest struct {
	Title     string                  `json:"title"`
	Sections  []store.ContractSection `json:"sections"`
	Variables map[string]string       `json:"variables,omitempty"`
}

// UpdateContractRequest is the request body for PUT /api/v1/contracts/{id}.
type UpdateContractRequest struct {
	Title     string                  `json:"title"`
	Sections  []store.ContractSection `json:"sections"`
	Variables map[string]string       `json:"variables,omitempty"`
}

// ContractResponse is the JSON representation of a contract.
type ContractResponse struct {
	ID        string                  `json:"id"`
	Title     string                  `json:"title"`
	Sections  []store.ContractSection `json:"sections"`
	Variables map[string]string       `json:"variables"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// ContractListResponse is the response for the contract list endpoint.
type ContractListResponse struct {
	Contracts []*ContractResponse `json:"contracts"`
}

// --- AI types ---

// DraftRequest is the request body for the AI contract and template
// drafting endpoints.
type DraftRequest struct {
	UserRequest string `json:"user_request"`
}

// EditSectionRequest is the request body for POST /api/v1/ai/sections/edit.
// FullContract ships the whole document on the first edit; subsequent edits
// pass the returned CacheKey instead.
type EditSectionRequest struct {
	SectionTitle   string                `json:"section_title"`
	CurrentContent string                `json:"current_content"`
	UserRequest    string                `json:"user_request"`
	FullContract   *FullContractPayload  `json:"full_contract,omitempty"`
	CacheKey       string                `json:"cache_key,omitempty"`
}

// FullContractPayload is the contract document attached to a section edit.
type FullContractPayload struct {
	Title     string                  `json:"title"`
	Sections  []store.ContractSection `json:"sections"`
	Variables map[string]string       `json:"variables,omitempty"`
}

// EditSectionResponse carries the rewritten section content and the cache
// key for follow-up edits.
type EditSectionResponse struct {
	Content  string `json:"content"`
	CacheKey string `json:"cache_key,omitempty"`
}

// ModifyTextRequest is the request body for POST /api/v1/ai/text/modify.
type ModifyTextRequest struct {
	SelectedText string `json:"selected_text"`
	UserRequest  string `json:"user_request"`
	Context      string `json:"context,omitempty"`
}

// ModifyTextResponse carries the rewritten text fragment.
type ModifyTextResponse struct {
	Text string `json:"text"`
}

// --- Render types ---

// RenderPDFRequest is the request body for POST /api/v1/render/pdf. Either
// TemplateID (with Data) or raw HTML must be provided.
type RenderPDFRequest struct {
	TemplateID string            `json:"template_id,omitempty"`
	Data       map[string]string `json:"data,omitempty"`
	HTML       string            `json:"html,omitempty"`
}

// --- User types ---

// UserResponse is the JSON representation of a user account.
type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserListResponse is the response for the user list endpoint.
type UserListResponse struct {
	Users []*UserResponse `json:"users"`
}

// UpdateUserRoleRequest is the request body for PUT /api/v1/users/{id}/role.
type UpdateUserRoleRequest struct {
	Role string `json:"role"`
}

// --- Token types ---

// CreateTokenRequest is the request body for POST /api/v1/tokens.
type CreateTokenRequest struct {
	Name      string     `json:"name"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// TokenResponse is the JSON representation of an API token. The plaintext
// Token is only present in the creation response.
type TokenResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Token      string     `json:"token,omitempty"`
	LastUsedAt *time.Time `json:"last_used_at"`
	ExpiresAt  *time.Time `json:"expires_at"`
	CreatedAt  time.Time  `json:"created_at"`
	RevokedAt  *time.Time `json:"revoked_at"`
}

// TokenListResponse is the response for the token list endpoint.
type TokenListResponse struct {
	Tokens []*TokenResponse `json:"tokens"`
}
