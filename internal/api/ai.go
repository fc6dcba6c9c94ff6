package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/8bitGames/auto-contract/internal/llm"
	"github.com/8bitGames/auto-contract/internal/metrics"
	"github.com/8bitGames/auto-contract/internal/pdf"
)

// maxUploadBytes bounds PDF uploads on the document-analysis endpoint.
const maxUploadBytes = 20 << 20 // 20 MiB

// aiHandler exposes the LLM drafting operations. All handlers validate
// required inputs before any upstream call, and map upstream failures to 502
// so clients can distinguish "fix your request" from "try again".
type aiHandler struct {
	drafter llm.Drafter
}

func registerAIRoutes(r chi.Router, deps Deps) {
	h := &aiHandler{drafter: deps.Drafter}
	r.Post("/ai/contracts", h.DraftContract)
	r.Post("/ai/templates", h.DraftTemplate)
	r.Post("/ai/sections/edit", h.EditSection)
	r.Post("/ai/text/modify", h.ModifyText)
	r.Post("/ai/documents/parse", h.ParseDocument)
}

// available reports whether an LLM backend is configured, writing the 503
// response if not.
func (h *aiHandler) available(w http.ResponseWriter) bool {
	if h.drafter == nil {
		writeError(w, http.StatusServiceUnavailable, "AI drafting is not configured", "AI_UNAVAILABLE")
		return false
	}
	return true
}

// writeUpstreamError maps drafting errors onto API responses.
func writeUpstreamError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, llm.ErrMalformedResponse):
		writeError(w, http.StatusBadGateway, "AI 응답을 파싱할 수 없습니다. 다시 시도해주세요.", "AI_MALFORMED_RESPONSE")
	case errors.Is(err, llm.ErrUnsupported):
		writeError(w, http.StatusNotImplemented, err.Error(), "AI_UNSUPPORTED")
	default:
		writeError(w, http.StatusBadGateway, "AI request failed", "AI_UPSTREAM_ERROR")
	}
}

// observe records the AI call metrics for one operation.
func observe(operation string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.AIRequestsTotal.WithLabelValues(operation, status).Inc()
	metrics.AIRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// DraftContract turns a natural-language request into a structured contract.
// POST /api/v1/ai/contracts
//
// @Summary      Draft a contract with AI
// @Description  Generates a titled, sectioned contract with [variable] placeholders from the user's request.
// @Tags         AI
// @Accept       json
// @Produce      json
// @Param        body  body      DraftRequest  true  "Drafting request"
// @Success      200   {object}  llm.ContractDraft
// @Failure      400   {object}  ErrorResponse
// @Failure      502   {object}  ErrorResponse
// @Failure      503   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /ai/contracts [post]
func (h *aiHandler) DraftContract(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}

	var req DraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if req.UserRequest == "" {
		writeError(w, http.StatusBadRequest, "계약서 요구사항을 입력해주세요.", "BAD_REQUEST")
		return
	}

	start := time.Now()
	draft, err := h.drafter.DraftContract(r.Context(), req.UserRequest)
	observe("draft_contract", start, err)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// DraftTemplate turns a natural-language request into a reusable template.
// POST /api/v1/ai/templates
//
// @Summary      Draft a template with AI
// @Description  Generates section/field declarations plus an HTML body with {{field}} placeholders.
// @Tags         AI
// @Accept       json
// @Produce      json
// @Param        body  body      DraftRequest  true  "Drafting request"
// @Success      200   {object}  llm.TemplateDraft
// @Failure      400   {object}  ErrorResponse
// @Failure      502   {object}  ErrorResponse
// @Failure      503   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /ai/templates [post]
func (h *aiHandler) DraftTemplate(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}

	var req DraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if req.UserRequest == "" {
		writeError(w, http.StatusBadRequest, "요청 내용이 필요합니다.", "BAD_REQUEST")
		return
	}

	start := time.Now()
	draft, err := h.drafter.DraftTemplate(r.Context(), req.UserRequest)
	observe("draft_template", start, err)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// EditSection rewrites one contract section per the user's request.
// POST /api/v1/ai/sections/edit
//
// @Summary      Edit a contract section with AI
// @Description  Rewrites a single section. Send full_contract on the first edit; reuse the returned cache_key afterwards.
// @Tags         AI
// @Accept       json
// @Produce      json
// @Param        body  body      EditSectionRequest  true  "Section edit request"
// @Success      200   {object}  EditSectionResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      502   {object}  ErrorResponse
// @Failure      503   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /ai/sections/edit [post]
func (h *aiHandler) EditSection(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}

	var req EditSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if req.SectionTitle == "" || req.CurrentContent == "" || req.UserRequest == "" {
		writeError(w, http.StatusBadRequest, "필수 파라미터가 누락되었습니다.", "BAD_REQUEST")
		return
	}

	editReq := llm.EditSectionRequest{
		SectionTitle:   req.SectionTitle,
		CurrentContent: req.CurrentContent,
		UserRequest:    req.UserRequest,
		CacheKey:       req.CacheKey,
	}
	if req.FullContract != nil {
		editReq.FullContract = &llm.ContractDraft{
			Title:     req.FullContract.Title,
			Sections:  req.FullContract.Sections,
			Variables: req.FullContract.Variables,
		}
	}

	start := time.Now()
	result, err := h.drafter.EditSection(r.Context(), editReq)
	observe("edit_section", start, err)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, EditSectionResponse{Content: result.Content, CacheKey: result.CacheKey})
}

// ModifyText rewrites a selected text fragment.
// POST /api/v1/ai/text/modify
//
// @Summary      Modify selected text with AI
// @Tags         AI
// @Accept       json
// @Produce      json
// @Param        body  body      ModifyTextRequest  true  "Text modification request"
// @Success      200   {object}  ModifyTextResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      502   {object}  ErrorResponse
// @Failure      503   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /ai/text/modify [post]
func (h *aiHandler) ModifyText(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}

	var req ModifyTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if req.SelectedText == "" || req.UserRequest == "" {
		writeError(w, http.StatusBadRequest, "필수 파라미터가 누락되었습니다.", "BAD_REQUEST")
		return
	}

	start := time.Now()
	text, err := h.drafter.ModifyText(r.Context(), req.SelectedText, req.UserRequest, req.Context)
	observe("modify_text", start, err)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ModifyTextResponse{Text: text})
}

// ParseDocument analyzes an uploaded PDF contract and returns a reusable
// template draft.
// POST /api/v1/ai/documents/parse
//
// @Summary      Parse a PDF contract into a template
// @Description  Multipart upload, field name "file". PDF only; the document is validated before analysis.
// @Tags         AI
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "PDF contract"
// @Success      200   {object}  llm.TemplateDraft
// @Failure      400   {object}  ErrorResponse
// @Failure      501   {object}  ErrorResponse
// @Failure      502   {object}  ErrorResponse
// @Failure      503   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /ai/documents/parse [post]
func (h *aiHandler) ParseDocument(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "파일이 필요합니다.", "BAD_REQUEST")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "파일이 필요합니다.", "BAD_REQUEST")
		return
	}
	defer file.Close()

	if ct := header.Header.Get("Content-Type"); ct != "" && ct != "application/pdf" {
		writeError(w, http.StatusBadRequest, "PDF 파일만 지원됩니다.", "BAD_REQUEST")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "파일을 읽을 수 없습니다.", "BAD_REQUEST")
		return
	}
	if err := pdf.Validate(data); err != nil {
		writeError(w, http.StatusBadRequest, "PDF 파일만 지원됩니다.", "BAD_REQUEST")
		return
	}

	start := time.Now()
	draft, err := h.drafter.ParseDocument(r.Context(), data)
	observe("parse_document", start, err)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}
