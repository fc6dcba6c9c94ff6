package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/8bitGames/auto-contract/internal/auth"
	"github.com/8bitGames/auto-contract/internal/metrics"
	"github.com/8bitGames/auto-contract/internal/render"
	"github.com/8bitGames/auto-contract/internal/store"
)

// contractsHandler provides REST handlers for contract management.
type contractsHandler struct {
	contracts *store.ContractStore
}

func registerContractRoutes(r chi.Router, deps Deps) {
	h := &contractsHandler{contracts: deps.Contracts}
	r.Get("/contracts", h.List)
	r.Post("/contracts", h.Create)
	r.Get("/contracts/{id}", h.Get)
	r.Put("/contracts/{id}", h.Update)
	r.Delete("/contracts/{id}", h.Delete)
	r.Get("/contracts/{id}/preview", h.Preview)
}

func contractResponse(c *store.Contract) *ContractResponse {
	vars := map[string]string(c.Variables)
	if vars == nil {
		vars = map[string]string{}
	}
	return &ContractResponse{
		ID:        c.ID,
		Title:     c.Title,
		Sections:  c.Sections,
		Variables: vars,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// List returns the caller's contracts by recency.
// GET /api/v1/contracts
//
// @Summary      List contracts
// @Tags         Contracts
// @Produce      json
// @Success      200  {object}  ContractListResponse
// @Failure      401  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /contracts [get]
func (h *contractsHandler) List(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	contracts, err := h.contracts.ListByOwner(r.Context(), user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	resp := &ContractListResponse{Contracts: make([]*ContractResponse, 0, len(contracts))}
	for _, c := range contracts {
		resp.Contracts = append(resp.Contracts, contractResponse(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create stores a new contract owned by the caller. Section content keeps
// its [variable] placeholders; they resolve at preview/render time.
// POST /api/v1/contracts
//
// @Summary      Create a contract
// @Tags         Contracts
// @Accept       json
// @Produce      json
// @Param        body  body      CreateContractRequest  true  "Contract to create"
// @Success      201   {object}  ContractResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /contracts [post]
func (h *contractsHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	var req CreateContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required", "BAD_REQUEST")
		return
	}
	if len(req.Sections) == 0 {
		writeError(w, http.StatusBadRequest, "at least one section is required", "BAD_REQUEST")
		return
	}

	c, err := h.contracts.Create(r.Context(), user.ID, req.Title, req.Sections, req.Variables)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.ContractsTotal.Inc()
	writeJSON(w, http.StatusCreated, contractResponse(c))
}

// resolve loads a contract owned by the caller. Writes the error response
// itself on failure.
func (h *contractsHandler) resolve(w http.ResponseWriter, r *http.Request) (*store.Contract, bool) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return nil, false
	}

	c, err := h.contracts.GetByID(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "contract not found", "NOT_FOUND")
		return nil, false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return nil, false
	}
	if c.OwnerID != user.ID && !user.IsAdmin() {
		writeError(w, http.StatusNotFound, "contract not found", "NOT_FOUND")
		return nil, false
	}
	return c, true
}

// Get returns a single contract.
// GET /api/v1/contracts/{id}
//
// @Summary      Get a contract
// @Tags         Contracts
// @Produce      json
// @Param        id   path      string  true  "Contract ID"
// @Success      200  {object}  ContractResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /contracts/{id} [get]
func (h *contractsHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, ok := h.resolve(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, contractResponse(c))
}

// Update replaces a contract's title, sections, and variables.
// PUT /api/v1/contracts/{id}
//
// @Summary      Update a contract
// @Tags         Contracts
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Contract ID"
// @Param        body  body      UpdateContractRequest  true  "New contract content"
// @Success      200   {object}  ContractResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /contracts/{id} [put]
func (h *contractsHandler) Update(w http.ResponseWriter, r *http.Request) {
	c, ok := h.resolve(w, r)
	if !ok {
		return
	}

	var req UpdateContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required", "BAD_REQUEST")
		return
	}
	if len(req.Sections) == 0 {
		writeError(w, http.StatusBadRequest, "at least one section is required", "BAD_REQUEST")
		return
	}

	updated, err := h.contracts.Update(r.Context(), c.ID, req.Title, req.Sections, req.Variables)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, contractResponse(updated))
}

// Delete removes a contract.
// DELETE /api/v1/contracts/{id}
//
// @Summary      Delete a contract
// @Tags         Contracts
// @Produce      json
// @Param        id  path  string  true  "Contract ID"
// @Success      204
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /contracts/{id} [delete]
func (h *contractsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	c, ok := h.resolve(w, r)
	if !ok {
		return
	}
	if err := h.contracts.Delete(r.Context(), c.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	metrics.ContractsTotal.Dec()
	w.WriteHeader(http.StatusNoContent)
}

// Preview renders the contract document with its variables substituted.
// GET /api/v1/contracts/{id}/preview
//
// @Summary      Preview a contract
// @Description  Section content with [variable] placeholders resolved; unset variables keep the bracket text.
// @Tags         Contracts
// @Produce      json
// @Param        id   path      string  true  "Contract ID"
// @Success      200  {object}  PreviewResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /contracts/{id}/preview [get]
func (h *contractsHandler) Preview(w http.ResponseWriter, r *http.Request) {
	c, ok := h.resolve(w, r)
	if !ok {
		return
	}
	metrics.PreviewsTotal.WithLabelValues("contract").Inc()
	writeJSON(w, http.StatusOK, PreviewResponse{HTML: render.Contract(c)})
}
