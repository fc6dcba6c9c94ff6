package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/8bitGames/auto-contract/internal/auth"
	"github.com/8bitGames/auto-contract/internal/builtin"
	"github.com/8bitGames/auto-contract/internal/metrics"
	"github.com/8bitGames/auto-contract/internal/render"
	"github.com/8bitGames/auto-contract/internal/store"
)

// templatesHandler provides REST handlers for template management. Built-in
// templates are merged into listings and resolvable by id, but are read-only.
type templatesHandler struct {
	templates *store.TemplateStore
}

func registerTemplateRoutes(r chi.Router, deps Deps) {
	h := &templatesHandler{templates: deps.Templates}
	r.Get("/templates", h.List)
	r.Post("/templates", h.Create)
	r.Get("/templates/{id}", h.Get)
	r.Put("/templates/{id}", h.Update)
	r.Delete("/templates/{id}", h.Delete)
	r.Get("/templates/{id}/preview", h.Preview)
	r.Get("/templates/{id}/placeholders", h.Placeholders)
}

func builtinResponse(t *builtin.Template) *TemplateResponse {
	return &TemplateResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Sections:    t.Sections,
		Builtin:     true,
	}
}

func templateResponse(t *store.Template) *TemplateResponse {
	created := t.CreatedAt
	updated := t.UpdatedAt
	return &TemplateResponse{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Sections:     t.Sections,
		HTMLTemplate: t.HTMLTemplate,
		Source:       t.Source,
		CreatedAt:    &created,
		UpdatedAt:    &updated,
	}
}

// List returns the built-in templates followed by the caller's stored ones.
// GET /api/v1/templates
//
// @Summary      List templates
// @Description  Built-in templates first, then the caller's stored templates by recency.
// @Tags         Templates
// @Produce      json
// @Success      200  {object}  TemplateListResponse
// @Failure      401  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /templates [get]
func (h *templatesHandler) List(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	resp := &TemplateListResponse{}
	for _, t := range builtin.All() {
		resp.Templates = append(resp.Templates, builtinResponse(t))
	}

	stored, err := h.templates.ListByOwner(r.Context(), user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	for _, t := range stored {
		resp.Templates = append(resp.Templates, templateResponse(t))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Create stores a new template owned by the caller.
// POST /api/v1/templates
//
// @Summary      Create a template
// @Description  Stores a template. When html_template is omitted a scaffold is generated from the sections.
// @Tags         Templates
// @Accept       json
// @Produce      json
// @Param        body  body      CreateTemplateRequest  true  "Template to create"
// @Success      201   {object}  TemplateResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /templates [post]
func (h *templatesHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	var req CreateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required", "BAD_REQUEST")
		return
	}
	if err := store.ValidateSections(req.Sections); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "BAD_REQUEST")
		return
	}

	html := req.HTMLTemplate
	if html == "" {
		html = render.DefaultTemplate(req.Title, req.Sections)
	}
	html = render.Sanitize(html)

	t, err := h.templates.Create(r.Context(), user.ID, req.Title, req.Description, req.Sections, html, req.Source)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.TemplatesTotal.Inc()
	writeJSON(w, http.StatusCreated, templateResponse(t))
}

// resolve loads a stored template owned by the caller, or nil if id names a
// built-in. Writes the error response itself on failure.
func (h *templatesHandler) resolve(w http.ResponseWriter, r *http.Request) (*store.Template, *builtin.Template, bool) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return nil, nil, false
	}

	id := chi.URLParam(r, "id")
	if bt := builtin.ByID(id); bt != nil {
		return nil, bt, true
	}

	t, err := h.templates.GetByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "template not found", "NOT_FOUND")
		return nil, nil, false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return nil, nil, false
	}
	// Non-owners get the same 404 as a missing row.
	if t.OwnerID != user.ID && !user.IsAdmin() {
		writeError(w, http.StatusNotFound, "template not found", "NOT_FOUND")
		return nil, nil, false
	}
	return t, nil, true
}

// Get returns a single template.
// GET /api/v1/templates/{id}
//
// @Summary      Get a template
// @Tags         Templates
// @Produce      json
// @Param        id   path      string  true  "Template ID"
// @Success      200  {object}  TemplateResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /templates/{id} [get]
func (h *templatesHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, bt, ok := h.resolve(w, r)
	if !ok {
		return
	}
	if bt != nil {
		writeJSON(w, http.StatusOK, builtinResponse(bt))
		return
	}
	writeJSON(w, http.StatusOK, templateResponse(t))
}

// Update replaces a stored template's editable fields.
// PUT /api/v1/templates/{id}
//
// @Summary      Update a template
// @Tags         Templates
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Template ID"
// @Param        body  body      UpdateTemplateRequest  true  "New template content"
// @Success      200   {object}  TemplateResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /templates/{id} [put]
func (h *templatesHandler) Update(w http.ResponseWriter, r *http.Request) {
	t, bt, ok := h.resolve(w, r)
	if !ok {
		return
	}
	if bt != nil {
		writeError(w, http.StatusBadRequest, "built-in templates are read-only", "BUILTIN_READONLY")
		return
	}

	var req UpdateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required", "BAD_REQUEST")
		return
	}
	if err := store.ValidateSections(req.Sections); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "BAD_REQUEST")
		return
	}

	updated, err := h.templates.Update(r.Context(), t.ID, req.Title, req.Description, req.Sections, render.Sanitize(req.HTMLTemplate))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, templateResponse(updated))
}

// Delete removes a stored template.
// DELETE /api/v1/templates/{id}
//
// @Summary      Delete a template
// @Tags         Templates
// @Produce      json
// @Param        id  path  string  true  "Template ID"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /templates/{id} [delete]
func (h *templatesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	t, bt, ok := h.resolve(w, r)
	if !ok {
		return
	}
	if bt != nil {
		writeError(w, http.StatusBadRequest, "built-in templates are read-only", "BUILTIN_READONLY")
		return
	}

	if err := h.templates.Delete(r.Context(), t.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	metrics.TemplatesTotal.Dec()
	w.WriteHeader(http.StatusNoContent)
}

// Preview renders the template with generated sample data.
// GET /api/v1/templates/{id}/preview
//
// @Summary      Preview a template
// @Description  Renders the template body with type-appropriate sample data. Missing values show the fallback marker.
// @Tags         Templates
// @Produce      json
// @Param        id   path      string  true  "Template ID"
// @Success      200  {object}  PreviewResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /templates/{id}/preview [get]
func (h *templatesHandler) Preview(w http.ResponseWriter, r *http.Request) {
	t, bt, ok := h.resolve(w, r)
	if !ok {
		return
	}

	var html string
	if bt != nil {
		html = bt.Render(render.SampleData(bt.Fields()))
	} else {
		html = render.Compile(t.HTMLTemplate)(render.SampleData(t.Fields()))
	}

	metrics.PreviewsTotal.WithLabelValues("template").Inc()
	writeJSON(w, http.StatusOK, PreviewResponse{HTML: html})
}

// Placeholders lists the {{id}} placeholders in the template body.
// GET /api/v1/templates/{id}/placeholders
//
// @Summary      List template placeholders
// @Description  Placeholder ids in first-occurrence order. For built-ins this is the declared field list.
// @Tags         Templates
// @Produce      json
// @Param        id   path      string  true  "Template ID"
// @Success      200  {object}  PlaceholdersResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /templates/{id}/placeholders [get]
func (h *templatesHandler) Placeholders(w http.ResponseWriter, r *http.Request) {
	t, bt, ok := h.resolve(w, r)
	if !ok {
		return
	}

	resp := PlaceholdersResponse{Placeholders: []string{}}
	if bt != nil {
		for _, f := range bt.Fields() {
			resp.Placeholders = append(resp.Placeholders, f.ID)
		}
	} else if ids := render.Placeholders(t.HTMLTemplate); ids != nil {
		resp.Placeholders = ids
	}
	writeJSON(w, http.StatusOK, resp)
}
