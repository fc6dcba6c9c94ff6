package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/8bitGames/auto-contract/internal/auth"
	"github.com/8bitGames/auto-contract/internal/builtin"
	"github.com/8bitGames/auto-contract/internal/metrics"
	"github.com/8bitGames/auto-contract/internal/pdf"
	"github.com/8bitGames/auto-contract/internal/render"
	"github.com/8bitGames/auto-contract/internal/store"
)

// renderHandler exposes PDF export. It reuses the template and contract
// resolution logic from the other handlers so ownership rules stay in one
// place.
type renderHandler struct {
	renderer  pdf.Renderer
	templates *templatesHandler
	contracts *contractsHandler
}

func registerRenderRoutes(r chi.Router, deps Deps) {
	h := &renderHandler{
		renderer:  deps.Renderer,
		templates: &templatesHandler{templates: deps.Templates},
		contracts: &contractsHandler{contracts: deps.Contracts},
	}
	r.Post("/render/pdf", h.RenderPDF)
	r.Post("/contracts/{id}/pdf", h.ContractPDF)
}

func (h *renderHandler) available(w http.ResponseWriter) bool {
	if h.renderer == nil {
		writeError(w, http.StatusServiceUnavailable, "PDF rendering is not configured", "PDF_UNAVAILABLE")
		return false
	}
	return true
}

// writePDF sends the document as an attachment.
func writePDF(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// RenderPDF renders a template (by id, with data) or raw HTML to PDF.
// POST /api/v1/render/pdf
//
// @Summary      Render a PDF
// @Description  Provide template_id with data, or raw html. The body is wrapped in the printable page shell.
// @Tags         Render
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  RenderPDFRequest  true  "Render request"
// @Success      200   {file}    binary
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      502   {object}  ErrorResponse
// @Failure      503   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /render/pdf [post]
func (h *renderHandler) RenderPDF(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}

	var req RenderPDFRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	var body, filename string
	switch {
	case req.TemplateID != "":
		if bt := builtin.ByID(req.TemplateID); bt != nil {
			body = bt.Render(req.Data)
			filename = bt.ID + ".pdf"
		} else {
			t, ok := h.lookupTemplate(w, r, req.TemplateID)
			if !ok {
				return
			}
			body = render.Compile(t.HTMLTemplate)(req.Data)
			filename = t.ID + ".pdf"
		}
	case req.HTML != "":
		body = render.Sanitize(req.HTML)
		filename = "document.pdf"
	default:
		writeError(w, http.StatusBadRequest, "template_id or html is required", "BAD_REQUEST")
		return
	}

	data, err := h.renderer.Render(r.Context(), pdf.Document(body))
	if err != nil {
		metrics.PDFRenderErrorsTotal.Inc()
		writeError(w, http.StatusBadGateway, "PDF rendering failed", "PDF_RENDER_ERROR")
		return
	}

	metrics.PDFsRenderedTotal.Inc()
	writePDF(w, filename, data)
}

// lookupTemplate loads a stored template with the same ownership rules as
// the template endpoints.
func (h *renderHandler) lookupTemplate(w http.ResponseWriter, r *http.Request, id string) (*store.Template, bool) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return nil, false
	}

	t, err := h.templates.templates.GetByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "template not found", "NOT_FOUND")
		return nil, false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return nil, false
	}
	if t.OwnerID != user.ID && !user.IsAdmin() {
		writeError(w, http.StatusNotFound, "template not found", "NOT_FOUND")
		return nil, false
	}
	return t, true
}

// ContractPDF renders a stored contract to PDF.
// POST /api/v1/contracts/{id}/pdf
//
// @Summary      Render a contract to PDF
// @Tags         Render
// @Produce      application/pdf
// @Param        id  path  string  true  "Contract ID"
// @Success      200  {file}    binary
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      502  {object}  ErrorResponse
// @Failure      503  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /contracts/{id}/pdf [post]
func (h *renderHandler) ContractPDF(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}

	c, ok := h.contracts.resolve(w, r)
	if !ok {
		return
	}

	data, err := h.renderer.Render(r.Context(), pdf.Document(render.Contract(c)))
	if err != nil {
		metrics.PDFRenderErrorsTotal.Inc()
		writeError(w, http.StatusBadGateway, "PDF rendering failed", "PDF_RENDER_ERROR")
		return
	}

	metrics.PDFsRenderedTotal.Inc()
	writePDF(w, c.ID+".pdf", data)
}
