package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/8bitGames/auto-contract/internal/api"
	"github.com/8bitGames/auto-contract/internal/builtin"
	"github.com/8bitGames/auto-contract/internal/render"
)

func TestTemplates_List_IncludesBuiltins(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "alice@example.com", "user")
	token := seedToken(t, env, user.ID)

	seedTemplate(t, env, user.ID, "근로계약서 사본", "<p>{{name}}</p>")

	req := httptest.NewRequest("GET", "/templates", nil)
	authRequest(req, token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp api.TemplateListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := len(builtin.All()) + 1
	if len(resp.Templates) != want {
		t.Fatalf("len(templates) = %d, want %d", len(resp.Templates), want)
	}
	// Built-ins come first.
	if !resp.Templates[0].Builtin {
		t.Errorf("first template builtin = false, want true")
	}
	last := resp.Templates[len(resp.Templates)-1]
	if last.Builtin {
		t.Errorf("stored template marked builtin")
	}
	if last.Title != "근로계약서 사본" {
		t.Errorf("title = %q, want %q", last.Title, "근로계약서 사본")
	}
}

func TestTemplates_List_Unauthenticated(t *testing.T) {
	env := newTestEnv(t)
	req := httptest.NewRequest("GET", "/templates", nil)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestTemplates_Create_ScaffoldsHTML(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "alice@example.com", "user")
	token := seedToken(t, env, user.ID)

	body := `{
		"title": "용역계약서",
		"sections": [
			{"id": "parties", "title": "계약 당사자", "fields": [
				{"id": "client", "label": "발주자", "type": "text"},
				{"id": "vendor", "label": "수급인", "type": "text"}
			]},
			{"id": "work", "title": "용역 내용", "fields": [
				{"id": "scope", "label": "업무 범위", "type": "textarea"}
			]}
		]
	}`
	req := httptest.NewRequest("POST", "/templates", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	authRequest(req, token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var resp api.TemplateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.HTMLTemplate == "" {
		t.Fatal("html_template is empty, want generated scaffold")
	}
	for _, want := range []string{"{{client}}", "{{scope}}", "{{contract_date}}"} {
		if !strings.Contains(resp.HTMLTemplate, want) {
			t.Errorf("scaffold missing %q", want)
		}
	}
}

func TestTemplates_Create_SanitizesHTML(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "alice@example.com", "user")
	token := seedToken(t, env, user.ID)

	body := `{"title": "t", "sections": [], "html_template": "<p>ok</p><script>alert(1)</script>"}`
	req := httptest.NewRequest("POST", "/templates", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	authRequest(req, token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var resp api.TemplateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if strings.Contains(resp.HTMLTemplate, "<script>") {
		t.Errorf("script tag survived sanitization: %q", resp.HTMLTemplate)
	}
	if !strings.Contains(resp.HTMLTemplate, "<p>ok</p>") {
		t.Errorf("allowed markup stripped: %q", resp.HTMLTemplate)
	}
}

func TestTemplates_Create_MissingTitle(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "alice@example.com", "user")
	token := seedToken(t, env, user.ID)

	req := httptest.NewRequest("POST", "/templates", bytes.NewBufferString(`{"sections": []}`))
	req.Header.Set("Content-Type", "application/json")
	authRequest(req, token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestTemplates_Create_DuplicateFieldID(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "alice@example.com", "user")
	token := seedToken(t, env, user.ID)

	body := `{"title": "t", "sections": [
		{"id": "a", "title": "A", "fields": [{"id": "name", "label": "이름", "type": "text"}]},
		{"id": "b", "title": "B", "fields": [{"id": "name", "label": "성명", "type": "text"}]}
	]}`
	req := httptest.NewRequest("POST", "/templates", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	authRequest(req, token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d; body: %s", rec.Code, http.StatusBadRequest, rec.Body.String())
	}
}

func TestTemplates_Get_BuiltinByID(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "alice@example.com", "user")
	token := seedToken(t, env, user.ID)

	req := httptest.NewRequest("GET", "/templates/nda", nil)
	authRequest(req, token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	var resp api.TemplateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Builtin {
		t.Error("builtin = false, want true")
	}
}

func TestTemplates_Get_OtherOwnerIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	alice := seedUser(t, env, "alice@example.com", "user")
	bob := seedUser(t, env, "bob@example.com", "user")
	bobToken := seedToken(t, env, bob.ID)

	tmpl := seedTemplate(t, env, alice.ID, "비밀 템플릿", "<p>{{name}}</p>")

	req := httptest.NewRequest("GET", "/templates/"+tmpl.ID, nil)
	authRequest(req, bobToken)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestTemplates_Get_AdminSeesAll(t *testing.T) {
	env := newTestEnv(t)
	alice := seedUser(t, env, "alice@example.com", "user")
	admin := seedUser(t, env, "admin@example.com", "admin")
	adminToken := seedToken(t, env, admin.ID)

	tmpl := seedTemplate(t, env, alice.ID, "비밀 템플릿", "<p>{{name}}</p>")

	req := httptest.NewRequest("GET", "/templates/"+tmpl.ID, nil)
	authRequest(req, adminToken)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestTemplates_Update_BuiltinReadOnly(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "alice@example.com", "user")
	token := seedToken(t, env, user.ID)

	body := `{"title": "변경", "sections": [], "html_template": "<p>x</p>"}`
	req := httptest.NewRequest("PUT", "/templates/labor_contract", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	authRequest(req, token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusBadRequest, rec.Body.String())
	}
	var resp api.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != "BUILTIN_READONLY" {
		t.Errorf("code = %q, want BUILTIN_READONLY", resp.Code)
	}
}

func TestTemplates_Delete_BuiltinReadOnly(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "alice@example.com", "user")
	token := seedToken(t, env, user.ID)

	req := httptest.NewRequest("DELETE", "/templates/nda", nil)
	authRequest(req, token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestTemplates_UpdateAndDelete(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "alice@example.com", "user")
	token := seedToken(t, env, user.ID)

	tmpl := seedTemplate(t, env, user.ID, "원본", "<p>{{name}}</p>")

	body := `{"title": "수정본", "sections": [], "html_template": "<p>{{name}} / {{amount}}</p>"}`
	req := httptest.NewRequest("PUT", "/templates/"+tmpl.ID, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	authRequest(req, token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	var resp api.TemplateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Title != "수정본" {
		t.Errorf("title = %q, want 수정본", resp.Title)
	}

	req = httptest.NewRequest("DELETE", "/templates/"+tmpl.ID, nil)
	authRequest(req, token)
	rec = httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want %d", rec.Code, http.StatusNoContent)
	}

	req = httptest.NewRequest("GET", "/templates/"+tmpl.ID, nil)
	authRequest(req, token)
	rec = httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestTemplates_Preview_StoredTemplate(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "alice@example.com", "user")
	token := seedToken(t, env, user.ID)

	tmpl := seedTemplate(t, env, user.ID, "미리보기", "<p>{{name}} / {{missing}}</p>")

	req := httptest.NewRequest("GET", "/templates/"+tmpl.ID+"/preview", nil)
	authRequest(req, token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	var resp api.PreviewResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// Declared field gets its sample value; undeclared placeholders fall back.
	if !strings.Contains(resp.HTML, "[이름]") {
		t.Errorf("preview missing sample value for declared field: %q", resp.HTML)
	}
	if !strings.Contains(resp.HTML, render.FallbackMarker) {
		t.Errorf("preview missing fallback marker for unknown field: %q", resp.HTML)
	}
	if strings.Contains(resp.HTML, "{{") {
		t.Errorf("preview leaked raw placeholder: %q", resp.HTML)
	}
}

func TestTemplates_Preview_Builtin(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "alice@example.com", "user")
	token := seedToken(t, env, user.ID)

	req := httptest.NewRequest("GET", "/templates/loan_agreement/preview", nil)
	authRequest(req, token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	var resp api.PreviewResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.HTML == "" {
		t.Fatal("preview html is empty")
	}
}

func TestTemplates_Placeholders_FirstOccurrenceOrder(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "alice@example.com", "user")
	token := seedToken(t, env, user.ID)

	tmpl := seedTemplate(t, env, user.ID, "순서", "<p>{{b}} {{a}} {{b}} {{c}}</p>")

	req := httptest.NewRequest("GET", "/templates/"+tmpl.ID+"/placeholders", nil)
	authRequest(req, token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	var resp api.PlaceholdersResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []string{"b", "a", "c"}
	if len(resp.Placeholders) != len(want) {
		t.Fatalf("placeholders = %v, want %v", resp.Placeholders, want)
	}
	for i := range want {
		if resp.Placeholders[i] != want[i] {
			t.Fatalf("placeholders = %v, want %v", resp.Placeholders, want)
		}
	}
}
