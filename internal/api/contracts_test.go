package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/8bitGames/auto-contract/internal/api"
)

func TestContracts_Create_OK(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "alice@example.com", "user")
	token := seedToken(t, env, user.ID)

	body := `{
		"title": "물품 공급 계약서",
		"sections": [
			{"id": "s1", "title": "제1조 (목적)", "content": "본 계약은 [갑_명칭]이 [을_명칭]에게 물품을 공급하는 조건을 정한다."}
		],
		"variables": {"갑_명칭": "주식회사 가나다"}
	}`
	req := httptest.NewRequest("POST", "/contracts", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	authRequest(req, token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var resp api.ContractResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Title != "물품 공급 계약서" {
		t.Errorf("title = %q", resp.Title)
	}
	// Stored section content keeps its brackets; substitution is render-time only.
	if !strings.Contains(resp.Sections[0].Content, "[갑_명칭]") {
		t.Errorf("stored content lost placeholder: %q", resp.Sections[0].Content)
	}
	if resp.Variables["갑_명칭"] != "주식회사 가나다" {
		t.Errorf("variables = %v", resp.Variables)
	}
}

func TestContracts_Create_RequiresSections(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "alice@example.com", "user")
	token := seedToken(t, env, user.ID)

	req := httptest.NewRequest("POST", "/contracts", bytes.NewBufferString(`{"title": "빈 계약서", "sections": []}`))
	req.Header.Set("Content-Type", "application/json")
	authRequest(req, token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestContracts_List_OwnScopeOnly(t *testing.T) {
	env := newTestEnv(t)
	alice := seedUser(t, env, "alice@example.com", "user")
	bob := seedUser(t, env, "bob@example.com", "user")
	bobToken := seedToken(t, env, bob.ID)

	seedContract(t, env, alice.ID, "앨리스 계약서", nil)
	seedContract(t, env, bob.ID, "밥 계약서", nil)

	req := httptest.NewRequest("GET", "/contracts", nil)
	authRequest(req, bobToken)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	var resp api.ContractListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Contracts) != 1 {
		t.Fatalf("len(contracts) = %d, want 1", len(resp.Contracts))
	}
	if resp.Contracts[0].Title != "밥 계약서" {
		t.Errorf("title = %q", resp.Contracts[0].Title)
	}
}

func TestContracts_Get_OtherOwnerIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	alice := seedUser(t, env, "alice@example.com", "user")
	bob := seedUser(t, env, "bob@example.com", "user")
	bobToken := seedToken(t, env, bob.ID)

	c := seedContract(t, env, alice.ID, "앨리스 계약서", nil)

	req := httptest.NewRequest("GET", "/contracts/"+c.ID, nil)
	authRequest(req, bobToken)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestContracts_UpdateAndDelete(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "alice@example.com", "user")
	token := seedToken(t, env, user.ID)

	c := seedContract(t, env, user.ID, "원본", nil)

	body := `{
		"title": "수정본",
		"sections": [{"id": "s1", "title": "제1조", "content": "수정된 내용 [금액]"}],
		"variables": {"금액": "1,000,000원"}
	}`
	req := httptest.NewRequest("PUT", "/contracts/"+c.ID, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	authRequest(req, token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	var resp api.ContractResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Title != "수정본" {
		t.Errorf("title = %q, want 수정본", resp.Title)
	}
	if resp.Variables["금액"] != "1,000,000원" {
		t.Errorf("variables = %v", resp.Variables)
	}

	req = httptest.NewRequest("DELETE", "/contracts/"+c.ID, nil)
	authRequest(req, token)
	rec = httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want %d", rec.Code, http.StatusNoContent)
	}

	req = httptest.NewRequest("GET", "/contracts/"+c.ID, nil)
	authRequest(req, token)
	rec = httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestContracts_Preview_SubstitutesVariables(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "alice@example.com", "user")
	token := seedToken(t, env, user.ID)

	c := seedContract(t, env, user.ID, "미리보기 계약서", map[string]string{
		"갑_명칭": "주식회사 가나다",
	})

	req := httptest.NewRequest("GET", "/contracts/"+c.ID+"/preview", nil)
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
	if !strings.Contains(resp.HTML, "주식회사 가나다") {
		t.Errorf("preview missing substituted value: %q", resp.HTML)
	}
	// A variable with no value keeps its bracket text.
	if !strings.Contains(resp.HTML, "[을_명칭]") {
		t.Errorf("preview lost unset placeholder: %q", resp.HTML)
	}
	if !strings.Contains(resp.HTML, "미리보기 계약서") {
		t.Errorf("preview missing title: %q", resp.HTML)
	}
}
