package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/8bitGames/auto-contract/internal/api"
	"github.com/8bitGames/auto-contract/internal/auth"
	"github.com/8bitGames/auto-contract/internal/store"
	"github.com/8bitGames/auto-contract/internal/testutil"
)

// newSessionRouter wires the full router including the session-backed
// /account routes, sharing one session manager so tests can mint cookies.
func newSessionRouter(t *testing.T) (http.Handler, *store.UserStore, *scs.SessionManager) {
	t.Helper()
	db := testutil.NewTestDB(t)

	us := store.NewUserStore(db)
	tokens := auth.NewSQLTokenStore(db)
	sm := auth.NewSessionManager(db, "sqlite3", time.Hour)

	deps := api.Deps{
		SessionManager: sm,
		AuthMiddleware: auth.NewMiddleware(sm, us),
		BearerAuth:     auth.NewBearerTokenMiddleware(tokens, us),
		Templates:      store.NewTemplateStore(db),
		Contracts:      store.NewContractStore(db),
		Users:          us,
		Tokens:         tokens,
	}

	return api.NewRouter(deps), us, sm
}

// loginSession establishes a session for userID and returns the cookies a
// browser would carry afterwards.
func loginSession(t *testing.T, sm *scs.SessionManager, userID string) []*http.Cookie {
	t.Helper()
	h := sm.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sm.Put(r.Context(), auth.SessionUserIDKey, userID)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("no session cookie issued")
	}
	return cookies
}

func TestAccountTokens_RedirectsWithoutSession(t *testing.T) {
	router, _, _ := newSessionRouter(t)

	req := httptest.NewRequest("GET", "/account/tokens", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	loc := rec.Header().Get("Location")
	if !strings.HasPrefix(loc, "/auth/login") {
		t.Errorf("location = %q, want /auth/login redirect", loc)
	}
}

func TestAccountTokens_SessionCreatesFirstToken(t *testing.T) {
	router, us, sm := newSessionRouter(t)

	u, err := us.Upsert(context.Background(), "test", "sub-bootstrap", "new@example.com", "New User", "")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	cookies := loginSession(t, sm, u.ID)

	// A fresh browser session can mint the first Bearer token.
	req := httptest.NewRequest("POST", "/account/tokens", strings.NewReader(`{"name":"first token"}`))
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var created api.TokenResponse
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(created.Token) < 5 || created.Token[:4] != "acb_" {
		t.Fatalf("token = %q, want acb_ prefix", created.Token)
	}

	// The minted token works as a Bearer credential on the JSON API.
	apiReq := httptest.NewRequest("GET", "/api/v1/tokens", nil)
	apiReq.Header.Set("Authorization", "Bearer "+created.Token)
	apiRec := httptest.NewRecorder()
	router.ServeHTTP(apiRec, apiReq)

	if apiRec.Code != http.StatusOK {
		t.Fatalf("api status = %d, body = %s", apiRec.Code, apiRec.Body.String())
	}
}
