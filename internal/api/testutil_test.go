package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/8bitGames/auto-contract/internal/api"
	"github.com/8bitGames/auto-contract/internal/auth"
	"github.com/8bitGames/auto-contract/internal/llm"
	"github.com/8bitGames/auto-contract/internal/pdf"
	"github.com/8bitGames/auto-contract/internal/store"
	"github.com/8bitGames/auto-contract/internal/testutil"
)

// testEnv holds all stores and helpers needed for API integration tests.
type testEnv struct {
	Router    http.Handler
	Templates *store.TemplateStore
	Contracts *store.ContractStore
	Users     *store.UserStore
	Tokens    *auth.SQLTokenStore
}

// newTestEnv creates an in-memory SQLite test database, runs migrations, and
// wires up the full API router with real stores. The AI and PDF backends are
// absent, matching an unconfigured deployment.
func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWith(t, nil, nil)
}

// newTestEnvWith is newTestEnv with explicit drafting and rendering backends.
func newTestEnvWith(t *testing.T, drafter llm.Drafter, renderer pdf.Renderer) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)

	ts := store.NewTemplateStore(db)
	cs := store.NewContractStore(db)
	us := store.NewUserStore(db)
	tokens := auth.NewSQLTokenStore(db)

	bearerMW := auth.NewBearerTokenMiddleware(tokens, us)

	deps := api.Deps{
		BearerAuth: bearerMW,
		Templates:  ts,
		Contracts:  cs,
		Users:      us,
		Tokens:     tokens,
		Drafter:    drafter,
		Renderer:   renderer,
	}

	router := api.NewAPIRouter(deps)
	return &testEnv{
		Router:    router,
		Templates: ts,
		Contracts: cs,
		Users:     us,
		Tokens:    tokens,
	}
}

// seedUser creates a user and returns the user record.
func seedUser(t *testing.T, env *testEnv, email, role string) *store.User {
	t.Helper()
	ctx := context.Background()
	u, err := env.Users.Upsert(ctx, "test", "sub-"+email, email, "Test User", "")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if role != "user" {
		u, err = env.Users.UpdateRole(ctx, u.ID, role)
		if err != nil {
			t.Fatalf("update role: %v", err)
		}
	}
	return u
}

// seedToken creates a real API token for a user and returns the plaintext Bearer value.
func seedToken(t *testing.T, env *testEnv, userID string) string {
	t.Helper()
	plaintext, hash, err := auth.GenerateToken()
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	_, err = env.Tokens.Create(context.Background(), userID, "test-token", hash, nil)
	if err != nil {
		t.Fatalf("create token: %v", err)
	}
	return plaintext
}

// authRequest adds a Bearer token to the request.
func authRequest(r *http.Request, token string) *http.Request {
	r.Header.Set("Authorization", "Bearer "+token)
	return r
}

// seedTemplate stores a minimal template for the given owner.
func seedTemplate(t *testing.T, env *testEnv, ownerID, title, html string) *store.Template {
	t.Helper()
	sections := []store.Section{{
		ID:    "basic",
		Title: "기본 정보",
		Fields: []store.Field{
			{ID: "name", Label: "이름", Type: store.FieldText, Required: true},
			{ID: "amount", Label: "금액", Type: store.FieldCurrency},
		},
	}}
	tmpl, err := env.Templates.Create(context.Background(), ownerID, title, "", sections, html, store.SourceManual)
	if err != nil {
		t.Fatalf("seed template: %v", err)
	}
	return tmpl
}

// seedContract stores a contract with one [variable]-bearing section.
func seedContract(t *testing.T, env *testEnv, ownerID, title string, vars map[string]string) *store.Contract {
	t.Helper()
	sections := []store.ContractSection{{
		ID:      "s1",
		Title:   "제1조 (목적)",
		Content: "본 계약은 [갑_명칭]과 [을_명칭] 사이의 거래 조건을 정한다.",
	}}
	c, err := env.Contracts.Create(context.Background(), ownerID, title, sections, vars)
	if err != nil {
		t.Fatalf("seed contract: %v", err)
	}
	return c
}
