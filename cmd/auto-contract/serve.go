package main

import (
	"context"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/8bitGames/auto-contract/internal/api"
	"github.com/8bitGames/auto-contract/internal/auth"
	"github.com/8bitGames/auto-contract/internal/config"
	"github.com/8bitGames/auto-contract/internal/db"
	"github.com/8bitGames/auto-contract/internal/llm"
	"github.com/8bitGames/auto-contract/internal/pdf"
	"github.com/8bitGames/auto-contract/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			sessionManager := auth.NewSessionManager(database, cfg.DB.Driver, cfg.SessionLifetime)

			ctx := context.Background()
			oidcProvider, err := auth.NewProvider(ctx, cfg)
			if err != nil {
				return err
			}

			userStore := store.NewUserStore(database)
			templateStore := store.NewTemplateStore(database)
			contractStore := store.NewContractStore(database)
			tokenStore := auth.NewSQLTokenStore(database)

			drafter, err := llm.New(cfg)
			if err != nil {
				return err
			}
			if drafter == nil {
				log.Println("AI drafting disabled (ACB_LLM_PROVIDER not set)")
			}

			authHandlers := auth.NewHandlers(oidcProvider, sessionManager, userStore, cfg.AdminEmail)
			authMiddleware := auth.NewMiddleware(sessionManager, userStore)
			bearerAuth := auth.NewBearerTokenMiddleware(tokenStore, userStore)

			deps := api.Deps{
				SessionManager: sessionManager,
				AuthHandlers:   authHandlers,
				AuthMiddleware: authMiddleware,
				BearerAuth:     bearerAuth,
				Templates:      templateStore,
				Contracts:      contractStore,
				Users:          userStore,
				Tokens:         tokenStore,
				Drafter:        drafter,
			}
			if renderer := pdf.NewClient(cfg); renderer != nil {
				deps.Renderer = renderer
			} else {
				log.Println("PDF rendering disabled (ACB_PDF_RENDERER_URL not set)")
			}

			router := api.NewRouter(deps)

			log.Printf("listening on %s", cfg.HTTP.Addr)
			return http.ListenAndServe(cfg.HTTP.Addr, router)
		},
	}
}
