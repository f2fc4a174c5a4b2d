package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	adapthttp "canteen/internal/adapter/http"
	"canteen/internal/adapter/memory"
	"canteen/internal/adapter/sqldb"
	"canteen/internal/app"
	"canteen/internal/config"
	"canteen/internal/domain"
)

// store is the persistence surface the services need.
type store interface {
	domain.UserRepository
	domain.FoodRepository
	domain.IntakeRepository
	domain.FavoriteRepository
	domain.Seeder
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, closeDB, err := openStore(cfg)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer closeDB()

	err = app.Bootstrap(ctx, db, app.BootstrapOptions{
		DemoMenu:      cfg.SeedDemo,
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
	})
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	tokens := app.NewTokenIssuer([]byte(cfg.JWTSecret), cfg.TokenTTL)
	authSvc := app.NewAuthService(db, tokens)
	foodSvc := app.NewFoodService(db)
	intakeSvc := app.NewIntakeService(db, db, db)
	favSvc := app.NewFavoriteService(db, db)

	srv := adapthttp.New(authSvc, foodSvc, intakeSvc, favSvc, cfg.WebDir)
	if cfg.OIDC.Enabled() {
		oidcCfg, err := adapthttp.NewOIDCConfig(ctx, cfg.OIDC.Issuer, cfg.OIDC.ClientID, cfg.OIDC.ClientSecret, cfg.OIDC.RedirectURL)
		if err != nil {
			log.Fatalf("sso: %v", err)
		}
		srv.WithOIDC(oidcCfg)
		log.Printf("sso enabled via %s", cfg.OIDC.Issuer)
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("listening on %s (store: %s)", cfg.Addr, cfg.DatabaseDriver)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func openStore(cfg *config.Config) (store, func(), error) {
	if cfg.DatabaseDriver == config.DriverMemory {
		return memory.New(), func() {}, nil
	}
	db, err := sqldb.Open(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	return db, func() { _ = db.Close() }, nil
}
