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

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"cruxen/adapters/llm"
	"cruxen/api"
	capp "cruxen/app"
	"cruxen/domain/framework"
	"cruxen/internal/config"
	"cruxen/ports"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Main] config: %v", err)
	}

	optimizer, err := capp.NewOptimizer(framework.Builtin())
	if err != nil {
		log.Fatalf("[Main] optimizer: %v", err)
	}

	var completer ports.Completer
	if cfg.LLM.APIKey != "" {
		groq, err := llm.NewGroqClient(llm.Config{
			APIKey:  cfg.LLM.APIKey,
			BaseURL: cfg.LLM.BaseURL,
			Model:   cfg.LLM.Model,
			Timeout: cfg.LLM.Timeout,
		})
		if err != nil {
			log.Fatalf("[Main] groq client: %v", err)
		}
		completer = groq
	} else {
		log.Printf("[Main] GROQ_API_KEY not set - /chat endpoint will be unavailable")
	}

	application := api.NewApp(cfg, optimizer, completer)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           application.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("[Main] Starting CruxEn API on :%s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Printf("[Main] Shutting down")
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("[Main] server: %v", err)
	}
}
