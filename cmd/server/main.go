// cmd/server/main.go
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/sozercan/tour-guide/internal/catalog"
	"github.com/sozercan/tour-guide/internal/config"
	"github.com/sozercan/tour-guide/internal/llm"
	"github.com/sozercan/tour-guide/internal/logging"
	"github.com/sozercan/tour-guide/internal/recommend"
	"github.com/sozercan/tour-guide/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)

	cat, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}

	llmProvider, err := llm.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to create LLM provider: %v", err)
	}

	recommender := recommend.New(llmProvider,
		recommend.WithTimeout(cfg.LLM.Timeout),
		recommend.WithLogger(logger),
	)

	srv := server.New(cfg.Server, cat, recommender)
	slog.Info("Catalog loaded", "tours", cat.Len(), "path", cfg.Catalog.Path)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}
