package main

import (
	"fmt"
	"log"

	"superclaims/internal/config"
	"superclaims/internal/email/noop"
	"superclaims/internal/email/ses"
	"superclaims/internal/handler"
	"superclaims/internal/llm"
	"superclaims/internal/llm/groq"
	"superclaims/internal/llm/mockllm"
	"superclaims/internal/llm/openai"
	"superclaims/internal/pdftext"
	"superclaims/internal/pipeline"
	"superclaims/internal/port"
	"superclaims/internal/router"
	"superclaims/internal/service"
	storagenoop "superclaims/internal/storage/noop"
	s3storage "superclaims/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Model providers
	llm.RegisterProvider("openai", openai.Factory)
	llm.RegisterProvider("groq", groq.Factory)
	llm.RegisterProvider("mock", mockllm.Factory)

	client, err := buildStructuredClient(&cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to initialize model client: %w", err)
	}

	// Pipeline
	extractor := pdftext.NewExtractor()
	orchestrator := pipeline.NewOrchestrator(extractor, client)

	// Archival
	storage := storagenoop.NewNoopStorage()
	if cfg.Archive.Enabled {
		storage, err = s3storage.NewS3Client(&cfg.Archive)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	// Reviewer notifications
	var sender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		sender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName, cfg.Email.ReviewerTo)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		sender = noop.NewNoopSender()
	}

	// Service and handlers
	claimSvc := service.NewClaimService(orchestrator, storage, sender, cfg.Archive)
	claimH := handler.NewClaimHandler(claimSvc, cfg.Upload)
	healthH := handler.NewHealthHandler()

	r := router.Setup(claimH, healthH, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s (provider=%s)", cfg.Server.Port, cfg.LLM.Primary.Provider)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// buildStructuredClient constructs the primary model client, wrapped in
// a rate-limit fallback chain when a secondary provider is configured.
func buildStructuredClient(cfg *config.LLMConfig) (port.StructuredClient, error) {
	primary, err := llm.NewClient(&cfg.Primary)
	if err != nil {
		return nil, err
	}

	secondaryCfg := cfg.SecondaryConfig()
	if secondaryCfg == nil {
		return primary, nil
	}

	secondary, err := llm.NewClient(secondaryCfg)
	if err != nil {
		return nil, err
	}

	return llm.NewFallbackClient(
		[]port.StructuredClient{primary, secondary},
		[]string{cfg.Primary.Provider, secondaryCfg.Provider},
	), nil
}
