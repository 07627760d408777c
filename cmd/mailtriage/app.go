package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"mailtriage/internal/config"
	"mailtriage/internal/extract"
	"mailtriage/internal/llm"
	"mailtriage/internal/service"
)

// app holds the services shared by every command.
type app struct {
	breaker  *llm.CircuitBreaker
	pipeline service.PipelineService
	uploads  service.UploadService
	batch    service.BatchService
}

func newApp(cfg *config.Config) (*app, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	completer, err := llm.NewCompleter(&cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create llm client: %w", err)
	}
	breaker := llm.NewCircuitBreaker(cfg.LLM.Provider, completer)

	classifier := service.NewClassificationService(breaker, cfg.LLM.Timeout(), cfg.Classifier)
	drafter := service.NewDraftService(breaker, cfg.LLM.Timeout(), cfg.Drafter)
	pipeline := service.NewPipelineService(classifier, drafter)
	uploads := service.NewUploadService(extract.New(), cfg.Upload)

	log.Info().
		Str("provider", cfg.LLM.Provider).
		Str("model", cfg.LLM.Model).
		Dur("timeout", cfg.LLM.Timeout()).
		Msg("llm provider configured")

	return &app{
		breaker:  breaker,
		pipeline: pipeline,
		uploads:  uploads,
		batch:    service.NewBatchService(uploads, pipeline, cfg.Batch.Concurrency, cfg.Input.MinContentLength),
	}, nil
}
