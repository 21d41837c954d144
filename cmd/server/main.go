package main

import (
	"fmt"
	"log"

	"chequero/internal/bcra"
	"chequero/internal/config"
	"chequero/internal/handler"
	"chequero/internal/padron"
	"chequero/internal/parser"
	_ "chequero/internal/parser/gemini"
	_ "chequero/internal/parser/openai"
	"chequero/internal/port"
	"chequero/internal/router"
	"chequero/internal/service"
	s3storage "chequero/internal/storage/s3"
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

	documentParser, err := buildParser(&cfg.Parser)
	if err != nil {
		return fmt.Errorf("failed to initialize vision parser: %w", err)
	}

	creditRegistry := bcra.NewAggregator(bcra.NewClient(&cfg.BCRA))

	var taxRegistry port.TaxRegistry
	if cfg.Padron.Enabled() {
		taxRegistry = padron.NewClient(&cfg.Padron)
		log.Printf("main: padron denomination lookup enabled")
	}

	var storage port.ObjectStorage
	if cfg.S3.Bucket != "" {
		storage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
		log.Printf("main: upload archival enabled (bucket %s)", cfg.S3.Bucket)
	}

	chequeSvc := service.NewChequeService(documentParser, creditRegistry, taxRegistry, storage, &cfg.S3)

	chequeH := handler.NewChequeHandler(chequeSvc)
	creditH := handler.NewCreditHandler(chequeSvc)
	healthH := handler.NewHealthHandler(nil)

	r := router.Setup(cfg, chequeH, creditH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// buildParser wires the primary provider and, when configured, a secondary
// behind a rate-limit-aware fallback chain.
func buildParser(cfg *config.ParserConfig) (port.DocumentParser, error) {
	primaryCfg := cfg.PrimaryConfig()
	primary, err := parser.NewParser(primaryCfg)
	if err != nil {
		return nil, err
	}

	secondaryCfg := cfg.SecondaryConfig()
	if secondaryCfg == nil {
		return primary, nil
	}
	secondary, err := parser.NewParser(secondaryCfg)
	if err != nil {
		return nil, err
	}

	return parser.NewFallbackParser(
		[]port.DocumentParser{primary, secondary},
		[]string{primaryCfg.Provider, secondaryCfg.Provider},
	), nil
}
