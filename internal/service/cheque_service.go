package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"chequero/internal/config"
	"chequero/internal/domain"
	"chequero/internal/normalize"
	"chequero/internal/parser"
	"chequero/internal/port"
)

// ProcessDocumentInput carries one uploaded document through the pipeline.
type ProcessDocumentInput struct {
	FileBytes   []byte
	ContentType string
	FileName    string
}

// ChequeService orchestrates the extraction pipeline: vision transcription,
// draft extraction, field normalization and credit enrichment.
type ChequeService interface {
	ProcessDocument(ctx context.Context, input *ProcessDocumentInput) ([]domain.ChequeRecord, error)
	CheckCredit(ctx context.Context, cuit string) (*domain.CreditStatus, error)
}

type chequeService struct {
	parser  port.DocumentParser
	credit  port.CreditRegistry
	padron  port.TaxRegistry
	storage port.ObjectStorage
	s3cfg   *config.S3Config
}

// NewChequeService creates the pipeline service. padron and storage are
// optional: pass nil to disable name enrichment and upload archival.
func NewChequeService(
	documentParser port.DocumentParser,
	credit port.CreditRegistry,
	padron port.TaxRegistry,
	storage port.ObjectStorage,
	s3cfg *config.S3Config,
) ChequeService {
	return &chequeService{
		parser:  documentParser,
		credit:  credit,
		padron:  padron,
		storage: storage,
		s3cfg:   s3cfg,
	}
}

func (s *chequeService) ProcessDocument(ctx context.Context, input *ProcessDocumentInput) ([]domain.ChequeRecord, error) {
	if input == nil || len(input.FileBytes) == 0 {
		return nil, domain.ErrMissingFile
	}
	if _, ok := domain.AllowedContentTypes[input.ContentType]; !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFileType, input.ContentType)
	}
	if s.s3cfg != nil && s.s3cfg.MaxFileSizeMB > 0 {
		maxBytes := s.s3cfg.MaxFileSizeMB * 1024 * 1024
		if int64(len(input.FileBytes)) > maxBytes {
			return nil, fmt.Errorf("%w: limit %d MB", domain.ErrFileTooLarge, s.s3cfg.MaxFileSizeMB)
		}
	}

	s.archive(ctx, input)

	output, err := s.parser.Parse(ctx, port.ParseInput{
		FileBytes:   input.FileBytes,
		ContentType: input.ContentType,
	})
	if err != nil {
		log.Printf("service.ChequeService.ProcessDocument: vision parse failed: %v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrVisionUnavailable, err)
	}

	drafts := parser.ExtractDrafts(output.RawText)
	log.Printf("service.ChequeService.ProcessDocument: extracted %d draft(s) from %s output", len(drafts), output.ModelUsed)

	records := make([]domain.ChequeRecord, 0, len(drafts))
	creditByCUIT := make(map[string]*domain.CreditStatus)
	nameByCUIT := make(map[string]string)

	for _, draft := range drafts {
		record := s.buildRecord(draft)

		digits := normalize.CUITDigits(record.PayerCUIT)
		if digits != "" {
			status, seen := creditByCUIT[digits]
			if !seen {
				status = s.credit.CheckCreditStatus(ctx, digits)
				creditByCUIT[digits] = status
			}
			record.Credit = status

			record.PayerName = s.payerName(ctx, digits, nameByCUIT)
		}

		records = append(records, record)
	}

	return records, nil
}

// buildRecord normalizes one draft into a record. Every field normalizer is
// total, so a malformed draft still yields a record.
func (s *chequeService) buildRecord(draft parser.Draft) domain.ChequeRecord {
	record := domain.ChequeRecord{
		ID:           uuid.New(),
		DocumentType: domain.DocumentTypeCheque,
		PayerCUIT:    normalize.CUIT(draft["cuit_librador"]),
		Bank:         normalize.String(draft["banco"]),
		IssueDate:    normalize.String(draft["fecha_emision"]),
		DueDate:      normalize.String(draft["fecha_pago"]),
		Amount:       normalize.Amount(draft["importe"]),
		ChequeNumber: normalize.String(draft["numero_cheque"]),
	}
	if cbu := normalize.String(draft["cbu_beneficiario"]); cbu != "" {
		record.BeneficiaryCBU = &cbu
	}
	return record
}

// payerName resolves the registered denomination for a CUIT, memoized per
// document. Lookup failures are logged and leave the name empty.
func (s *chequeService) payerName(ctx context.Context, digits string, cache map[string]string) string {
	if s.padron == nil {
		return ""
	}
	if name, seen := cache[digits]; seen {
		return name
	}
	name, err := s.padron.Denomination(ctx, digits)
	if err != nil {
		log.Printf("service.ChequeService.payerName: padron lookup failed for %s: %v", digits, err)
		name = ""
	}
	cache[digits] = name
	return name
}

// archive stores the raw upload when a bucket is configured. Failures are
// logged and never block processing.
func (s *chequeService) archive(ctx context.Context, input *ProcessDocumentInput) {
	if s.storage == nil || s.s3cfg == nil || s.s3cfg.Bucket == "" {
		return
	}
	key := fmt.Sprintf("uploads/%s/%s_%s", time.Now().UTC().Format("2006-01-02"), uuid.New().String(), input.FileName)
	_, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(input.FileBytes),
		ContentType: input.ContentType,
	})
	if err != nil {
		log.Printf("service.ChequeService.archive: upload failed for %s: %v", key, err)
	}
}

func (s *chequeService) CheckCredit(ctx context.Context, cuit string) (*domain.CreditStatus, error) {
	digits := normalize.CUITDigits(cuit)
	if digits == "" {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCUIT, cuit)
	}
	return s.credit.CheckCreditStatus(ctx, digits), nil
}
