package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/supplyguard/supplyguard-api/internal/domain/entities"
	"github.com/supplyguard/supplyguard-api/internal/domain/repositories"
	"github.com/supplyguard/supplyguard-api/internal/domain/risk"
	"github.com/supplyguard/supplyguard-api/internal/infrastructure/ai"
)

// IngestUseCase brings new suppliers into the session via AI-assisted
// extraction: bulk CSV lists and single registration documents. New
// suppliers start ACTIVE with a deterministic baseline score derived from
// industry and country; real screening happens downstream.
type IngestUseCase struct {
	suppliers *repositories.SupplierRepository
	stats     *repositories.StatsRepository
	parser    ListParser
	extractor DocumentExtractor
}

// NewIngestUseCase creates a new IngestUseCase.
func NewIngestUseCase(suppliers *repositories.SupplierRepository, stats *repositories.StatsRepository, parser ListParser, extractor DocumentExtractor) *IngestUseCase {
	return &IngestUseCase{suppliers: suppliers, stats: stats, parser: parser, extractor: extractor}
}

// ImportCSV maps raw CSV text onto suppliers and inserts them. Malformed
// rows were already dropped by the capability adapter; a capability failure
// inserts nothing.
func (u *IngestUseCase) ImportCSV(ctx context.Context, rawText string) ([]entities.Supplier, error) {
	rows, err := u.parser.ParseTabularList(ctx, rawText)
	if err != nil {
		return nil, err
	}

	created := make([]entities.Supplier, 0, len(rows))
	for _, row := range rows {
		s := newSupplierFromRow(row)
		u.suppliers.Insert(s)
		inserted, err := u.suppliers.Get(s.ID)
		if err != nil {
			return created, err
		}
		created = append(created, inserted)
	}
	u.stats.AddSuppliers(len(created))
	return created, nil
}

// ExtractDocument reads one supplier out of an uploaded document and inserts
// it.
func (u *IngestUseCase) ExtractDocument(ctx context.Context, data []byte, mimeType string) (entities.Supplier, error) {
	extracted, err := u.extractor.ExtractFromDocument(ctx, data, mimeType)
	if err != nil {
		return entities.Supplier{}, err
	}

	s := entities.Supplier{
		ID:             uuid.NewString(),
		Name:           extracted.Name,
		LegalName:      extracted.LegalName,
		Country:        orDefault(extracted.Country, "Unknown"),
		Industry:       orDefault(extracted.Industry, "General"),
		RiskScore:      risk.BaselineScore(extracted.Industry, extracted.Country),
		Status:         entities.SupplierActive,
		LastScreenedAt: time.Now().UTC(),
		News:           []entities.NewsArticle{},
	}
	u.suppliers.Insert(s)
	u.stats.AddSuppliers(1)
	return u.suppliers.Get(s.ID)
}

func newSupplierFromRow(row ai.SupplierRow) entities.Supplier {
	return entities.Supplier{
		ID:             uuid.NewString(),
		Name:           row.Name,
		LegalName:      row.LegalName,
		Country:        orDefault(row.Country, "Unknown"),
		City:           row.City,
		Industry:       orDefault(row.Industry, "General"),
		RiskScore:      risk.BaselineScore(row.Industry, row.Country),
		Status:         entities.SupplierActive,
		LastScreenedAt: time.Now().UTC(),
		News:           []entities.NewsArticle{},
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
