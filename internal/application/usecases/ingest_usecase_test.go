package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/supplyguard/supplyguard-api/internal/domain/entities"
	"github.com/supplyguard/supplyguard-api/internal/domain/repositories"
	"github.com/supplyguard/supplyguard-api/internal/infrastructure/ai"
)

type fakeIngestCapability struct {
	rows      []ai.SupplierRow
	extracted ai.ExtractedSupplier
	err       error
}

func (f *fakeIngestCapability) ParseTabularList(_ context.Context, _ string) ([]ai.SupplierRow, error) {
	return f.rows, f.err
}

func (f *fakeIngestCapability) ExtractFromDocument(_ context.Context, _ []byte, _ string) (ai.ExtractedSupplier, error) {
	return f.extracted, f.err
}

func ingestFixture(stub *fakeIngestCapability) (*repositories.SupplierRepository, *repositories.StatsRepository, *IngestUseCase) {
	suppliers := repositories.NewSupplierRepository()
	suppliers.Seed([]entities.Supplier{{ID: "s1", Name: "Existing", Country: "DE", Industry: "Software", RiskScore: 10}})
	stats := repositories.NewStatsRepository()
	stats.Seed(entities.ComplianceStats{TotalSuppliers: 200})
	return suppliers, stats, NewIngestUseCase(suppliers, stats, stub, stub)
}

func TestImportCSV(t *testing.T) {
	stub := &fakeIngestCapability{rows: []ai.SupplierRow{
		{Name: "Alpha GmbH", Country: "DE", Industry: "Software"},
		{Name: "Beta Ltd", Country: "BD", Industry: "Textiles", City: "Dhaka"},
	}}
	suppliers, stats, uc := ingestFixture(stub)

	created, err := uc.ImportCSV(context.Background(), "name,country,industry\n...")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("created %d suppliers, want 2", len(created))
	}
	for _, s := range created {
		if s.ID == "" || s.Status != entities.SupplierActive || s.LastScreenedAt.IsZero() {
			t.Errorf("supplier not initialized: %+v", s)
		}
	}
	// Baseline scoring, not random: Software/DE is low, Textiles/BD is high.
	if created[0].RiskScore >= created[1].RiskScore {
		t.Errorf("baseline scores: %d (Software/DE) should be below %d (Textiles/BD)",
			created[0].RiskScore, created[1].RiskScore)
	}
	if suppliers.Count() != 3 {
		t.Errorf("store holds %d suppliers, want 3", suppliers.Count())
	}
	if got := stats.Get().TotalSuppliers; got != 202 {
		t.Errorf("total suppliers = %d, want 202", got)
	}
	// Imported suppliers list before the seeded one.
	if list := suppliers.List(""); list[len(list)-1].ID != "s1" {
		t.Error("imported suppliers should be prepended to the display order")
	}
}

func TestImportCSV_CapabilityFailure(t *testing.T) {
	stub := &fakeIngestCapability{err: ai.ErrCapability}
	suppliers, stats, uc := ingestFixture(stub)

	_, err := uc.ImportCSV(context.Background(), "garbage")
	if !errors.Is(err, ai.ErrCapability) {
		t.Fatalf("err = %v, want ErrCapability", err)
	}
	if suppliers.Count() != 1 {
		t.Error("failed import must not insert suppliers")
	}
	if got := stats.Get().TotalSuppliers; got != 200 {
		t.Errorf("failed import changed totals: %d", got)
	}
}

func TestExtractDocument(t *testing.T) {
	stub := &fakeIngestCapability{extracted: ai.ExtractedSupplier{
		Name: "Gamma Chem", LegalName: "Gamma Chemicals AG", Country: "CH", Industry: "Chemicals",
		RegistrationNumber: "CH-999",
	}}
	suppliers, stats, uc := ingestFixture(stub)

	s, err := uc.ExtractDocument(context.Background(), []byte{1, 2, 3}, "application/pdf")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if s.Name != "Gamma Chem" || s.LegalName != "Gamma Chemicals AG" {
		t.Errorf("extraction not applied: %+v", s)
	}
	if s.RiskScore != 32 { // (Chemicals 60 + CH 5) / 2
		t.Errorf("baseline score = %d, want 32", s.RiskScore)
	}
	if suppliers.Count() != 2 || stats.Get().TotalSuppliers != 201 {
		t.Error("extracted supplier not inserted exactly once")
	}
}

func TestExtractDocument_DefaultsForMissingFields(t *testing.T) {
	stub := &fakeIngestCapability{extracted: ai.ExtractedSupplier{Name: "Solo Trader"}}
	_, _, uc := ingestFixture(stub)

	s, err := uc.ExtractDocument(context.Background(), []byte{1}, "image/png")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if s.Country != "Unknown" || s.Industry != "General" {
		t.Errorf("missing fields not defaulted: country=%q industry=%q", s.Country, s.Industry)
	}
}
