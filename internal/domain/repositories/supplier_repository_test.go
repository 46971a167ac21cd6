package repositories

import (
	"errors"
	"testing"
	"time"

	"github.com/supplyguard/supplyguard-api/internal/domain/entities"
)

func seededRepo() *SupplierRepository {
	r := NewSupplierRepository()
	r.Seed([]entities.Supplier{
		{ID: "s1", Name: "Acme Textiles Ltd", Country: "BD", Industry: "Textiles", RiskScore: 78, Status: entities.SupplierWatchlist},
		{ID: "s2", Name: "TechParts Shenzhen", Country: "CN", Industry: "Electronics", RiskScore: 55, Status: entities.SupplierActive},
		{ID: "s3", Name: "Global LogiCorp", Country: "MM", Industry: "Logistics", RiskScore: 92, SanctionsHit: true, Status: entities.SupplierBlocked},
	})
	return r
}

func TestList_FilterMatchesNameAndIndustry(t *testing.T) {
	r := seededRepo()

	if got := len(r.List("")); got != 3 {
		t.Fatalf("unfiltered list = %d suppliers, want 3", got)
	}
	if got := r.List("textil"); len(got) != 1 || got[0].ID != "s1" {
		t.Errorf("filter 'textil' = %v, want just s1", got)
	}
	if got := r.List("ELECTRONICS"); len(got) != 1 || got[0].ID != "s2" {
		t.Errorf("filter is not case-insensitive: %v", got)
	}
	if got := r.List("no such thing"); len(got) != 0 {
		t.Errorf("filter miss returned %d suppliers", len(got))
	}
}

func TestInsert_PrependsToDisplayOrder(t *testing.T) {
	r := seededRepo()
	r.Insert(entities.Supplier{ID: "s4", Name: "Fresh GmbH", Country: "DE", Industry: "Software", RiskScore: 10})

	list := r.List("")
	if list[0].ID != "s4" {
		t.Errorf("new supplier not listed first: got %s", list[0].ID)
	}
	if len(list) != 4 {
		t.Errorf("list = %d suppliers, want 4", len(list))
	}
}

func TestGet_ReturnsIsolatedSnapshot(t *testing.T) {
	r := seededRepo()
	a, err := r.Get("s1")
	if err != nil {
		t.Fatalf("get s1: %v", err)
	}

	// Mutating the snapshot must not leak into the store.
	a.Name = "Hacked"
	a.News = append(a.News, entities.NewsArticle{ID: "nX"})

	b, _ := r.Get("s1")
	if b.Name != "Acme Textiles Ltd" || len(b.News) != 0 {
		t.Error("snapshot mutation leaked into the store")
	}
}

func TestGet_NotFound(t *testing.T) {
	r := seededRepo()
	if _, err := r.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdate_RecomputesRiskLevel(t *testing.T) {
	r := seededRepo()
	s, _ := r.Get("s2")
	s.RiskScore = 85
	updated, err := r.Update(s)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.RiskLevel != entities.RiskCritical {
		t.Errorf("risk level = %s, want CRITICAL after score 85", updated.RiskLevel)
	}

	s.ID = "ghost"
	if _, err := r.Update(s); !errors.Is(err, ErrNotFound) {
		t.Errorf("update unknown id: err = %v, want ErrNotFound", err)
	}
}

func TestDistribution(t *testing.T) {
	r := seededRepo()
	d := r.Distribution()
	want := entities.RiskDistribution{Critical: 1, High: 1, Medium: 1, Low: 0}
	if d != want {
		t.Errorf("distribution = %+v, want %+v", d, want)
	}
}

func TestTopRisks(t *testing.T) {
	r := seededRepo()
	top := r.TopRisks(60, 3)
	if len(top) != 2 {
		t.Fatalf("top risks = %d suppliers, want 2 (score > 60)", len(top))
	}
	if top[0].ID != "s3" || top[1].ID != "s1" {
		t.Errorf("top risks order = [%s %s], want [s3 s1]", top[0].ID, top[1].ID)
	}
}

func TestAlertRepository_Inbox(t *testing.T) {
	r := NewAlertRepository()
	now := time.Now()
	r.Seed([]entities.Alert{
		{ID: "a1", SupplierID: "s1", Status: entities.AlertUnread, CreatedAt: now.Add(-time.Hour)},
		{ID: "a2", SupplierID: "s3", Status: entities.AlertUnread, CreatedAt: now},
	})

	list := r.List()
	if list[0].ID != "a2" {
		t.Errorf("alerts not newest-first: got %s", list[0].ID)
	}

	a, err := r.SetStatus("a1", entities.AlertResolved)
	if err != nil || a.Status != entities.AlertResolved {
		t.Errorf("resolve a1: %v %v", a, err)
	}

	if changed := r.MarkAllRead(); changed != 1 {
		t.Errorf("mark all read changed %d alerts, want 1 (a2)", changed)
	}
	a, _ = r.Get("a1")
	if a.Status != entities.AlertResolved {
		t.Error("mark all read must not touch resolved alerts")
	}
}
