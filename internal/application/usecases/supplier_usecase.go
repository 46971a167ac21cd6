package usecases

import (
	"context"
	"time"

	"github.com/supplyguard/supplyguard-api/internal/domain/entities"
	"github.com/supplyguard/supplyguard-api/internal/domain/repositories"
	"github.com/supplyguard/supplyguard-api/internal/infrastructure/cache"
)

// newsCacheTTL bounds how long an AI news analysis is reused before the
// capability is asked again.
const newsCacheTTL = 10 * time.Minute

// SupplierUseCase implements the supplier-facing operations.
type SupplierUseCase struct {
	suppliers *repositories.SupplierRepository
	analyst   NewsAnalyst
	cache     *cache.Cache
}

// NewSupplierUseCase creates a new SupplierUseCase.
func NewSupplierUseCase(suppliers *repositories.SupplierRepository, analyst NewsAnalyst, c *cache.Cache) *SupplierUseCase {
	return &SupplierUseCase{suppliers: suppliers, analyst: analyst, cache: c}
}

// GetSuppliers lists suppliers, optionally filtered by a substring on name
// or industry.
func (u *SupplierUseCase) GetSuppliers(filter string) []entities.Supplier {
	return u.suppliers.List(filter)
}

// GetSupplier returns one supplier snapshot.
func (u *SupplierUseCase) GetSupplier(id string) (entities.Supplier, error) {
	return u.suppliers.Get(id)
}

// BlockSupplier moves a supplier to BLOCKED and returns the new snapshot.
func (u *SupplierUseCase) BlockSupplier(id string) (entities.Supplier, error) {
	s, err := u.suppliers.Get(id)
	if err != nil {
		return entities.Supplier{}, err
	}
	s.Status = entities.SupplierBlocked
	return u.suppliers.Update(s)
}

// AnalyzeNews returns the AI risk insight for a supplier. Results are cached
// briefly so repeated renders of the detail page do not re-call the
// capability; a capability failure is returned as-is and nothing is cached.
func (u *SupplierUseCase) AnalyzeNews(ctx context.Context, id string) (string, error) {
	s, err := u.suppliers.Get(id)
	if err != nil {
		return "", err
	}
	cacheKey := "news:" + id
	if cached, ok := u.cache.Get(cacheKey); ok {
		return cached.(string), nil
	}
	insight, err := u.analyst.AnalyzeNews(ctx, s.Name)
	if err != nil {
		return "", err
	}
	u.cache.Set(cacheKey, insight, newsCacheTTL)
	return insight, nil
}

// DeepAssessment runs the long-form risk assessment for a supplier.
func (u *SupplierUseCase) DeepAssessment(ctx context.Context, id string) (string, error) {
	s, err := u.suppliers.Get(id)
	if err != nil {
		return "", err
	}
	return u.analyst.DeepRiskAssessment(ctx, s)
}
