// Package producttest provides an in-memory product.Repository for tests.
package producttest

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/fekuna/omnipos-pos-service/internal/apperr"
	"github.com/fekuna/omnipos-pos-service/internal/model"
)

type Repository struct {
	mu         sync.Mutex
	products   map[string]model.Product
	referenced map[string]bool

	// AdjustHook runs before every AdjustStock; a non-nil error aborts it.
	AdjustHook  func(code string, delta int) error
	Adjustments int
}

func NewRepository(products ...model.Product) *Repository {
	r := &Repository{
		products:   map[string]model.Product{},
		referenced: map[string]bool{},
	}
	for _, p := range products {
		r.products[p.Code] = p
	}
	return r
}

func (r *Repository) Upsert(ctx context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.Code] = *p
	return nil
}

func (r *Repository) FindByCode(ctx context.Context, code string) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[code]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *Repository) Search(ctx context.Context, filter string) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	needle := strings.ToLower(strings.TrimSpace(filter))
	out := []model.Product{}
	for _, p := range r.products {
		if needle == "" || strings.Contains(strings.ToLower(p.Code), needle) || strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *Repository) Delete(ctx context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[code]; !ok {
		return apperr.NotFound("product %s not found", code)
	}
	if r.referenced[code] {
		return apperr.Referential("cannot delete: product is referenced by sales", nil)
	}
	delete(r.products, code)
	return nil
}

func (r *Repository) AdjustStock(ctx context.Context, code string, delta int) error {
	if r.AdjustHook != nil {
		if err := r.AdjustHook(code, delta); err != nil {
			return err
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[code]
	if !ok {
		return apperr.NotFound("product %s not found", code)
	}
	p.Quantity += delta
	r.products[code] = p
	r.Adjustments++
	return nil
}

// Reference marks code as used by a recorded sale so Delete refuses it.
func (r *Repository) Reference(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.referenced[code] = true
}

// Quantity returns the stored stock for code, or -1 when unknown.
func (r *Repository) Quantity(code string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[code]
	if !ok {
		return -1
	}
	return p.Quantity
}
