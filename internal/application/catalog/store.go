// Package catalog contiene el contenedor de estado del catálogo: lista de productos,
// producto actual, filtro local (texto y categoría) y acciones de administración.
package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"

	"github.com/jhoicas/storefront-client/internal/application/dto"
	"github.com/jhoicas/storefront-client/internal/application/ports"
	"github.com/jhoicas/storefront-client/internal/domain"
	"github.com/jhoicas/storefront-client/internal/domain/entity"
)

// Filter filtro local; no afecta el estado persistido.
type Filter struct {
	Query    string
	Category string
}

// Store contenedor del catálogo.
type Store struct {
	products ports.ProductService
	log      zerolog.Logger

	mu      sync.Mutex
	list    []*entity.Product
	current *entity.Product
	filter  Filter
	loading bool
	errMsg  string
}

// NewStore construye el catálogo vacío.
func NewStore(products ports.ProductService, log zerolog.Logger) *Store {
	return &Store{products: products, log: log}
}

// FetchProducts reemplaza la lista con la del backend.
func (s *Store) FetchProducts(ctx context.Context) error {
	s.begin()
	list, err := s.products.List(ctx, "", "")
	if err != nil {
		s.fail(err, "Failed to fetch products")
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list = list
	s.loading = false
	return nil
}

// FetchProduct carga el producto actual.
func (s *Store) FetchProduct(ctx context.Context, id uint) (*entity.Product, error) {
	s.begin()
	p, err := s.products.Get(ctx, id)
	if err != nil {
		s.fail(err, "Failed to fetch product")
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = p
	s.loading = false
	return clone(p), nil
}

// CreateProduct crea en el backend y agrega el resultado a la lista local.
func (s *Store) CreateProduct(ctx context.Context, in dto.ProductRequest) (*entity.Product, error) {
	if err := dto.Validate(in); err != nil {
		s.setError(err.Error())
		return nil, err
	}
	s.begin()
	p, err := s.products.Create(ctx, in)
	if err != nil {
		s.fail(err, "Failed to create product")
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list = append(s.list, p)
	s.loading = false
	return clone(p), nil
}

// UpdateProduct actualiza en el backend y reemplaza la copia local (lista y actual).
func (s *Store) UpdateProduct(ctx context.Context, id uint, in dto.UpdateProductRequest) (*entity.Product, error) {
	if err := dto.Validate(in); err != nil {
		s.setError(err.Error())
		return nil, err
	}
	s.begin()
	p, err := s.products.Update(ctx, id, in)
	if err != nil {
		s.fail(err, "Failed to update product")
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.list {
		if s.list[i].ID == id {
			s.list[i] = p
		}
	}
	if s.current != nil && s.current.ID == id {
		s.current = p
	}
	s.loading = false
	return clone(p), nil
}

// DeleteProduct borra en el backend y quita el producto de la lista local.
func (s *Store) DeleteProduct(ctx context.Context, id uint) error {
	s.begin()
	if err := s.products.Delete(ctx, id); err != nil {
		s.fail(err, "Failed to delete product")
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.list[:0]
	for _, p := range s.list {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.list = kept
	if s.current != nil && s.current.ID == id {
		s.current = nil
	}
	s.loading = false
	return nil
}

func (s *Store) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.errMsg = ""
}

func (s *Store) fail(err error, fallback string) {
	s.log.Error().Err(err).Msg(strings.ToLower(fallback))
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.errMsg = domain.MessageOf(err, fallback)
}

func (s *Store) setError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = msg
}

// SetSearchQuery fija el texto de búsqueda.
func (s *Store) SetSearchQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.Query = q
}

// SetCategory fija la categoría; "" = todas.
func (s *Store) SetCategory(c string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.Category = c
}

// ClearFilters quita texto y categoría.
func (s *Store) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = Filter{}
}

// Filter filtro vigente.
func (s *Store) Filter() Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// FilteredProducts aplica el filtro en cada lectura: categoría exacta y texto contenido en
// nombre o descripción sin distinguir mayúsculas (case folding Unicode).
func (s *Store) FilteredProducts() []*entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Apply(s.list, s.filter)
}

// Apply filtra list con f.
func Apply(list []*entity.Product, f Filter) []*entity.Product {
	fold := cases.Fold()
	query := fold.String(strings.TrimSpace(f.Query))
	out := make([]*entity.Product, 0, len(list))
	for _, p := range list {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if query != "" &&
			!strings.Contains(fold.String(p.Name), query) &&
			!strings.Contains(fold.String(p.Description), query) {
			continue
		}
		out = append(out, clone(p))
	}
	return out
}

// AvailableCategories categorías distintas y no vacías en orden de aparición.
func (s *Store) AvailableCategories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[string]struct{})
	var out []string
	for _, p := range s.list {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// Products lista completa sin filtrar.
func (s *Store) Products() []*entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.Product, 0, len(s.list))
	for _, p := range s.list {
		out = append(out, clone(p))
	}
	return out
}

// Current producto actual o nil.
func (s *Store) Current() *entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.current)
}

// Find busca en la lista local.
func (s *Store) Find(id uint) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.list {
		if p.ID == id {
			return clone(p), nil
		}
	}
	return nil, fmt.Errorf("catalog: producto %d: %w", id, domain.ErrNotFound)
}

func (s *Store) HasProducts() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.list) > 0
}

func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Store) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// ClearError limpia el mensaje de error.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = ""
}

func clone(p *entity.Product) *entity.Product {
	if p == nil {
		return nil
	}
	cp := *p
	if p.SizeOptions != nil {
		cp.SizeOptions = append([]string(nil), p.SizeOptions...)
	}
	return &cp
}
