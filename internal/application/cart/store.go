// Package cart contiene el contenedor de estado del carrito: líneas, totales derivados,
// persistencia local tras cada mutación e hidratación en segundo plano con el producto vivo.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/storefront-client/internal/application/dto"
	"github.com/jhoicas/storefront-client/internal/application/ports"
	"github.com/jhoicas/storefront-client/internal/domain"
	"github.com/jhoicas/storefront-client/internal/domain/entity"
	"github.com/jhoicas/storefront-client/internal/domain/repository"
	"github.com/jhoicas/storefront-client/pkg/gather"
)

const (
	hydrateConcurrency = 4
	hydrateTimeout     = 15 * time.Second
)

// Store contenedor del carrito. Una mutación y su escritura en el almacenamiento ocurren
// bajo el mismo lock; la hidratación corre fuera del lock y vuelve a buscar la línea al terminar.
type Store struct {
	products ports.ProductService
	kv       repository.KeyValueStore
	log      zerolog.Logger

	mu   sync.Mutex
	cart entity.Cart

	bg     context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewStore construye un carrito vacío. Llamar LoadFromStorage al arrancar.
func NewStore(products ports.ProductService, kv repository.KeyValueStore, log zerolog.Logger) *Store {
	bg, cancel := context.WithCancel(context.Background())
	return &Store{products: products, kv: kv, log: log, bg: bg, cancel: cancel}
}

// AddItem suma la cantidad a la línea (producto, talla) existente o agrega una nueva al final,
// persiste y lanza la hidratación del producto. Cantidad <= 0 devuelve ErrInvalidInput.
func (s *Store) AddItem(ctx context.Context, line entity.CartLine) error {
	if line.Quantity <= 0 {
		return fmt.Errorf("cart: cantidad %d: %w", line.Quantity, domain.ErrInvalidInput)
	}
	err := s.mutate(ctx, func(c *entity.Cart) bool {
		return c.Add(line)
	})
	if err != nil {
		return err
	}
	s.hydrateAsync(line.ProductID)
	return nil
}

// RemoveItem elimina la línea si existe; no encontrarla no es error.
func (s *Store) RemoveItem(ctx context.Context, productID uint, size string) error {
	return s.mutate(ctx, func(c *entity.Cart) bool {
		return c.Remove(productID, size)
	})
}

// UpdateQuantity fija la cantidad; quantity <= 0 equivale a RemoveItem.
func (s *Store) UpdateQuantity(ctx context.Context, productID uint, size string, quantity int) error {
	return s.mutate(ctx, func(c *entity.Cart) bool {
		return c.SetQuantity(productID, size, quantity)
	})
}

// ClearCart vacía el carrito y persiste.
func (s *Store) ClearCart(ctx context.Context) error {
	return s.mutate(ctx, func(c *entity.Cart) bool {
		c.Clear()
		return true
	})
}

// mutate aplica fn y persiste en el mismo paso. Si la escritura falla se restaura el estado previo.
func (s *Store) mutate(ctx context.Context, fn func(c *entity.Cart) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := cloneLines(s.cart.Lines)
	if !fn(&s.cart) {
		return nil
	}
	if err := s.persistLocked(ctx); err != nil {
		s.cart.Lines = prev
		return err
	}
	return nil
}

func (s *Store) persistLocked(ctx context.Context) error {
	raw, err := json.Marshal(toItems(s.cart.Lines))
	if err != nil {
		return fmt.Errorf("cart: serializar: %w", err)
	}
	if err := s.kv.Set(ctx, repository.KeyCart, string(raw)); err != nil {
		return fmt.Errorf("cart: persistir: %w", err)
	}
	return nil
}

// LoadFromStorage restaura las líneas guardadas. Un valor ilegible o malformado equivale a
// carrito vacío. Devuelve la cantidad de líneas restauradas y lanza su hidratación.
func (s *Store) LoadFromStorage(ctx context.Context) int {
	raw, err := s.kv.Get(ctx, repository.KeyCart)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.Warn().Err(err).Msg("no se pudo leer el carrito guardado, se inicia vacío")
		}
		s.reset(nil)
		return 0
	}

	var items []dto.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.log.Warn().Err(err).Msg("carrito guardado malformado, se inicia vacío")
		s.reset(nil)
		return 0
	}

	var restored entity.Cart
	for _, it := range items {
		if it.ProductID == 0 {
			continue
		}
		restored.Add(entity.CartLine{ProductID: it.ProductID, Quantity: it.Quantity, Size: it.Size, Price: it.Price})
	}
	s.reset(restored.Lines)
	if len(restored.Lines) == 0 {
		return 0
	}
	s.log.Debug().Int("lines", len(restored.Lines)).Msg("carrito restaurado")
	s.hydrateAsync(productIDs(restored.Lines)...)
	return len(restored.Lines)
}

func (s *Store) reset(lines []entity.CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Lines = lines
}

// Hydrate trae el producto vivo y lo adjunta a todas las líneas de ese producto que sigan
// en el carrito. Si ya no queda ninguna el resultado se descarta.
func (s *Store) Hydrate(ctx context.Context, productID uint) error {
	product, err := s.products.Get(ctx, productID)
	if err != nil {
		return fmt.Errorf("cart: hidratar producto %d: %w", productID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	applied := false
	for i := range s.cart.Lines {
		if s.cart.Lines[i].ProductID == productID {
			cp := *product
			s.cart.Lines[i].Product = &cp
			applied = true
		}
	}
	if !applied {
		s.log.Debug().Uint("product_id", productID).Msg("hidratación tardía descartada: la línea ya no existe")
	}
	return nil
}

// LoadAllProductDetails hidrata en paralelo cada producto con líneas sin snapshot.
// Un fallo se registra y no afecta al resto.
func (s *Store) LoadAllProductDetails(ctx context.Context) gather.Result {
	s.mu.Lock()
	var missing []entity.CartLine
	for _, l := range s.cart.Lines {
		if l.Product == nil {
			missing = append(missing, l)
		}
	}
	s.mu.Unlock()
	return s.hydrateAll(ctx, productIDs(missing))
}

func (s *Store) hydrateAll(ctx context.Context, ids []uint) gather.Result {
	tasks := make([]gather.Task, len(ids))
	for i, id := range ids {
		id := id
		tasks[i] = func(ctx context.Context) error { return s.Hydrate(ctx, id) }
	}
	res := gather.All(ctx, hydrateConcurrency, tasks, func(i int, err error) {
		s.log.Warn().Err(err).Uint("product_id", ids[i]).Msg("no se pudo hidratar la línea del carrito")
	})
	if res.Failed > 0 {
		s.log.Info().Int("total", res.Total).Int("failed", res.Failed).Msg("hidratación del carrito incompleta")
	}
	return res
}

// hydrateAsync lanza la hidratación sin bloquear al llamador.
func (s *Store) hydrateAsync(ids ...uint) {
	if len(ids) == 0 || s.bg.Err() != nil {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(s.bg, hydrateTimeout)
		defer cancel()
		s.hydrateAll(ctx, ids)
	}()
}

// Wait bloquea hasta que terminen las hidrataciones en curso.
func (s *Store) Wait() {
	s.wg.Wait()
}

// Close cancela las hidrataciones pendientes y espera a que terminen.
func (s *Store) Close() {
	s.cancel()
	s.wg.Wait()
}

// CheckoutPayload proyección mínima para crear la orden, con el precio capturado al agregar.
func (s *Store) CheckoutPayload() []dto.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return toItems(s.cart.Lines)
}

// Snapshot copia de las líneas en orden de inserción.
func (s *Store) Snapshot() []entity.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneLines(s.cart.Lines)
}

func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalItems()
}

func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalPrice()
}

func (s *Store) HasItems() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cart.Lines) > 0
}

// HydratedLines cuántas líneas tienen snapshot del producto.
func (s *Store) HydratedLines() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, l := range s.cart.Lines {
		if l.Product != nil {
			n++
		}
	}
	return n
}

func toItems(lines []entity.CartLine) []dto.CartItem {
	items := make([]dto.CartItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, dto.CartItem{ProductID: l.ProductID, Quantity: l.Quantity, Size: l.Size, Price: l.Price})
	}
	return items
}

func cloneLines(lines []entity.CartLine) []entity.CartLine {
	if lines == nil {
		return nil
	}
	out := make([]entity.CartLine, len(lines))
	copy(out, lines)
	return out
}

func productIDs(lines []entity.CartLine) []uint {
	seen := make(map[uint]struct{}, len(lines))
	ids := make([]uint, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.ProductID]; ok {
			continue
		}
		seen[l.ProductID] = struct{}{}
		ids = append(ids, l.ProductID)
	}
	return ids
}
