package filestore

import (
	"context"
	"sync"

	appinventory "github.com/jhoicas/tienda-inventario/internal/application/inventory"
	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
	"github.com/jhoicas/tienda-inventario/internal/domain/repository"
)

// Options indica los archivos que respaldan cada colección.
// Una ruta vacía deja esa colección solo en memoria.
type Options struct {
	ItemsPath string
	SalesPath string
}

// Store mantiene ítems y ventas en memoria y reescribe el archivo completo de la
// colección modificada al confirmar cada unidad de trabajo. Las mutaciones se serializan.
type Store struct {
	mu    sync.RWMutex
	opts  Options
	items *collection[*entity.Item]
	sales *collection[*entity.Sale]
}

var _ appinventory.TxRunner = (*Store)(nil)

// Open carga ambas colecciones. Un archivo ausente equivale a una colección vacía;
// un archivo ilegible devuelve domain.ErrCorruptData.
func Open(opts Options) (*Store, error) {
	items, err := loadItems(opts.ItemsPath)
	if err != nil {
		return nil, err
	}
	sales, err := loadSales(opts.SalesPath)
	if err != nil {
		return nil, err
	}
	return &Store{opts: opts, items: items, sales: sales}, nil
}

// NewMemory crea un Store sin archivos de respaldo.
func NewMemory() *Store {
	return &Store{
		items: newCollection[*entity.Item](),
		sales: newCollection[*entity.Sale](),
	}
}

// Items devuelve el repositorio de ítems; cada mutación es su propia unidad de trabajo.
func (s *Store) Items() *ItemRepo { return &ItemRepo{store: s} }

// Sales devuelve el repositorio de ventas.
func (s *Store) Sales() *SaleRepo { return &SaleRepo{store: s} }

// Close no libera nada; existe para cumplir el contrato de los demás backends.
func (s *Store) Close() error { return nil }

// Run ejecuta fn sobre una copia de las colecciones bajo el lock de escritura.
// Si fn termina sin error se persisten primero los ítems y después las ventas. Si falla
// la escritura de ventas, los ítems ya quedaron confirmados y se devuelve el error.
func (s *Store) Run(ctx context.Context, fn func(itemRepo repository.ItemRepository, saleRepo repository.SaleRepository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	st := &txState{items: s.items.clone(), sales: s.sales.clone()}
	if err := fn(&txItemRepo{st: st}, &txSaleRepo{st: st}); err != nil {
		return err
	}
	if st.itemsDirty {
		if err := saveItems(s.opts.ItemsPath, st.items); err != nil {
			return err
		}
		s.items = st.items
	}
	if st.salesDirty {
		if err := saveSales(s.opts.SalesPath, st.sales); err != nil {
			return err
		}
		s.sales = st.sales
	}
	return nil
}

func (s *Store) getItem(id string) *entity.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if it, ok := s.items.get(id); ok {
		return it.Clone()
	}
	return nil
}

func (s *Store) listItems() []*entity.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneItems(s.items.values())
}

func (s *Store) getSale(id string) *entity.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sale, ok := s.sales.get(id); ok {
		return sale.Clone()
	}
	return nil
}

func (s *Store) listSales() []*entity.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSales(s.sales.values())
}

func cloneItems(in []*entity.Item) []*entity.Item {
	out := make([]*entity.Item, len(in))
	for i, it := range in {
		out[i] = it.Clone()
	}
	return out
}

func cloneSales(in []*entity.Sale) []*entity.Sale {
	out := make([]*entity.Sale, len(in))
	for i, s := range in {
		out[i] = s.Clone()
	}
	return out
}
