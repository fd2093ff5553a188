package filestore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/tienda-inventario/internal/domain"
	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
)

// readRecords lee el arreglo JSON de path. Un archivo inexistente o vacío equivale a una colección vacía.
func readRecords[R any](path string) ([]R, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: leer %s: %v", domain.ErrStorage, path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var records []R
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrCorruptData, path, err)
	}
	return records, nil
}

// writeRecords reescribe path completo: escribe a un temporal y lo renombra.
func writeRecords[R any](path string, records []R) error {
	if path == "" {
		return nil
	}
	if records == nil {
		records = []R{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("%w: serializar %s: %v", domain.ErrStorage, path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: escribir %s: %v", domain.ErrStorage, tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: reemplazar %s: %v", domain.ErrStorage, path, err)
	}
	return nil
}

func loadItems(path string) (*collection[*entity.Item], error) {
	records, err := readRecords[itemRecord](path)
	if err != nil {
		return nil, err
	}
	c := newCollection[*entity.Item]()
	for _, r := range records {
		it, err := r.toEntity()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrCorruptData, path, err)
		}
		c.put(it.ID, it)
	}
	return c, nil
}

func saveItems(path string, c *collection[*entity.Item]) error {
	records := make([]itemRecord, 0, c.len())
	for _, it := range c.values() {
		records = append(records, newItemRecord(it))
	}
	return writeRecords(path, records)
}

func loadSales(path string) (*collection[*entity.Sale], error) {
	records, err := readRecords[saleRecord](path)
	if err != nil {
		return nil, err
	}
	c := newCollection[*entity.Sale]()
	for _, r := range records {
		s, err := r.toEntity()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrCorruptData, path, err)
		}
		c.put(s.ID, s)
	}
	return c, nil
}

func saveSales(path string, c *collection[*entity.Sale]) error {
	records := make([]saleRecord, 0, c.len())
	for _, s := range c.values() {
		records = append(records, newSaleRecord(s))
	}
	return writeRecords(path, records)
}
