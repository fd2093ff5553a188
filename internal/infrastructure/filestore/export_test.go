package filestore

// Flush reescribe ambos archivos con el contenido actual, sin pasar por Run.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := saveItems(s.opts.ItemsPath, s.items); err != nil {
		return err
	}
	return saveSales(s.opts.SalesPath, s.sales)
}
