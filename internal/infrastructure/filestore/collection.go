package filestore

// collection indexa registros por id conservando el orden de inserción,
// igual que el arreglo del archivo persistido.
type collection[T any] struct {
	order []string
	byID  map[string]T
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{byID: make(map[string]T)}
}

func (c *collection[T]) get(id string) (T, bool) {
	v, ok := c.byID[id]
	return v, ok
}

// put reemplaza en su posición si el id existe; si no, agrega al final.
func (c *collection[T]) put(id string, v T) {
	if _, ok := c.byID[id]; !ok {
		c.order = append(c.order, id)
	}
	c.byID[id] = v
}

func (c *collection[T]) remove(id string) bool {
	if _, ok := c.byID[id]; !ok {
		return false
	}
	delete(c.byID, id)
	for i, k := range c.order {
		if k == id {
			c.order = append(c.order[:i:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

func (c *collection[T]) values() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

func (c *collection[T]) len() int {
	return len(c.order)
}

// clone copia índice y orden; los valores se comparten porque nunca se mutan en sitio.
func (c *collection[T]) clone() *collection[T] {
	out := &collection[T]{
		order: make([]string, len(c.order)),
		byID:  make(map[string]T, len(c.byID)),
	}
	copy(out.order, c.order)
	for k, v := range c.byID {
		out.byID[k] = v
	}
	return out
}
