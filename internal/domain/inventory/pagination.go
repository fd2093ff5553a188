package inventory

// DefaultPageSize tamaño de página del catálogo si no se configura otro.
const DefaultPageSize = 5

// Page es una vista paginada (páginas numeradas desde 1) sobre una lista.
type Page[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

// Paginate recorta list a la página solicitada.
// TotalPages = ceil(Total / pageSize); una página fuera de rango devuelve Items vacío, sin error.
func Paginate[T any](list []T, page, pageSize int) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	total := len(list)
	out := Page[T]{
		Items:      []T{},
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: (total + pageSize - 1) / pageSize,
	}
	if page < 1 || page > out.TotalPages {
		return out
	}
	start := (page - 1) * pageSize
	end := min(start+pageSize, total)
	out.Items = list[start:end]
	return out
}
