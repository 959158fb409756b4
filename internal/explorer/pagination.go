package explorer

import "github.com/andreyzhukovv/country-explorer/internal/models"

// PageSizes — допустимые размеры страницы каталога.
var PageSizes = []int{8, 12, 16, 24, 48}

// DefaultPageSize — размер страницы по умолчанию.
const DefaultPageSize = 12

// Paginator задает окно постраничного вывода: номер текущей страницы
// (нумерация с единицы) и размер страницы из фиксированного набора.
// Значение неизменяемое: методы-переходы возвращают новый Paginator.
type Paginator struct {
	Page int // Текущая страница, начиная с 1
	Size int // Размер страницы, один из PageSizes
}

// NewPaginator возвращает Paginator на первой странице. Недопустимый
// размер заменяется на DefaultPageSize.
func NewPaginator(size int) Paginator {
	if !validPageSize(size) {
		size = DefaultPageSize
	}
	return Paginator{Page: 1, Size: size}
}

func validPageSize(size int) bool {
	for _, s := range PageSizes {
		if s == size {
			return true
		}
	}
	return false
}

// TotalPages возвращает число страниц для списка длины total,
// минимум 1 — даже пустой список отображается одной пустой страницей.
func (p Paginator) TotalPages(total int) int {
	pages := (total + p.Size - 1) / p.Size
	if pages < 1 {
		pages = 1
	}
	return pages
}

// WithPage возвращает Paginator на запрошенной странице. Запрос за
// пределами [1, TotalPages(total)] игнорируется.
func (p Paginator) WithPage(page, total int) Paginator {
	if page < 1 || page > p.TotalPages(total) {
		return p
	}
	p.Page = page
	return p
}

// WithSize меняет размер страницы и сбрасывает номер страницы на 1.
// Недопустимый размер игнорируется.
func (p Paginator) WithSize(size int) Paginator {
	if !validPageSize(size) {
		return p
	}
	return Paginator{Page: 1, Size: size}
}

// Reset возвращает Paginator на первую страницу с тем же размером.
// Вызывается при любом изменении фильтра: отфильтрованный список
// меняется, и прежний номер страницы теряет смысл.
func (p Paginator) Reset() Paginator {
	p.Page = 1
	return p
}

// Window возвращает срез списка, попадающий в текущее окно:
// filtered[(page-1)*size : page*size] с обрезкой по границам списка.
// Последняя страница может быть короче размера.
func (p Paginator) Window(filtered []models.Country) []models.Country {
	start := (p.Page - 1) * p.Size
	if start >= len(filtered) {
		return []models.Country{}
	}
	end := start + p.Size
	if end > len(filtered) {
		end = len(filtered)
	}
	window := make([]models.Country, end-start)
	copy(window, filtered[start:end])
	return window
}
