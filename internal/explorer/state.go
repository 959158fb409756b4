package explorer

import "github.com/andreyzhukovv/country-explorer/internal/models"

// AppState — полное состояние каталога стран: загруженный справочник,
// фильтр, окно постраничного вывода, режим сравнения и избранное.
//
// Состояние неизменяемое, все переходы — чистые методы, возвращающие
// новое значение. Любой переход, меняющий фильтр, сбрасывает страницу
// на первую: прежний номер относится к уже несуществующему списку.
type AppState struct {
	Countries  []models.Country   // Полный нормализованный каталог
	Filter     models.FilterState // Активный фильтр
	Pager      Paginator          // Окно постраничного вывода
	Favorites  FavoriteSet        // Избранные страны
	Selection  CompareSelection   // Выбор режима сравнения
	Comparing  bool               // Включен ли режим сравнения
	Generation uint64             // Поколение последнего запрошенного каталога
}

// NewAppState возвращает начальное состояние с пустым каталогом,
// фильтром по умолчанию и размером страницы по умолчанию.
func NewAppState() AppState {
	return AppState{
		Filter: models.DefaultFilterState(),
		Pager:  NewPaginator(DefaultPageSize),
	}
}

// BeginFetch отмечает начало загрузки каталога и возвращает номер
// поколения, под которым должен прийти результат. Каждая новая загрузка
// получает большее поколение, чем все предыдущие.
func (s AppState) BeginFetch() (AppState, uint64) {
	s.Generation++
	return s, s.Generation
}

// ApplyCountries применяет результат загрузки каталога. Результат
// устаревшего поколения игнорируется: применяется только ответ последнего
// запроса, чем бы ни закончились гонки параллельных загрузок.
func (s AppState) ApplyCountries(generation uint64, countries []models.Country) AppState {
	if generation != s.Generation {
		return s
	}
	s.Countries = countries
	s.Pager = s.Pager.Reset()
	return s
}

// WithSearch задает поисковую строку и сбрасывает страницу.
func (s AppState) WithSearch(term string) AppState {
	s.Filter.SearchTerm = term
	s.Pager = s.Pager.Reset()
	return s
}

// WithRegion задает фильтр региона и сбрасывает страницу.
func (s AppState) WithRegion(region string) AppState {
	s.Filter.Region = region
	s.Pager = s.Pager.Reset()
	return s
}

// WithPopulationRange задает диапазон населения и сбрасывает страницу.
func (s AppState) WithPopulationRange(r models.PopulationRange) AppState {
	s.Filter.Population = r
	s.Pager = s.Pager.Reset()
	return s
}

// WithSort задает ключ сортировки и сбрасывает страницу.
func (s AppState) WithSort(sortKey string) AppState {
	s.Filter.Sort = sortKey
	s.Pager = s.Pager.Reset()
	return s
}

// WithPage переходит на запрошенную страницу текущего отфильтрованного
// списка. Запрос за пределами допустимого диапазона игнорируется.
func (s AppState) WithPage(page int) AppState {
	s.Pager = s.Pager.WithPage(page, len(s.Filtered()))
	return s
}

// WithPageSize меняет размер страницы, возвращаясь на первую страницу.
func (s AppState) WithPageSize(size int) AppState {
	s.Pager = s.Pager.WithSize(size)
	return s
}

// EnterCompare включает режим сравнения. Текущий список остаётся
// отправной точкой для независимых фильтров сторон.
func (s AppState) EnterCompare() AppState {
	s.Comparing = true
	return s
}

// ExitCompare выключает режим сравнения и очищает выбор.
func (s AppState) ExitCompare() AppState {
	s.Comparing = false
	s.Selection = CompareSelection{}
	return s
}

// AddCompare добавляет страну в выбор сравнения по правилам
// CompareSelection: не более двух, без дубликатов.
func (s AppState) AddCompare(c models.Country) AppState {
	s.Selection = s.Selection.Add(c)
	return s
}

// RemoveCompare убирает страну из выбора сравнения.
func (s AppState) RemoveCompare(cca3 string) AppState {
	s.Selection = s.Selection.Remove(cca3)
	return s
}

// ToggleFavorite переключает страну в наборе избранного.
func (s AppState) ToggleFavorite(c models.Country) AppState {
	s.Favorites = s.Favorites.Toggle(c)
	return s
}

// Filtered возвращает отфильтрованный и отсортированный список
// для текущего фильтра.
func (s AppState) Filtered() []models.Country {
	return ApplyFilters(s.Countries, s.Filter)
}

// Visible возвращает страницу отфильтрованного списка, попадающую
// в текущее окно.
func (s AppState) Visible() []models.Country {
	return s.Pager.Window(s.Filtered())
}

// TotalPages возвращает число страниц текущего отфильтрованного списка.
func (s AppState) TotalPages() int {
	return s.Pager.TotalPages(len(s.Filtered()))
}

// SideList возвращает список одной стороны режима сравнения: полный
// каталог, ограниченный независимым фильтром стороны.
func (s AppState) SideList(f models.CompareFilter) []models.Country {
	return ApplyFilters(s.Countries, f.AsFilterState())
}
