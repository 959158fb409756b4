// Package models содержит структуры параметров фильтрации каталога стран.
// Здесь определены как структуры для внутреннего использования в движке
// фильтрации, так и для приёма параметров из HTTP‑запросов.
package models

// Границы диапазона населения по умолчанию. Верхняя граница соответствует
// максимально возможному населению страны в данных restcountries.
const (
	PopulationMin = 0
	PopulationMax = 1_500_000_000
)

// Ключи сортировки каталога. Ведущий знак "-" в строке сортировки
// означает обратный порядок (например, "-population").
const (
	SortByName       = "name"
	SortByPopulation = "population"
	SortByArea       = "area"
)

// PopulationRange задает включительный диапазон населения [Min, Max].
type PopulationRange struct {
	Min int // Нижняя граница, включительно
	Max int // Верхняя граница, включительно
}

// DefaultPopulationRange возвращает диапазон населения по умолчанию,
// пропускающий все страны.
func DefaultPopulationRange() PopulationRange {
	return PopulationRange{Min: PopulationMin, Max: PopulationMax}
}

// FilterState описывает полный набор параметров, определяющих видимый
// список стран: поисковая строка, регион, диапазон населения и сортировка.
// Пустые строковые поля означают отсутствие фильтра.
type FilterState struct {
	SearchTerm string          // Подстрока для поиска по названию (регистронезависимо)
	Region     string          // Точное совпадение региона; пустая строка — все регионы
	Population PopulationRange // Включительный диапазон населения
	Sort       string          // Ключ сортировки, опционально с ведущим "-"
}

// DefaultFilterState возвращает состояние фильтра без ограничений
// с сортировкой по названию.
func DefaultFilterState() FilterState {
	return FilterState{
		Population: DefaultPopulationRange(),
		Sort:       SortByName,
	}
}

// CompareFilter — независимый фильтр одной стороны режима сравнения.
// В отличие от FilterState здесь нет поисковой строки и нижней границы
// населения: каждая сторона ограничивает полный каталог только регионом
// и максимальным населением.
type CompareFilter struct {
	Region        string // Точное совпадение региона; пустая строка — все регионы
	PopulationMax int    // Верхняя граница населения, включительно
	Sort          string // Ключ сортировки, опционально с ведущим "-"
}

// AsFilterState преобразует фильтр стороны сравнения в полный FilterState,
// переиспользуя единый движок фильтрации.
func (c CompareFilter) AsFilterState() FilterState {
	return FilterState{
		Region:     c.Region,
		Population: PopulationRange{Min: PopulationMin, Max: c.PopulationMax},
		Sort:       c.Sort,
	}
}
