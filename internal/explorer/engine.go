// Package explorer реализует движок каталога стран: фильтрацию, сортировку,
// постраничный вывод, режим сравнения и набор избранного.
//
// Все функции пакета чистые: входные срезы не изменяются, результат —
// всегда новый срез. Движок не выполняет ввод-вывод; загрузка каталога
// из внешнего API — забота сервисного слоя.
package explorer

import (
	"sort"
	"strings"

	"github.com/andreyzhukovv/country-explorer/internal/models"
)

// ApplyFilters возвращает подмножество каталога, удовлетворяющее всем
// активным предикатам фильтра, отсортированное по заданному ключу.
//
// Предикаты объединяются по И: регистронезависимый поиск подстроки по
// обиходному и официальному названию, точное совпадение региона и
// включительный диапазон населения. Пустая поисковая строка и пустой
// регион пропускают все страны.
//
// Исходный срез не изменяется: перед сортировкой делается копия.
func ApplyFilters(countries []models.Country, f models.FilterState) []models.Country {
	filtered := make([]models.Country, 0, len(countries))
	for _, c := range countries {
		if !matchesSearch(c, f.SearchTerm) {
			continue
		}
		if !matchesRegion(c, f.Region) {
			continue
		}
		if !matchesPopulation(c, f.Population) {
			continue
		}
		filtered = append(filtered, c)
	}
	sortCountries(filtered, f.Sort)
	return filtered
}

func matchesSearch(c models.Country, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(c.Name.Common), needle) ||
		strings.Contains(strings.ToLower(c.Name.Official), needle)
}

func matchesRegion(c models.Country, region string) bool {
	if strings.TrimSpace(region) == "" {
		return true
	}
	return c.Region == region
}

func matchesPopulation(c models.Country, r models.PopulationRange) bool {
	return c.Population >= r.Min && c.Population <= r.Max
}

// sortCountries выполняет устойчивую сортировку среза на месте.
// Ведущий "-" в ключе инвертирует порядок. Неизвестный ключ оставляет
// срез как есть. Отсутствующая площадь участвует в сравнении как 0.
func sortCountries(countries []models.Country, key string) {
	field := strings.TrimPrefix(key, "-")
	mult := 1
	if strings.HasPrefix(key, "-") {
		mult = -1
	}

	var cmp func(a, b models.Country) int
	switch field {
	case models.SortByName:
		cmp = func(a, b models.Country) int {
			return strings.Compare(strings.ToLower(a.Name.Common), strings.ToLower(b.Name.Common))
		}
	case models.SortByPopulation:
		cmp = func(a, b models.Country) int {
			return a.Population - b.Population
		}
	case models.SortByArea:
		cmp = func(a, b models.Country) int {
			switch {
			case a.Area < b.Area:
				return -1
			case a.Area > b.Area:
				return 1
			default:
				return 0
			}
		}
	default:
		return
	}

	sort.SliceStable(countries, func(i, j int) bool {
		return mult*cmp(countries[i], countries[j]) < 0
	})
}

// Regions возвращает уникальные регионы каталога в порядке первого
// появления. Используется для построения списка значений фильтра.
func Regions(countries []models.Country) []string {
	seen := make(map[string]struct{}, 8)
	regions := make([]string, 0, 8)
	for _, c := range countries {
		if c.Region == "" {
			continue
		}
		if _, ok := seen[c.Region]; ok {
			continue
		}
		seen[c.Region] = struct{}{}
		regions = append(regions, c.Region)
	}
	return regions
}
