package explorer

import "github.com/andreyzhukovv/country-explorer/internal/models"

// FavoriteSet — набор избранных стран: уникальный по коду CCA3,
// сохраняющий порядок добавления. Элементы — снимки данных страны на
// момент добавления. Значение неизменяемое: Toggle и Remove возвращают
// новый набор.
type FavoriteSet struct {
	items []models.Country
}

// NewFavoriteSet строит набор из готового списка (например, загруженного
// с сервера), отбрасывая дубликаты по CCA3.
func NewFavoriteSet(countries []models.Country) FavoriteSet {
	set := FavoriteSet{items: make([]models.Country, 0, len(countries))}
	for _, c := range countries {
		if !set.Contains(c.CCA3) {
			set.items = append(set.items, c)
		}
	}
	return set
}

// Toggle добавляет страну, если её нет в наборе, и убирает, если есть.
// Двойной Toggle возвращает набор к исходному состоянию.
func (s FavoriteSet) Toggle(c models.Country) FavoriteSet {
	if s.Contains(c.CCA3) {
		return s.Remove(c.CCA3)
	}
	items := make([]models.Country, len(s.items), len(s.items)+1)
	copy(items, s.items)
	return FavoriteSet{items: append(items, c)}
}

// Remove убирает страну по коду CCA3. Отсутствие страны — не ошибка.
func (s FavoriteSet) Remove(cca3 string) FavoriteSet {
	items := make([]models.Country, 0, len(s.items))
	for _, c := range s.items {
		if c.CCA3 != cca3 {
			items = append(items, c)
		}
	}
	return FavoriteSet{items: items}
}

// Contains сообщает, есть ли страна с данным кодом в наборе.
func (s FavoriteSet) Contains(cca3 string) bool {
	for _, c := range s.items {
		if c.CCA3 == cca3 {
			return true
		}
	}
	return false
}

// Len возвращает размер набора.
func (s FavoriteSet) Len() int { return len(s.items) }

// Countries возвращает копию набора в порядке добавления.
func (s FavoriteSet) Countries() []models.Country {
	items := make([]models.Country, len(s.items))
	copy(items, s.items)
	return items
}
