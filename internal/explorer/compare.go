package explorer

import "github.com/andreyzhukovv/country-explorer/internal/models"

// MaxCompare — максимальное количество стран в режиме сравнения.
const MaxCompare = 2

// CompareSelection — упорядоченный выбор стран для сравнения,
// уникальный по коду CCA3, не более MaxCompare элементов.
// Значение неизменяемое: Add и Remove возвращают новый выбор.
type CompareSelection struct {
	items []models.Country
}

// Add добавляет страну в выбор. Если выбор заполнен или страна уже
// выбрана, возвращается прежний выбор без изменений.
func (s CompareSelection) Add(c models.Country) CompareSelection {
	if len(s.items) >= MaxCompare || s.Contains(c.CCA3) {
		return s
	}
	items := make([]models.Country, len(s.items), len(s.items)+1)
	copy(items, s.items)
	return CompareSelection{items: append(items, c)}
}

// Remove убирает страну по коду CCA3. Отсутствие страны в выборе —
// не ошибка, выбор возвращается без изменений.
func (s CompareSelection) Remove(cca3 string) CompareSelection {
	items := make([]models.Country, 0, len(s.items))
	for _, c := range s.items {
		if c.CCA3 != cca3 {
			items = append(items, c)
		}
	}
	return CompareSelection{items: items}
}

// Contains сообщает, выбрана ли страна с данным кодом.
func (s CompareSelection) Contains(cca3 string) bool {
	for _, c := range s.items {
		if c.CCA3 == cca3 {
			return true
		}
	}
	return false
}

// Len возвращает количество выбранных стран.
func (s CompareSelection) Len() int { return len(s.items) }

// Full сообщает, заполнен ли выбор.
func (s CompareSelection) Full() bool { return len(s.items) == MaxCompare }

// Countries возвращает копию выбранных стран в порядке добавления.
func (s CompareSelection) Countries() []models.Country {
	items := make([]models.Country, len(s.items))
	copy(items, s.items)
	return items
}

// ComparisonSide — показатели одной страны в таблице сравнения.
// Density отсутствует (nil), когда площадь равна нулю или неизвестна:
// плотность населения в этом случае не определена.
type ComparisonSide struct {
	CCA3       string                     `json:"cca3"`
	Name       string                     `json:"name"`
	Population int                        `json:"population"`
	Region     string                     `json:"region"`
	Capital    []string                   `json:"capital"`
	Languages  map[string]string          `json:"languages,omitempty"`
	Currencies map[string]models.Currency `json:"currencies,omitempty"`
	Area       float64                    `json:"area"`
	Density    *float64                   `json:"density,omitempty"`
}

// Comparison — таблица сравнения двух стран.
type Comparison struct {
	Left  ComparisonSide `json:"left"`
	Right ComparisonSide `json:"right"`
}

// NewComparison строит таблицу сравнения для пары стран.
func NewComparison(left, right models.Country) Comparison {
	return Comparison{
		Left:  newComparisonSide(left),
		Right: newComparisonSide(right),
	}
}

func newComparisonSide(c models.Country) ComparisonSide {
	side := ComparisonSide{
		CCA3:       c.CCA3,
		Name:       c.Name.Common,
		Population: c.Population,
		Region:     c.Region,
		Capital:    c.Capital,
		Languages:  c.Languages,
		Currencies: c.Currencies,
		Area:       c.Area,
	}
	if c.Area > 0 {
		density := float64(c.Population) / c.Area
		side.Density = &density
	}
	return side
}
