// Package models содержит доменные структуры приложения: страны, пользователи
// и параметры фильтрации каталога стран.
package models

// CountryName содержит обиходное и официальное название страны.
type CountryName struct {
	Common   string `json:"common" bson:"common"`     // Обиходное название (например, "France")
	Official string `json:"official" bson:"official"` // Официальное название (например, "French Republic")
}

// Currency описывает валюту страны.
type Currency struct {
	Name   string `json:"name" bson:"name"`     // Название валюты
	Symbol string `json:"symbol" bson:"symbol"` // Символ валюты
}

// CountryFlags содержит ссылки на изображения флага.
type CountryFlags struct {
	PNG string `json:"png" bson:"png"`
	SVG string `json:"svg" bson:"svg"`
}

// Country представляет страну из внешнего API restcountries.
// Естественный ключ — трёхбуквенный код CCA3. После нормализации на границе
// с API структура считается неизменяемой: каталог загружается целиком и
// дальше только читается.
//
// Правила значений по умолчанию применяются при нормализации ответа API,
// а не в остальном коде: отсутствующая столица — пустой список,
// отсутствующая площадь — 0.
type Country struct {
	CCA3       string              `json:"cca3" bson:"cca3"`
	Name       CountryName         `json:"name" bson:"name"`
	Population int                 `json:"population" bson:"population"`
	Region     string              `json:"region" bson:"region"`
	Subregion  string              `json:"subregion,omitempty" bson:"subregion,omitempty"`
	Capital    []string            `json:"capital" bson:"capital"`
	Area       float64             `json:"area" bson:"area"`
	Flags      CountryFlags        `json:"flags" bson:"flags"`
	Languages  map[string]string   `json:"languages,omitempty" bson:"languages,omitempty"`
	Currencies map[string]Currency `json:"currencies,omitempty" bson:"currencies,omitempty"`
	Borders    []string            `json:"borders,omitempty" bson:"borders,omitempty"`
}
