package countries

// apiCountry — сырая запись ответа restcountries v3.1 до нормализации.
// Набор полей соответствует параметру fields запроса.
type apiCountry struct {
	Name struct {
		Common   string `json:"common"`
		Official string `json:"official"`
	} `json:"name"`
	CCA3       string `json:"cca3"`
	Currencies map[string]struct {
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
	} `json:"currencies"`
	Population int               `json:"population"`
	Region     string            `json:"region"`
	Subregion  string            `json:"subregion"`
	Area       float64           `json:"area"`
	Capital    []string          `json:"capital"`
	Languages  map[string]string `json:"languages"`
	Borders    []string          `json:"borders"`
	Flags      struct {
		PNG string `json:"png"`
		SVG string `json:"svg"`
	} `json:"flags"`
}
