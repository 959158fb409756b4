package explorer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andreyzhukovv/country-explorer/internal/models"
)

func testCountries() []models.Country {
	return []models.Country{
		{
			CCA3:       "ALA",
			Name:       models.CountryName{Common: "Aland", Official: "Aland Islands"},
			Population: 10000,
			Region:     "Europe",
			Area:       1580,
		},
		{
			CCA3:       "ZMB",
			Name:       models.CountryName{Common: "Zambia", Official: "Republic of Zambia"},
			Population: 19000000,
			Region:     "Africa",
			Area:       752612,
		},
		{
			CCA3:       "FRA",
			Name:       models.CountryName{Common: "France", Official: "French Republic"},
			Population: 67391582,
			Region:     "Europe",
			Area:       551695,
		},
		{
			CCA3:       "VAT",
			Name:       models.CountryName{Common: "Vatican City", Official: "Vatican City State"},
			Population: 451,
			Region:     "Europe",
			// Площадь намеренно не задана
		},
	}
}

func TestApplyFilters(t *testing.T) {
	countries := testCountries()

	tests := []struct {
		name     string
		filter   models.FilterState
		wantCCA3 []string
	}{
		{
			name:     "empty filter matches everything, sorted by name",
			filter:   models.DefaultFilterState(),
			wantCCA3: []string{"ALA", "FRA", "VAT", "ZMB"},
		},
		{
			name: "region filter yields exactly europe",
			filter: models.FilterState{
				Region:     "Europe",
				Population: models.DefaultPopulationRange(),
				Sort:       models.SortByName,
			},
			wantCCA3: []string{"ALA", "FRA", "VAT"},
		},
		{
			name: "search matches common name case-insensitively",
			filter: models.FilterState{
				SearchTerm: "zamb",
				Population: models.DefaultPopulationRange(),
				Sort:       models.SortByName,
			},
			wantCCA3: []string{"ZMB"},
		},
		{
			name: "search matches official name",
			filter: models.FilterState{
				SearchTerm: "republic",
				Population: models.DefaultPopulationRange(),
				Sort:       models.SortByName,
			},
			wantCCA3: []string{"FRA", "ZMB"},
		},
		{
			name: "population range is inclusive",
			filter: models.FilterState{
				Population: models.PopulationRange{Min: 10000, Max: 19000000},
				Sort:       models.SortByPopulation,
			},
			wantCCA3: []string{"ALA", "ZMB"},
		},
		{
			name: "descending population sort",
			filter: models.FilterState{
				Population: models.DefaultPopulationRange(),
				Sort:       "-population",
			},
			wantCCA3: []string{"FRA", "ZMB", "ALA", "VAT"},
		},
		{
			name: "missing area sorts as zero",
			filter: models.FilterState{
				Population: models.DefaultPopulationRange(),
				Sort:       models.SortByArea,
			},
			wantCCA3: []string{"VAT", "ALA", "FRA", "ZMB"},
		},
		{
			name: "all predicates are anded",
			filter: models.FilterState{
				SearchTerm: "a",
				Region:     "Europe",
				Population: models.PopulationRange{Min: 1000, Max: 100000},
				Sort:       models.SortByName,
			},
			wantCCA3: []string{"ALA"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyFilters(countries, tt.filter)

			gotCCA3 := make([]string, 0, len(got))
			for _, c := range got {
				gotCCA3 = append(gotCCA3, c.CCA3)
			}
			assert.Equal(t, tt.wantCCA3, gotCCA3)

			// Результат — подмножество входа, каждый элемент проходит все предикаты
			for _, c := range got {
				assert.True(t, matchesSearch(c, tt.filter.SearchTerm))
				assert.True(t, matchesRegion(c, tt.filter.Region))
				assert.True(t, matchesPopulation(c, tt.filter.Population))
			}
		})
	}
}

func TestApplyFilters_RegionScenario(t *testing.T) {
	countries := []models.Country{
		{CCA3: "ALA", Name: models.CountryName{Common: "Aland"}, Population: 10000, Region: "Europe"},
		{CCA3: "ZMB", Name: models.CountryName{Common: "Zambia"}, Population: 19000000, Region: "Africa"},
	}

	filtered := ApplyFilters(countries, models.FilterState{
		Region:     "Europe",
		Population: models.DefaultPopulationRange(),
	})
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Aland", filtered[0].Name.Common)

	sorted := ApplyFilters(countries, models.FilterState{
		Population: models.DefaultPopulationRange(),
		Sort:       "-population",
	})
	assert.Equal(t, "Zambia", sorted[0].Name.Common)
	assert.Equal(t, "Aland", sorted[1].Name.Common)
}

func TestApplyFilters_AscendingDescendingAreReversed(t *testing.T) {
	countries := testCountries()
	filter := models.DefaultFilterState()

	filter.Sort = models.SortByPopulation
	asc := ApplyFilters(countries, filter)

	filter.Sort = "-population"
	desc := ApplyFilters(countries, filter)

	assert.Equal(t, len(asc), len(desc))
	for i := range asc {
		assert.Equal(t, asc[i].CCA3, desc[len(desc)-1-i].CCA3)
	}
}

func TestApplyFilters_DoesNotMutateInput(t *testing.T) {
	countries := testCountries()
	original := make([]models.Country, len(countries))
	copy(original, countries)

	filter := models.DefaultFilterState()
	filter.Sort = "-area"
	_ = ApplyFilters(countries, filter)

	assert.Equal(t, original, countries)
}

func TestRegions(t *testing.T) {
	regions := Regions(testCountries())
	assert.Equal(t, []string{"Europe", "Africa"}, regions)
}
