// Package countries реализует клиент внешнего API restcountries.com
// и нормализацию его ответа в доменную модель Country.
//
// Правила значений по умолчанию применяются здесь, на границе с API,
// и только здесь: отсутствующая столица превращается в пустой список,
// отсутствующая площадь — в 0, записи без кода CCA3 отбрасываются.
package countries

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/andreyzhukovv/country-explorer/internal/models"
)

// DefaultBaseURL — адрес API restcountries по умолчанию.
const DefaultBaseURL = "https://restcountries.com/v3.1"

// fetchFields — поля, запрашиваемые у API. restcountries требует явного
// перечисления полей для запроса /all.
const fetchFields = "name,cca3,currencies,population,region,subregion,area,capital,languages,borders,flags"

const (
	maxRetries     = 3
	retryDelay     = 2 * time.Second
	rateLimitDelay = 5 * time.Second
)

// Client — HTTP-клиент restcountries с ограничением частоты запросов
// и ограниченным числом повторов.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

// NewClient создает клиент для заданного базового адреса API.
// Пустой адрес заменяется на DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(rate.Every(3*time.Second), 5),
	}
}

// FetchAll загружает полный каталог стран и нормализует каждую запись.
func (c *Client) FetchAll(ctx context.Context) ([]models.Country, error) {
	const op = "countries.FetchAll"

	body, err := c.get(ctx, fmt.Sprintf("%s/all?fields=%s", c.baseURL, fetchFields))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var raw []apiCountry
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%s: failed to parse countries payload: %w", op, err)
	}

	countries := make([]models.Country, 0, len(raw))
	for _, r := range raw {
		if r.CCA3 == "" {
			continue
		}
		countries = append(countries, normalize(r))
	}
	return countries, nil
}

// FetchByCode загружает одну страну по коду CCA3.
func (c *Client) FetchByCode(ctx context.Context, cca3 string) (*models.Country, error) {
	const op = "countries.FetchByCode"

	body, err := c.get(ctx, fmt.Sprintf("%s/alpha/%s?fields=%s", c.baseURL, url.PathEscape(cca3), fetchFields))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// API /alpha отвечает объектом для точного кода и массивом для поиска,
	// поддерживаются оба варианта
	var raw apiCountry
	if err := json.Unmarshal(body, &raw); err != nil {
		var list []apiCountry
		if err := json.Unmarshal(body, &list); err != nil || len(list) == 0 {
			return nil, fmt.Errorf("%s: failed to parse country payload: %w", op, err)
		}
		raw = list[0]
	}
	if raw.CCA3 == "" {
		return nil, fmt.Errorf("%s: empty response from API", op)
	}

	country := normalize(raw)
	return &country, nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		body, retryable, err := c.do(req)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}

		delay := retryDelay
		if retryable && attempt < maxRetries {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return nil, fmt.Errorf("failed to fetch data after %d attempts: %w", maxRetries, lastErr)
}

// do выполняет один запрос и сообщает, имеет ли смысл повтор.
func (c *Client) do(req *http.Request) (body []byte, retryable bool, err error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, true, err
		}
		return body, false, nil
	case resp.StatusCode == http.StatusTooManyRequests:
		time.Sleep(rateLimitDelay)
		return nil, true, fmt.Errorf("API returned 429 Too Many Requests")
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, true, fmt.Errorf("API returned status %s", resp.Status)
	default:
		return nil, false, fmt.Errorf("API returned status %s", resp.Status)
	}
}

// normalize приводит сырую запись API к доменной модели,
// применяя значения по умолчанию для необязательных полей.
func normalize(r apiCountry) models.Country {
	capital := r.Capital
	if capital == nil {
		capital = []string{}
	}

	var currencies map[string]models.Currency
	if len(r.Currencies) > 0 {
		currencies = make(map[string]models.Currency, len(r.Currencies))
		for code, cur := range r.Currencies {
			currencies[code] = models.Currency{Name: cur.Name, Symbol: cur.Symbol}
		}
	}

	population := r.Population
	if population < 0 {
		population = 0
	}
	area := r.Area
	if area < 0 {
		area = 0
	}

	return models.Country{
		CCA3:       r.CCA3,
		Name:       models.CountryName{Common: r.Name.Common, Official: r.Name.Official},
		Population: population,
		Region:     r.Region,
		Subregion:  r.Subregion,
		Capital:    capital,
		Area:       area,
		Flags:      models.CountryFlags{PNG: r.Flags.PNG, SVG: r.Flags.SVG},
		Languages:  r.Languages,
		Currencies: currencies,
		Borders:    r.Borders,
	}
}
